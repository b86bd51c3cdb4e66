// Package impl provides the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"muscleup/config"
	"muscleup/internal/domain/entity"
	domainerrors "muscleup/internal/domain/errors"
	"muscleup/internal/domain/repository"
	"muscleup/internal/domain/service"
	"muscleup/internal/errors"
	"muscleup/internal/usecase"

	"github.com/google/uuid"
)

const templateAlgorithm = "zk-finger-10"

// Progress milestones for the phases after capture. Capture itself climbs
// from 0 to the processing milestone proportionally to collected samples.
const (
	progressCaptureCeiling = 80
	progressProcessing     = 85
	progressValidating     = 90
	progressSaving         = 95
	progressCompleted      = 100
)

// enrollmentSession is one registry entry: the published snapshot plus the
// machinery that drives it.
type enrollmentSession struct {
	state    entity.EnrollmentSession
	deadline time.Time
	cancel   context.CancelFunc
	cleanup  *time.Timer
}

type enrollmentService struct {
	cfg    config.EnrollmentConfig
	logger *slog.Logger

	gateway      service.DeviceGateway
	userRepo     repository.UserRepository
	templateRepo repository.TemplateRepository
	deviceRepo   repository.DeviceRepository

	mu       sync.Mutex
	sessions map[uuid.UUID]*enrollmentSession

	// combineSamples and scoreSamples stand in for the vendor SDK's template
	// fusion. Swappable so tests can pin the outcome.
	combineSamples func(samples []string) string
	scoreSamples   func(qualities []int) int
}

// NewEnrollmentService creates a new enrollment service instance.
func NewEnrollmentService(
	cfg *config.Config,
	logger *slog.Logger,
	gateway service.DeviceGateway,
	userRepo repository.UserRepository,
	templateRepo repository.TemplateRepository,
	deviceRepo repository.DeviceRepository,
) usecase.EnrollmentUsecase {
	return &enrollmentService{
		cfg:            cfg.Biometric.Enrollment,
		logger:         logger,
		gateway:        gateway,
		userRepo:       userRepo,
		templateRepo:   templateRepo,
		deviceRepo:     deviceRepo,
		sessions:       make(map[uuid.UUID]*enrollmentSession),
		combineSamples: combineLargestSample,
		scoreSamples:   scoreBySampleCount,
	}
}

// Start creates a session and launches its state machine.
func (s *enrollmentService) Start(ctx context.Context, params usecase.StartEnrollmentParams) (*entity.EnrollmentSession, error) {
	user, err := s.userRepo.FindByID(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	templates, err := s.templateRepo.FindActiveByUser(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	if user.Fingerprint || len(templates) > 0 {
		return nil, domainerrors.ErrAlreadyEnrolled
	}

	device, ok := s.gateway.Status(params.DeviceID)
	if !ok || device.Status != entity.DeviceConnected {
		return nil, domainerrors.ErrDeviceUnavailable
	}

	quality := params.Quality
	if quality == "" {
		quality = entity.QualityHigh
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = s.cfg.DefaultTimeout
	}

	now := time.Now()
	state := entity.EnrollmentSession{
		ID:            uuid.NewString(),
		UserID:        params.UserID,
		UserName:      user.FullName(),
		DeviceID:      params.DeviceID,
		Status:        entity.EnrollmentWaiting,
		CurrentStep:   "Waiting for the device",
		StartedAt:     now,
		Timeout:       timeout,
		RemainingTime: timeout,
		MaxCaptures:   quality.MaxCaptures(),
		Quality:       quality,
		FingerIndex:   params.FingerIndex,
	}

	runCtx, cancel := context.WithDeadline(context.Background(), now.Add(timeout))

	s.mu.Lock()
	if existing, ok := s.sessions[params.UserID]; ok && !existing.state.Status.Terminal() {
		s.mu.Unlock()
		cancel()

		return nil, domainerrors.ErrEnrollmentInProgress
	}
	// A lingering terminal session is replaced; stop its cleanup timer so it
	// cannot reap the new session's slot.
	if existing, ok := s.sessions[params.UserID]; ok && existing.cleanup != nil {
		existing.cleanup.Stop()
	}
	sess := &enrollmentSession{
		state:    state,
		deadline: now.Add(timeout),
		cancel:   cancel,
	}
	s.sessions[params.UserID] = sess
	snapshot := sess.state
	s.mu.Unlock()

	s.logger.Info("enrollment started",
		slog.String("session", state.ID),
		slog.String("user", params.UserID.String()),
		slog.String("device", params.DeviceID.String()),
		slog.String("quality", string(quality)),
	)

	go s.run(runCtx, params.UserID, state.ID)

	return &snapshot, nil
}

// Status returns a snapshot of the user's session.
func (s *enrollmentService) Status(_ context.Context, userID uuid.UUID) (*entity.EnrollmentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, domainerrors.ErrEnrollmentNotFound
	}

	snapshot := sess.state
	snapshot.RemainingTime = max(0, time.Until(sess.deadline))

	return &snapshot, nil
}

// Cancel stops the user's session and reports how many were cancelled.
// Unknown and terminal sessions count as 0.
func (s *enrollmentService) Cancel(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	if !ok || sess.state.Status.Terminal() {
		s.mu.Unlock()

		return 0, nil
	}
	delete(s.sessions, userID)
	cancel := sess.cancel
	sessionID := sess.state.ID
	s.mu.Unlock()

	cancel()
	s.logger.Info("enrollment cancelled",
		slog.String("session", sessionID),
		slog.String("user", userID.String()),
	)

	return 1, nil
}

// ActiveCount reports how many sessions are currently registered.
func (s *enrollmentService) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// run drives one session from capture to a terminal state. Every mutation
// goes through apply, which refuses to touch a session that was cancelled or
// replaced in the meantime.
func (s *enrollmentService) run(ctx context.Context, userID uuid.UUID, sessionID string) {
	samples := make([]string, 0, 4)
	qualities := make([]int, 0, 4)

	s.mu.Lock()
	sess, ok := s.sessions[userID]
	if !ok || sess.state.ID != sessionID {
		s.mu.Unlock()

		return
	}
	maxCaptures := sess.state.MaxCaptures
	deviceID := sess.state.DeviceID
	userName := sess.state.UserName
	fingerIndex := sess.state.FingerIndex
	s.mu.Unlock()

	// Capture phase: one device round trip per required sample.
	for i := 0; i < maxCaptures; i++ {
		if !s.apply(userID, sessionID, func(state *entity.EnrollmentSession) {
			state.Status = entity.EnrollmentCapturing
			state.CurrentStep = fmt.Sprintf("Place finger on the reader (%d of %d)", i+1, maxCaptures)
			state.Progress = progressCaptureCeiling * i / maxCaptures
		}) {
			return
		}

		result, err := s.gateway.CaptureSample(ctx, deviceID, service.CaptureRequest{
			UserID:      userID,
			UserName:    userName,
			FingerIndex: fingerIndex,
		})
		if err != nil {
			s.finish(ctx, userID, sessionID, err)

			return
		}

		samples = append(samples, result.Template)
		qualities = append(qualities, result.Quality)

		if !s.apply(userID, sessionID, func(state *entity.EnrollmentSession) {
			state.Captures = len(samples)
			state.Progress = progressCaptureCeiling * len(samples) / maxCaptures
		}) {
			return
		}

		if i < maxCaptures-1 {
			if err := sleepCtx(ctx, s.cfg.CaptureInterval); err != nil {
				s.finish(ctx, userID, sessionID, err)

				return
			}
		}
	}

	// Processing phase: fuse the samples into one template.
	if !s.apply(userID, sessionID, func(state *entity.EnrollmentSession) {
		state.Status = entity.EnrollmentProcessing
		state.CurrentStep = "Processing captured samples"
		state.Progress = progressProcessing
	}) {
		return
	}
	if err := sleepCtx(ctx, s.cfg.ProcessingDelay); err != nil {
		s.finish(ctx, userID, sessionID, err)

		return
	}
	combined := s.combineSamples(samples)

	// Validation phase: score the fused template.
	if !s.apply(userID, sessionID, func(state *entity.EnrollmentSession) {
		state.Status = entity.EnrollmentValidating
		state.CurrentStep = "Validating template quality"
		state.Progress = progressValidating
	}) {
		return
	}
	if err := sleepCtx(ctx, s.cfg.ValidatingDelay); err != nil {
		s.finish(ctx, userID, sessionID, err)

		return
	}
	if combined == "" {
		s.finish(ctx, userID, sessionID, domainerrors.ErrInternalError.WrapMessage("empty template after processing"))

		return
	}
	score := clampScore(s.scoreSamples(qualities))

	// Saving phase: assign the device-local id and persist.
	if !s.apply(userID, sessionID, func(state *entity.EnrollmentSession) {
		state.Status = entity.EnrollmentSaving
		state.CurrentStep = "Saving template"
		state.Progress = progressSaving
	}) {
		return
	}
	if err := s.save(ctx, userID, deviceID, fingerIndex, combined, score); err != nil {
		s.finish(ctx, userID, sessionID, err)

		return
	}

	s.finish(ctx, userID, sessionID, nil)
}

// save persists the template and updates the denormalized counters. The user
// flag and the device counters are best effort: the template row is the
// source of truth.
func (s *enrollmentService) save(ctx context.Context, userID, deviceID uuid.UUID, fingerIndex int, template string, score int) error {
	deviceUserID, err := s.templateRepo.NextDeviceUserID(ctx, deviceID)
	if err != nil {
		return err
	}

	record := &entity.FingerprintTemplate{
		UserID:       userID,
		DeviceID:     deviceID,
		DeviceUserID: deviceUserID,
		FingerIndex:  fingerIndex,
		TemplateData: template,
		QualityScore: score,
		Algorithm:    templateAlgorithm,
		IsActive:     true,
	}
	if err := s.templateRepo.Create(ctx, record); err != nil {
		return err
	}

	if err := s.userRepo.SetFingerprint(ctx, userID, true); err != nil {
		s.logger.Warn("failed to flag user as enrolled",
			slog.String("user", userID.String()),
			slog.String("error", err.Error()),
		)
	}
	if err := s.deviceRepo.IncrementCounters(ctx, deviceID); err != nil {
		s.logger.Warn("failed to bump device counters",
			slog.String("device", deviceID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// apply mutates the session under the lock, enforcing monotonic progress.
// It returns false when the session is gone or was replaced, which tells the
// run goroutine to stop quietly.
func (s *enrollmentService) apply(userID uuid.UUID, sessionID string, mutate func(state *entity.EnrollmentSession)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok || sess.state.ID != sessionID || sess.state.Status.Terminal() {
		return false
	}

	before := sess.state.Progress
	mutate(&sess.state)
	if sess.state.Progress < before {
		sess.state.Progress = before
	}

	return true
}

// finish moves the session to its terminal state and schedules its removal
// after the grace window for that state.
func (s *enrollmentService) finish(ctx context.Context, userID uuid.UUID, sessionID string, cause error) {
	status := entity.EnrollmentCompleted
	step := "Enrollment completed"
	grace := s.cfg.CompletedGrace

	switch {
	case cause == nil:
	case ctx.Err() != nil:
		status = entity.EnrollmentTimeout
		step = "Enrollment timed out"
		grace = s.cfg.TimeoutGrace
	default:
		status = entity.EnrollmentError
		step = cause.Error()
		grace = s.cfg.ErrorGrace
	}

	applied := s.apply(userID, sessionID, func(state *entity.EnrollmentSession) {
		state.Status = status
		state.CurrentStep = step
		if status == entity.EnrollmentCompleted {
			state.Progress = progressCompleted
		}
	})
	if !applied {
		return
	}

	s.mu.Lock()
	if sess, ok := s.sessions[userID]; ok && sess.state.ID == sessionID {
		sess.cleanup = time.AfterFunc(grace, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if cur, ok := s.sessions[userID]; ok && cur.state.ID == sessionID {
				delete(s.sessions, userID)
			}
		})
	}
	s.mu.Unlock()

	if cause != nil {
		s.logger.Warn("enrollment finished abnormally",
			slog.String("session", sessionID),
			slog.String("user", userID.String()),
			slog.String("status", string(status)),
			slog.String("error", cause.Error()),
		)

		return
	}

	s.logger.Info("enrollment completed",
		slog.String("session", sessionID),
		slog.String("user", userID.String()),
	)
}

// combineLargestSample keeps the richest of the captured samples. Real
// template fusion happens inside the reader; the bridge hands back full
// templates on every pass.
func combineLargestSample(samples []string) string {
	best := ""
	for _, sample := range samples {
		if len(sample) > len(best) {
			best = sample
		}
	}

	return best
}

// scoreBySampleCount estimates template quality from the number of captures.
func scoreBySampleCount(qualities []int) int {
	score := 60 + len(qualities)*8
	if score > 95 {
		score = 95
	}

	return score
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}

	return score
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		// Still honor a deadline that already passed.
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
