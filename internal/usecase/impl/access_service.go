package impl

import (
	"context"
	"log/slog"
	"time"

	"muscleup/internal/domain/entity"
	"muscleup/internal/domain/repository"
	"muscleup/internal/domain/service"
	"muscleup/internal/errors"
	"muscleup/internal/usecase"

	"github.com/google/uuid"
)

type accessService struct {
	logger *slog.Logger

	gateway        service.DeviceGateway
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	templateRepo   repository.TemplateRepository
	accessLogRepo  repository.AccessLogRepository
}

// NewAccessService creates a new access service instance and subscribes it
// to finger-detected events from the connection layer.
func NewAccessService(
	logger *slog.Logger,
	gateway service.DeviceGateway,
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	templateRepo repository.TemplateRepository,
	accessLogRepo repository.AccessLogRepository,
) usecase.AccessUsecase {
	svc := &accessService{
		logger:         logger,
		gateway:        gateway,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		templateRepo:   templateRepo,
		accessLogRepo:  accessLogRepo,
	}

	gateway.OnFingerDetected(func(ctx context.Context, event service.FingerDetected) {
		if _, err := svc.HandleFingerDetected(ctx, event); err != nil {
			logger.Error("finger event processing failed",
				slog.String("device", event.DeviceID.String()),
				slog.String("error", err.Error()),
			)
		}
	})

	return svc
}

// HandleFingerDetected runs the verification pipeline for a live scan.
func (s *accessService) HandleFingerDetected(ctx context.Context, event service.FingerDetected) (*usecase.AccessDecision, error) {
	return s.verify(ctx, event.DeviceID, event.Template)
}

// Verify runs the same pipeline for an operator-supplied template.
func (s *accessService) Verify(ctx context.Context, deviceID uuid.UUID, template string) (*usecase.AccessDecision, error) {
	return s.verify(ctx, deviceID, template)
}

// RecentAttempts lists the latest access attempts, newest first.
func (s *accessService) RecentAttempts(ctx context.Context, limit int) ([]*entity.AccessAttempt, error) {
	return s.accessLogRepo.FindRecent(ctx, limit)
}

// verify matches the scan on the device, resolves the owner, applies the
// access rules and appends the attempt. Every path that reaches a decision
// writes exactly one attempt row.
func (s *accessService) verify(ctx context.Context, deviceID uuid.UUID, template string) (*usecase.AccessDecision, error) {
	scannedAt := time.Now()

	result, err := s.gateway.VerifyFinger(ctx, deviceID, template)
	if err != nil {
		return nil, errors.Wrap(err, "device verification failed")
	}

	confidence := result.Confidence / 100

	if !result.Matched {
		// The scan matched nothing on the device, which is a different
		// failure than a match whose owner cannot be resolved.
		decision := s.deny(ctx, nil, deviceID, confidence, DenialNotRecognized, scannedAt)

		return decision, nil
	}

	user, err := s.resolveUser(ctx, deviceID, result.DeviceUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		decision := s.deny(ctx, nil, deviceID, confidence, DenialUserNotFound, scannedAt)

		return decision, nil
	}

	membership, err := s.activeMembership(ctx, user.ID, scannedAt)
	if err != nil {
		return nil, err
	}

	granted, reason := evaluateAccess(user, membership, scannedAt)
	if !granted {
		decision := s.deny(ctx, user, deviceID, confidence, reason, scannedAt)

		return decision, nil
	}

	// Consume the visit last: the guard clause in the store re-checks the
	// balance, so a concurrent scan cannot double-spend the final credit.
	if err := s.membershipRepo.DecrementVisits(ctx, membership.ID); err != nil {
		if errors.Is(err, repository.ErrNoVisitsRemaining) {
			decision := s.deny(ctx, user, deviceID, confidence, DenialNoVisitsRemaining, scannedAt)

			return decision, nil
		}

		return nil, err
	}

	userID := user.ID
	attempt := &entity.AccessAttempt{
		UserID:          &userID,
		DeviceID:        &deviceID,
		AccessType:      entity.AccessEntry,
		AccessMethod:    entity.MethodFingerprint,
		Success:         true,
		ConfidenceScore: &confidence,
		DeviceTimestamp: scannedAt,
	}
	s.record(ctx, attempt)

	s.logger.Info("access granted",
		slog.String("user", user.ID.String()),
		slog.String("device", deviceID.String()),
	)

	return &usecase.AccessDecision{
		Granted:    true,
		User:       user,
		Confidence: confidence,
		Attempt:    attempt,
	}, nil
}

// resolveUser maps the device-local id back to a system user. A match with
// no stored template or owner is treated as unknown, not as a failure.
func (s *accessService) resolveUser(ctx context.Context, deviceID uuid.UUID, deviceUserID int) (*entity.User, error) {
	template, err := s.templateRepo.FindByDeviceUser(ctx, deviceID, deviceUserID)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, nil
		}

		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, template.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return user, nil
}

func (s *accessService) activeMembership(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.Membership, error) {
	membership, err := s.membershipRepo.FindActiveByUser(ctx, userID, day)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return membership, nil
}

// deny records a denied attempt and builds the matching decision.
func (s *accessService) deny(ctx context.Context, user *entity.User, deviceID uuid.UUID, confidence float64, reason string, scannedAt time.Time) *usecase.AccessDecision {
	attempt := &entity.AccessAttempt{
		DeviceID:        &deviceID,
		AccessType:      entity.AccessDenied,
		AccessMethod:    entity.MethodFingerprint,
		Success:         false,
		ConfidenceScore: &confidence,
		DenialReason:    reason,
		DeviceTimestamp: scannedAt,
	}
	if user != nil {
		userID := user.ID
		attempt.UserID = &userID
	}
	s.record(ctx, attempt)

	s.logger.Info("access denied",
		slog.String("device", deviceID.String()),
		slog.String("reason", reason),
	)

	return &usecase.AccessDecision{
		Granted:    false,
		Reason:     reason,
		User:       user,
		Confidence: confidence,
		Attempt:    attempt,
	}
}

// record appends the attempt. Logging failures must not mask the decision.
func (s *accessService) record(ctx context.Context, attempt *entity.AccessAttempt) {
	if err := s.accessLogRepo.Create(ctx, attempt); err != nil {
		s.logger.Error("failed to record access attempt",
			slog.String("error", err.Error()),
		)
	}
}
