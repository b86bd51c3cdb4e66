package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"muscleup/config"
	"muscleup/internal/domain/entity"
	domainerrors "muscleup/internal/domain/errors"
	"muscleup/internal/domain/repository"
	"muscleup/internal/domain/service"
	mockRepo "muscleup/internal/mocks/repository"
	mockService "muscleup/internal/mocks/service"
	"muscleup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// enrollmentServiceFixtures holds all test dependencies for enrollment tests.
type enrollmentServiceFixtures struct {
	service      usecase.EnrollmentUsecase
	gateway      *mockService.MockDeviceGateway
	userRepo     *mockRepo.MockUserRepository
	templateRepo *mockRepo.MockTemplateRepository
	deviceRepo   *mockRepo.MockDeviceRepository
}

func createTestEnrollmentService(t *testing.T, enrollCfg config.EnrollmentConfig) enrollmentServiceFixtures {
	cfg := &config.Config{}
	cfg.Biometric.Enrollment = enrollCfg

	gateway := mockService.NewMockDeviceGateway(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	svc := NewEnrollmentService(cfg, slog.New(slog.DiscardHandler), gateway, userRepo, templateRepo, deviceRepo)

	return enrollmentServiceFixtures{
		service:      svc,
		gateway:      gateway,
		userRepo:     userRepo,
		templateRepo: templateRepo,
		deviceRepo:   deviceRepo,
	}
}

// fastEnrollmentConfig keeps the phase delays tiny so full sessions finish in
// milliseconds, with grace windows long enough to observe terminal state.
func fastEnrollmentConfig() config.EnrollmentConfig {
	return config.EnrollmentConfig{
		DefaultTimeout:  5 * time.Second,
		CaptureInterval: time.Millisecond,
		ProcessingDelay: time.Millisecond,
		ValidatingDelay: time.Millisecond,
		CompletedGrace:  time.Hour,
		ErrorGrace:      time.Hour,
		TimeoutGrace:    time.Hour,
	}
}

func testEnrollmentUser(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:        id,
		FirstName: "Ana",
		LastName:  "Torres",
		Email:     "ana@example.com",
	}
}

func connectedDevice(id uuid.UUID) *entity.Device {
	return &entity.Device{ID: id, Status: entity.DeviceConnected}
}

func TestEnrollmentService_Start_FullSessionCompletes(t *testing.T) {
	fx := createTestEnrollmentService(t, fastEnrollmentConfig())

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testEnrollmentUser(userID), nil)
	fx.templateRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, nil)
	fx.gateway.EXPECT().
		Status(deviceID).
		Return(connectedDevice(deviceID), true)

	fx.gateway.EXPECT().
		CaptureSample(mock.Anything, deviceID, mock.AnythingOfType("service.CaptureRequest")).
		Return(&service.CaptureResult{Template: "sample-data", Quality: 70}, nil)

	fx.templateRepo.EXPECT().
		NextDeviceUserID(mock.Anything, deviceID).
		Return(7, nil)

	var saved *entity.FingerprintTemplate
	fx.templateRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.FingerprintTemplate")).
		Run(func(_ context.Context, template *entity.FingerprintTemplate) {
			saved = template
		}).
		Return(nil)
	fx.userRepo.EXPECT().
		SetFingerprint(mock.Anything, userID, true).
		Return(nil)
	fx.deviceRepo.EXPECT().
		IncrementCounters(mock.Anything, deviceID).
		Return(nil)

	session, err := fx.service.Start(ctx, usecase.StartEnrollmentParams{
		UserID:      userID,
		DeviceID:    deviceID,
		FingerIndex: 1,
		Quality:     entity.QualityLow,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EnrollmentWaiting, session.Status)
	assert.Equal(t, 2, session.MaxCaptures)
	assert.Equal(t, 1, fx.service.ActiveCount())

	require.Eventually(t, func() bool {
		status, err := fx.service.Status(ctx, userID)

		return err == nil && status.Status == entity.EnrollmentCompleted
	}, 3*time.Second, 5*time.Millisecond)

	status, err := fx.service.Status(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 100, status.Progress)
	assert.Equal(t, 2, status.Captures)

	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, deviceID, saved.DeviceID)
	assert.Equal(t, 7, saved.DeviceUserID)
	assert.Equal(t, 1, saved.FingerIndex)
	assert.Equal(t, "sample-data", saved.TemplateData)
	assert.Equal(t, 76, saved.QualityScore)
	assert.Equal(t, templateAlgorithm, saved.Algorithm)
	assert.True(t, saved.IsActive)
}

func TestEnrollmentService_Start_UserNotFound(t *testing.T) {
	fx := createTestEnrollmentService(t, fastEnrollmentConfig())

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Start(ctx, usecase.StartEnrollmentParams{
		UserID:   userID,
		DeviceID: uuid.New(),
	})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Equal(t, 0, fx.service.ActiveCount())
}

func TestEnrollmentService_Start_AlreadyEnrolledByFlag(t *testing.T) {
	fx := createTestEnrollmentService(t, fastEnrollmentConfig())

	ctx := context.Background()
	userID := uuid.New()

	user := testEnrollmentUser(userID)
	user.Fingerprint = true

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)
	fx.templateRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, nil)

	_, err := fx.service.Start(ctx, usecase.StartEnrollmentParams{
		UserID:   userID,
		DeviceID: uuid.New(),
	})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyEnrolled)
}

func TestEnrollmentService_Start_AlreadyEnrolledByTemplate(t *testing.T) {
	fx := createTestEnrollmentService(t, fastEnrollmentConfig())

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testEnrollmentUser(userID), nil)
	fx.templateRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.FingerprintTemplate{{UserID: userID}}, nil)

	_, err := fx.service.Start(ctx, usecase.StartEnrollmentParams{
		UserID:   userID,
		DeviceID: uuid.New(),
	})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyEnrolled)
}

func TestEnrollmentService_Start_DeviceNotConnected(t *testing.T) {
	fx := createTestEnrollmentService(t, fastEnrollmentConfig())

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testEnrollmentUser(userID), nil)
	fx.templateRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, nil)
	fx.gateway.EXPECT().
		Status(deviceID).
		Return(nil, false)

	_, err := fx.service.Start(ctx, usecase.StartEnrollmentParams{
		UserID:   userID,
		DeviceID: deviceID,
	})
	require.ErrorIs(t, err, domainerrors.ErrDeviceUnavailable)
}

func TestEnrollmentService_Start_SecondSessionRejected(t *testing.T) {
	cfg := fastEnrollmentConfig()
	// Park the first session between captures so it stays live.
	cfg.CaptureInterval = time.Hour
	fx := createTestEnrollmentService(t, cfg)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testEnrollmentUser(userID), nil)
	fx.templateRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, nil)
	fx.gateway.EXPECT().
		Status(deviceID).
		Return(connectedDevice(deviceID), true)
	fx.gateway.EXPECT().
		CaptureSample(mock.Anything, deviceID, mock.AnythingOfType("service.CaptureRequest")).
		Return(&service.CaptureResult{Template: "sample", Quality: 60}, nil).
		Maybe()

	_, err := fx.service.Start(ctx, usecase.StartEnrollmentParams{
		UserID:   userID,
		DeviceID: deviceID,
	})
	require.NoError(t, err)

	_, err = fx.service.Start(ctx, usecase.StartEnrollmentParams{
		UserID:   userID,
		DeviceID: deviceID,
	})
	require.ErrorIs(t, err, domainerrors.ErrEnrollmentInProgress)

	cancelled, err := fx.service.Cancel(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)
}

func TestEnrollmentService_CaptureFailureEndsInError(t *testing.T) {
	fx := createTestEnrollmentService(t, fastEnrollmentConfig())

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testEnrollmentUser(userID), nil)
	fx.templateRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, nil)
	fx.gateway.EXPECT().
		Status(deviceID).
		Return(connectedDevice(deviceID), true)
	fx.gateway.EXPECT().
		CaptureSample(mock.Anything, deviceID, mock.AnythingOfType("service.CaptureRequest")).
		Return(nil, errors.New("reader jammed"))

	_, err := fx.service.Start(ctx, usecase.StartEnrollmentParams{
		UserID:   userID,
		DeviceID: deviceID,
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		status, err := fx.service.Status(ctx, userID)

		return err == nil && status.Status == entity.EnrollmentError
	}, 3*time.Second, 5*time.Millisecond)

	status, err := fx.service.Status(ctx, userID)
	require.NoError(t, err)
	assert.Contains(t, status.CurrentStep, "reader jammed")
}

func TestEnrollmentService_DeadlineEndsInTimeout(t *testing.T) {
	cfg := fastEnrollmentConfig()
	cfg.CaptureInterval = time.Hour
	fx := createTestEnrollmentService(t, cfg)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testEnrollmentUser(userID), nil)
	fx.templateRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, nil)
	fx.gateway.EXPECT().
		Status(deviceID).
		Return(connectedDevice(deviceID), true)
	fx.gateway.EXPECT().
		CaptureSample(mock.Anything, deviceID, mock.AnythingOfType("service.CaptureRequest")).
		Return(&service.CaptureResult{Template: "sample", Quality: 60}, nil).
		Maybe()

	_, err := fx.service.Start(ctx, usecase.StartEnrollmentParams{
		UserID:   userID,
		DeviceID: deviceID,
		Timeout:  50 * time.Millisecond,
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		status, err := fx.service.Status(ctx, userID)

		return err == nil && status.Status == entity.EnrollmentTimeout
	}, 3*time.Second, 5*time.Millisecond)

	status, err := fx.service.Status(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), status.RemainingTime)
}

func TestEnrollmentService_Status_UnknownSession(t *testing.T) {
	fx := createTestEnrollmentService(t, fastEnrollmentConfig())

	_, err := fx.service.Status(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrEnrollmentNotFound)
}

func TestEnrollmentService_Cancel_UnknownSessionIsNoop(t *testing.T) {
	fx := createTestEnrollmentService(t, fastEnrollmentConfig())

	cancelled, err := fx.service.Cancel(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, cancelled)
}

func TestEnrollmentService_Cancel_RemovesLiveSession(t *testing.T) {
	cfg := fastEnrollmentConfig()
	cfg.CaptureInterval = time.Hour
	fx := createTestEnrollmentService(t, cfg)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testEnrollmentUser(userID), nil)
	fx.templateRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, nil)
	fx.gateway.EXPECT().
		Status(deviceID).
		Return(connectedDevice(deviceID), true)
	fx.gateway.EXPECT().
		CaptureSample(mock.Anything, deviceID, mock.AnythingOfType("service.CaptureRequest")).
		Return(&service.CaptureResult{Template: "sample", Quality: 60}, nil).
		Maybe()

	_, err := fx.service.Start(ctx, usecase.StartEnrollmentParams{
		UserID:   userID,
		DeviceID: deviceID,
	})
	require.NoError(t, err)
	require.Equal(t, 1, fx.service.ActiveCount())

	cancelled, err := fx.service.Cancel(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)
	assert.Equal(t, 0, fx.service.ActiveCount())

	_, err = fx.service.Status(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrEnrollmentNotFound)

	// Cancelling again stays a no-op and counts nothing.
	cancelled, err = fx.service.Cancel(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, cancelled)
}

func TestEnrollmentQuality_CaptureCounts(t *testing.T) {
	assert.Equal(t, 2, entity.QualityLow.MaxCaptures())
	assert.Equal(t, 3, entity.QualityMedium.MaxCaptures())
	assert.Equal(t, 4, entity.QualityHigh.MaxCaptures())
	assert.Equal(t, 4, entity.EnrollmentQuality("bogus").MaxCaptures())
}

func TestCombineLargestSample(t *testing.T) {
	assert.Equal(t, "", combineLargestSample(nil))
	assert.Equal(t, "longest-sample", combineLargestSample([]string{"short", "longest-sample", "mid-size"}))
}

func TestScoreBySampleCount(t *testing.T) {
	assert.Equal(t, 76, scoreBySampleCount([]int{70, 80}))
	assert.Equal(t, 92, scoreBySampleCount([]int{1, 2, 3, 4}))
	// The score is capped well below a perfect reading.
	assert.Equal(t, 95, scoreBySampleCount(make([]int, 10)))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 55, clampScore(55))
	assert.Equal(t, 100, clampScore(140))
}
