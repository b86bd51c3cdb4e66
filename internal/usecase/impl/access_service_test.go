package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"muscleup/internal/domain/entity"
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

// accessServiceFixtures holds all test dependencies for access service tests.
type accessServiceFixtures struct {
	service        usecase.AccessUsecase
	gateway        *mockService.MockDeviceGateway
	userRepo       *mockRepo.MockUserRepository
	membershipRepo *mockRepo.MockMembershipRepository
	templateRepo   *mockRepo.MockTemplateRepository
	accessLogRepo  *mockRepo.MockAccessLogRepository
	fingerHandler  service.FingerDetectedHandler
}

func createTestAccessService(t *testing.T) *accessServiceFixtures {
	fx := &accessServiceFixtures{
		gateway:        mockService.NewMockDeviceGateway(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		templateRepo:   mockRepo.NewMockTemplateRepository(t),
		accessLogRepo:  mockRepo.NewMockAccessLogRepository(t),
	}

	// The constructor subscribes itself to finger events; keep the handler so
	// tests can feed events the way the connection layer would.
	fx.gateway.EXPECT().
		OnFingerDetected(mock.Anything).
		Run(func(handler service.FingerDetectedHandler) {
			fx.fingerHandler = handler
		}).
		Return()

	fx.service = NewAccessService(
		slog.New(slog.DiscardHandler),
		fx.gateway,
		fx.userRepo,
		fx.membershipRepo,
		fx.templateRepo,
		fx.accessLogRepo,
	)

	return fx
}

// expectRecordedAttempt wires the log repository and returns a pointer that
// receives the attempt once the pipeline records it.
func expectRecordedAttempt(fx *accessServiceFixtures) **entity.AccessAttempt {
	var recorded *entity.AccessAttempt
	fx.accessLogRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AccessAttempt")).
		Run(func(_ context.Context, attempt *entity.AccessAttempt) {
			recorded = attempt
		}).
		Return(nil)

	return &recorded
}

func TestAccessService_Verify_Granted(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	userID := uuid.New()
	user := &entity.User{ID: userID, FirstName: "Ana"}

	fx.gateway.EXPECT().
		VerifyFinger(ctx, deviceID, "scan").
		Return(&service.VerifyResult{Matched: true, DeviceUserID: 7, Confidence: 88}, nil)
	fx.templateRepo.EXPECT().
		FindByDeviceUser(ctx, deviceID, 7).
		Return(&entity.FingerprintTemplate{UserID: userID, DeviceUserID: 7}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	membership := activeMembershipFor(userID, time.Now(), 3)
	fx.membershipRepo.EXPECT().
		FindActiveByUser(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(membership, nil)
	fx.membershipRepo.EXPECT().
		DecrementVisits(ctx, membership.ID).
		Return(nil)

	recorded := expectRecordedAttempt(fx)

	decision, err := fx.service.Verify(ctx, deviceID, "scan")
	require.NoError(t, err)

	assert.True(t, decision.Granted)
	assert.Empty(t, decision.Reason)
	assert.Equal(t, user, decision.User)
	assert.InDelta(t, 0.88, decision.Confidence, 0.001)

	require.NotNil(t, *recorded)
	attempt := *recorded
	assert.True(t, attempt.Success)
	assert.Equal(t, entity.AccessEntry, attempt.AccessType)
	assert.Equal(t, entity.MethodFingerprint, attempt.AccessMethod)
	require.NotNil(t, attempt.UserID)
	assert.Equal(t, userID, *attempt.UserID)
}

func TestAccessService_Verify_NoMatch(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.gateway.EXPECT().
		VerifyFinger(ctx, deviceID, "scan").
		Return(&service.VerifyResult{Matched: false, Confidence: 12}, nil)

	recorded := expectRecordedAttempt(fx)

	decision, err := fx.service.Verify(ctx, deviceID, "scan")
	require.NoError(t, err)

	assert.False(t, decision.Granted)
	assert.Equal(t, DenialNotRecognized, decision.Reason)
	assert.Nil(t, decision.User)

	require.NotNil(t, *recorded)
	attempt := *recorded
	assert.False(t, attempt.Success)
	assert.Equal(t, entity.AccessDenied, attempt.AccessType)
	assert.Equal(t, DenialNotRecognized, attempt.DenialReason)
	assert.Nil(t, attempt.UserID)
}

func TestAccessService_Verify_StaleDeviceUser(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.gateway.EXPECT().
		VerifyFinger(ctx, deviceID, "scan").
		Return(&service.VerifyResult{Matched: true, DeviceUserID: 42, Confidence: 90}, nil)

	// The device still holds an identity the system already deactivated.
	fx.templateRepo.EXPECT().
		FindByDeviceUser(ctx, deviceID, 42).
		Return(nil, repository.ErrTemplateNotFound)

	recorded := expectRecordedAttempt(fx)

	decision, err := fx.service.Verify(ctx, deviceID, "scan")
	require.NoError(t, err)

	assert.False(t, decision.Granted)
	assert.Equal(t, DenialUserNotFound, decision.Reason)
	require.NotNil(t, *recorded)
	assert.Nil(t, (*recorded).UserID)
}

func TestAccessService_Verify_NoActiveMembership(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	userID := uuid.New()

	fx.gateway.EXPECT().
		VerifyFinger(ctx, deviceID, "scan").
		Return(&service.VerifyResult{Matched: true, DeviceUserID: 7, Confidence: 95}, nil)
	fx.templateRepo.EXPECT().
		FindByDeviceUser(ctx, deviceID, 7).
		Return(&entity.FingerprintTemplate{UserID: userID}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	fx.membershipRepo.EXPECT().
		FindActiveByUser(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrMembershipNotFound)

	recorded := expectRecordedAttempt(fx)

	decision, err := fx.service.Verify(ctx, deviceID, "scan")
	require.NoError(t, err)

	assert.False(t, decision.Granted)
	assert.Equal(t, DenialNoActiveMembership, decision.Reason)

	require.NotNil(t, *recorded)
	attempt := *recorded
	require.NotNil(t, attempt.UserID)
	assert.Equal(t, userID, *attempt.UserID)
}

func TestAccessService_Verify_VisitRaceDenied(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	userID := uuid.New()

	fx.gateway.EXPECT().
		VerifyFinger(ctx, deviceID, "scan").
		Return(&service.VerifyResult{Matched: true, DeviceUserID: 7, Confidence: 95}, nil)
	fx.templateRepo.EXPECT().
		FindByDeviceUser(ctx, deviceID, 7).
		Return(&entity.FingerprintTemplate{UserID: userID}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	// One credit left on the pre-fetched row, but a concurrent scan spends it
	// before this pipeline reaches the decrement.
	membership := activeMembershipFor(userID, time.Now(), 1)
	fx.membershipRepo.EXPECT().
		FindActiveByUser(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(membership, nil)
	fx.membershipRepo.EXPECT().
		DecrementVisits(ctx, membership.ID).
		Return(repository.ErrNoVisitsRemaining)

	recorded := expectRecordedAttempt(fx)

	decision, err := fx.service.Verify(ctx, deviceID, "scan")
	require.NoError(t, err)

	assert.False(t, decision.Granted)
	assert.Equal(t, DenialNoVisitsRemaining, decision.Reason)
	require.NotNil(t, *recorded)
	assert.False(t, (*recorded).Success)
}

func TestAccessService_Verify_GatewayFailure(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.gateway.EXPECT().
		VerifyFinger(ctx, deviceID, "scan").
		Return(nil, errors.New("bridge command timed out"))

	_, err := fx.service.Verify(ctx, deviceID, "scan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device verification failed")
}

func TestAccessService_Verify_LogFailureDoesNotMaskDecision(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.gateway.EXPECT().
		VerifyFinger(ctx, deviceID, "scan").
		Return(&service.VerifyResult{Matched: false, Confidence: 10}, nil)
	fx.accessLogRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AccessAttempt")).
		Return(errors.New("insert failed"))

	decision, err := fx.service.Verify(ctx, deviceID, "scan")
	require.NoError(t, err)
	assert.False(t, decision.Granted)
	assert.Equal(t, DenialNotRecognized, decision.Reason)
}

func TestAccessService_FingerEventRunsPipeline(t *testing.T) {
	fx := createTestAccessService(t)
	require.NotNil(t, fx.fingerHandler)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.gateway.EXPECT().
		VerifyFinger(ctx, deviceID, "live-scan").
		Return(&service.VerifyResult{Matched: false, Confidence: 20}, nil)
	expectRecordedAttempt(fx)

	fx.fingerHandler(ctx, service.FingerDetected{DeviceID: deviceID, Template: "live-scan"})

	fx.gateway.AssertCalled(t, "VerifyFinger", ctx, deviceID, "live-scan")
}

func TestAccessService_RecentAttempts(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	attempts := []*entity.AccessAttempt{{Success: true}, {Success: false}}

	fx.accessLogRepo.EXPECT().
		FindRecent(ctx, 10).
		Return(attempts, nil)

	got, err := fx.service.RecentAttempts(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, attempts, got)
}
