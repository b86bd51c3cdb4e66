package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"muscleup/internal/delivery/http/validator"
	"muscleup/internal/domain/entity"
	domainerrors "muscleup/internal/domain/errors"
	mockUsecase "muscleup/internal/mocks/usecase"
	"muscleup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// enrollmentHandlerFixtures holds all test dependencies for enrollment handler tests.
type enrollmentHandlerFixtures struct {
	handler      *EnrollmentHandler
	enrollmentUC *mockUsecase.MockEnrollmentUsecase
	echo         *echo.Echo
}

func createTestEnrollmentHandler(t *testing.T) enrollmentHandlerFixtures {
	enrollmentUC := mockUsecase.NewMockEnrollmentUsecase(t)

	e := echo.New()
	e.Validator = validator.New()

	handler := NewEnrollmentHandler(EnrollmentHandlerParams{
		EnrollmentUC: enrollmentUC,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return enrollmentHandlerFixtures{
		handler:      handler,
		enrollmentUC: enrollmentUC,
		echo:         e,
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestEnrollmentHandler_Start_Accepted(t *testing.T) {
	fx := createTestEnrollmentHandler(t)

	userID := uuid.New()
	deviceID := uuid.New()

	session := &entity.EnrollmentSession{
		ID:          uuid.NewString(),
		UserID:      userID,
		DeviceID:    deviceID,
		Status:      entity.EnrollmentWaiting,
		MaxCaptures: 3,
		Quality:     entity.QualityMedium,
	}

	fx.enrollmentUC.EXPECT().
		Start(mock.Anything, usecase.StartEnrollmentParams{
			UserID:      userID,
			DeviceID:    deviceID,
			FingerIndex: 1,
			Quality:     entity.QualityMedium,
			Timeout:     90 * time.Second,
		}).
		Return(session, nil)

	body := `{"user_id":"` + userID.String() + `","device_id":"` + deviceID.String() +
		`","finger_index":1,"quality":"medium","timeout_seconds":90}`
	req := jsonRequest(http.MethodPost, "/api/biometric/enroll", body)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Start(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), session.ID)
	assert.Contains(t, rec.Body.String(), `"status":"waiting"`)
}

func TestEnrollmentHandler_Start_InvalidQuality(t *testing.T) {
	fx := createTestEnrollmentHandler(t)

	body := `{"user_id":"` + uuid.NewString() + `","device_id":"` + uuid.NewString() +
		`","quality":"ultra"}`
	req := jsonRequest(http.MethodPost, "/api/biometric/enroll", body)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Start(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestEnrollmentHandler_Start_MalformedUserID(t *testing.T) {
	fx := createTestEnrollmentHandler(t)

	body := `{"user_id":"not-a-uuid","device_id":"` + uuid.NewString() + `"}`
	req := jsonRequest(http.MethodPost, "/api/biometric/enroll", body)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Start(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnrollmentHandler_Start_AlreadyEnrolled(t *testing.T) {
	fx := createTestEnrollmentHandler(t)

	fx.enrollmentUC.EXPECT().
		Start(mock.Anything, mock.AnythingOfType("usecase.StartEnrollmentParams")).
		Return(nil, domainerrors.ErrAlreadyEnrolled)

	body := `{"user_id":"` + uuid.NewString() + `","device_id":"` + uuid.NewString() + `"}`
	req := jsonRequest(http.MethodPost, "/api/biometric/enroll", body)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Start(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ALREADY_ENROLLED")
}

func TestEnrollmentHandler_Status_Found(t *testing.T) {
	fx := createTestEnrollmentHandler(t)

	userID := uuid.New()
	session := &entity.EnrollmentSession{
		ID:       uuid.NewString(),
		UserID:   userID,
		Status:   entity.EnrollmentCapturing,
		Progress: 40,
		Captures: 2,
	}

	fx.enrollmentUC.EXPECT().
		Status(mock.Anything, userID).
		Return(session, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/biometric/enroll/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())

	require.NoError(t, fx.handler.Status(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"capturing"`)
	assert.Contains(t, rec.Body.String(), `"progress":40`)
}

func TestEnrollmentHandler_Status_NotFound(t *testing.T) {
	fx := createTestEnrollmentHandler(t)

	userID := uuid.New()

	fx.enrollmentUC.EXPECT().
		Status(mock.Anything, userID).
		Return(nil, domainerrors.ErrEnrollmentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/biometric/enroll/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())

	require.NoError(t, fx.handler.Status(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ENROLLMENT_NOT_FOUND")
}

func TestEnrollmentHandler_Status_MalformedID(t *testing.T) {
	fx := createTestEnrollmentHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/biometric/enroll/abc", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("abc")

	require.NoError(t, fx.handler.Status(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnrollmentHandler_Cancel(t *testing.T) {
	fx := createTestEnrollmentHandler(t)

	userID := uuid.New()

	fx.enrollmentUC.EXPECT().
		Cancel(mock.Anything, userID).
		Return(1, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/biometric/enroll/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())

	require.NoError(t, fx.handler.Cancel(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cancelled":1`)
}

func TestEnrollmentHandler_Cancel_NothingMatched(t *testing.T) {
	fx := createTestEnrollmentHandler(t)

	userID := uuid.New()

	fx.enrollmentUC.EXPECT().
		Cancel(mock.Anything, userID).
		Return(0, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/biometric/enroll/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())

	require.NoError(t, fx.handler.Cancel(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ENROLLMENT_NOT_FOUND")
}
