package handler

import (
	"log/slog"
	"net/http"
	"time"

	"muscleup/internal/delivery/http/response"
	"muscleup/internal/domain/entity"
	"muscleup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EnrollmentHandlerParams holds dependencies for EnrollmentHandler, injected by Fx.
type EnrollmentHandlerParams struct {
	fx.In

	EnrollmentUC usecase.EnrollmentUsecase
	Logger       *slog.Logger
}

// EnrollmentHandler holds dependencies for enrollment-related handlers
type EnrollmentHandler struct {
	enrollmentUC usecase.EnrollmentUsecase
	logger       *slog.Logger
}

// NewEnrollmentHandler is the constructor for EnrollmentHandler
func NewEnrollmentHandler(params EnrollmentHandlerParams) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentUC: params.EnrollmentUC,
		logger:       params.Logger,
	}
}

// StartEnrollmentRequest represents the request body for starting an enrollment
type StartEnrollmentRequest struct {
	UserID         string `json:"user_id" validate:"required,uuid"`
	DeviceID       string `json:"device_id" validate:"required,uuid"`
	FingerIndex    int    `json:"finger_index" validate:"min=0,max=9"`
	Quality        string `json:"quality" validate:"omitempty,oneof=low medium high"`
	TimeoutSeconds int    `json:"timeout_seconds" validate:"min=0,max=300"`
}

// Start launches a new enrollment session for a user
func (h *EnrollmentHandler) Start(c echo.Context) error {
	var req StartEnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}
	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	session, err := h.enrollmentUC.Start(c.Request().Context(), usecase.StartEnrollmentParams{
		UserID:      userID,
		DeviceID:    deviceID,
		FingerIndex: req.FingerIndex,
		Quality:     entity.EnrollmentQuality(req.Quality),
		Timeout:     time.Duration(req.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, session, "Enrollment started")
}

// Status reports the user's current enrollment session
func (h *EnrollmentHandler) Status(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	session, err := h.enrollmentUC.Status(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Enrollment status retrieved")
}

// Cancel stops the user's enrollment session
func (h *EnrollmentHandler) Cancel(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	cancelled, err := h.enrollmentUC.Cancel(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if cancelled == 0 {
		return response.NotFound(c, "ENROLLMENT_NOT_FOUND", "No enrollment session to cancel")
	}

	return response.Success(c, http.StatusOK, map[string]int{"cancelled": cancelled}, "Enrollment cancelled")
}
