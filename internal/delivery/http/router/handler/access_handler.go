package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"muscleup/internal/delivery/http/response"
	"muscleup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccessHandlerParams holds dependencies for AccessHandler, injected by Fx.
type AccessHandlerParams struct {
	fx.In

	AccessUC usecase.AccessUsecase
	Logger   *slog.Logger
}

// AccessHandler holds dependencies for access-related handlers
type AccessHandler struct {
	accessUC usecase.AccessUsecase
	logger   *slog.Logger
}

// NewAccessHandler is the constructor for AccessHandler
func NewAccessHandler(params AccessHandlerParams) *AccessHandler {
	return &AccessHandler{
		accessUC: params.AccessUC,
		logger:   params.Logger,
	}
}

// VerifyRequest represents the request body for an operator-triggered verification
type VerifyRequest struct {
	DeviceID string `json:"device_id" validate:"required,uuid"`
	Template string `json:"template" validate:"required"`
}

// Verify matches a template against a reader and applies the access rules
func (h *AccessHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	decision, err := h.accessUC.Verify(c.Request().Context(), deviceID, req.Template)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, decision, "Verification completed")
}

// Recent lists the latest access attempts, newest first
func (h *AccessHandler) Recent(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Invalid limit")
		}
		limit = parsed
	}

	attempts, err := h.accessUC.RecentAttempts(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attempts, "Access attempts retrieved")
}
