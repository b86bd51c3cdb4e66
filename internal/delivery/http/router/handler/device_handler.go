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

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a reader
type RegisterDeviceRequest struct {
	Name   string `json:"name" validate:"required"`
	IP     string `json:"ip" validate:"required,ip"`
	Port   int    `json:"port" validate:"required,min=1,max=65535"`
	WSPort int    `json:"ws_port" validate:"required,min=1,max=65535"`
}

// Register handles reader registration
func (h *DeviceHandler) Register(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), usecase.RegisterDeviceParams{
		Name:   req.Name,
		IP:     req.IP,
		Port:   req.Port,
		WSPort: req.WSPort,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// List handles retrieving all registered readers
func (h *DeviceHandler) List(c echo.Context) error {
	devices, err := h.deviceUC.ListDevices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

// Status handles retrieving one reader with live state merged in
func (h *DeviceHandler) Status(c echo.Context) error {
	deviceID, ok := h.deviceID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	device, err := h.deviceUC.GetStatus(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device status retrieved")
}

// Connect opens the bridge connection for a reader
func (h *DeviceHandler) Connect(c echo.Context) error {
	deviceID, ok := h.deviceID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	device, err := h.deviceUC.ConnectDevice(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device connected")
}

// Disconnect closes the bridge connection for a reader
func (h *DeviceHandler) Disconnect(c echo.Context) error {
	deviceID, ok := h.deviceID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DisconnectDevice(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device disconnected"}, "Device disconnected")
}

// Restart reboots a reader
func (h *DeviceHandler) Restart(c echo.Context) error {
	deviceID, ok := h.deviceID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.RestartDevice(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device restarting"}, "Device restarting")
}

// Users lists the identities stored on the reader itself
func (h *DeviceHandler) Users(c echo.Context) error {
	deviceID, ok := h.deviceID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	users, err := h.deviceUC.ListDeviceUsers(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users, "Device users retrieved")
}

// DeleteUser removes an identity from the reader and revokes its template
func (h *DeviceHandler) DeleteUser(c echo.Context) error {
	deviceID, ok := h.deviceID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	deviceUserID, err := strconv.Atoi(c.Param("deviceUserId"))
	if err != nil || deviceUserID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid device user ID")
	}

	if err := h.deviceUC.DeleteDeviceUser(c.Request().Context(), deviceID, deviceUserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device user deleted"}, "Device user deleted")
}

// deviceID extracts and parses the device ID path parameter
func (h *DeviceHandler) deviceID(c echo.Context) (uuid.UUID, bool) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}

	return deviceID, true
}
