package bridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"muscleup/config"
	"muscleup/internal/domain/entity"
	"muscleup/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Registry implements service.DeviceGateway. It owns one client per device
// and fans device events out to the registered handlers.
type Registry struct {
	cfg    clientConfig
	logger *slog.Logger

	mu      sync.Mutex
	clients map[uuid.UUID]*client

	handlerMu sync.RWMutex
	onFinger  []service.FingerDetectedHandler
	onStatus  []service.StatusChangedHandler
}

// NewRegistry is the constructor for Registry. On shutdown every live
// connection is closed.
func NewRegistry(params Params) service.DeviceGateway {
	bio := params.Config.Biometric
	registry := &Registry{
		cfg: clientConfig{
			commandTimeout:       bio.CommandTimeout,
			heartbeatInterval:    bio.HeartbeatInterval,
			reconnectBackoff:     bio.ReconnectBackoff,
			maxReconnectAttempts: bio.MaxReconnectAttempts,
		},
		logger:  params.Logger,
		clients: make(map[uuid.UUID]*client),
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			registry.closeAll(ctx)

			return nil
		},
	})

	return registry
}

// Connect opens the bridge connection for the device and performs the handshake.
func (r *Registry) Connect(ctx context.Context, device *entity.Device) (*entity.Device, error) {
	r.mu.Lock()
	cl, ok := r.clients[device.ID]
	if !ok {
		deviceID := device.ID
		cl = newClient(*device, r.cfg, r.logger,
			func(ctx context.Context, template string) {
				r.dispatchFinger(ctx, service.FingerDetected{DeviceID: deviceID, Template: template})
			},
			func(snap entity.Device) {
				r.dispatchStatus(service.StatusChanged{Device: snap})
			},
		)
		r.clients[device.ID] = cl
	}
	r.mu.Unlock()

	snap, err := cl.connect(ctx)
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

// Disconnect tears the connection down and disables automatic reconnects.
func (r *Registry) Disconnect(ctx context.Context, deviceID uuid.UUID) error {
	cl, ok := r.client(deviceID)
	if !ok {
		return ErrNotConnected
	}

	return cl.disconnect(ctx)
}

// Status returns the last known in-memory state without blocking.
func (r *Registry) Status(deviceID uuid.UUID) (*entity.Device, bool) {
	cl, ok := r.client(deviceID)
	if !ok {
		return nil, false
	}

	snap := cl.snapshot()

	return &snap, true
}

// CaptureSample drives one capture pass of an enrollment.
func (r *Registry) CaptureSample(ctx context.Context, deviceID uuid.UUID, req service.CaptureRequest) (*service.CaptureResult, error) {
	cl, ok := r.client(deviceID)
	if !ok {
		return nil, ErrNotConnected
	}

	reply, err := cl.send(ctx, CmdEnrollUser, map[string]any{
		"userId":      req.UserID.String(),
		"userName":    req.UserName,
		"fingerIndex": req.FingerIndex,
	})
	if err != nil {
		return nil, err
	}

	var data enrollReplyData
	if err := json.Unmarshal(reply.Data, &data); err != nil {
		return nil, errors.Wrap(err, "malformed enroll reply")
	}

	return &service.CaptureResult{Template: data.Template, Quality: data.Quality}, nil
}

// VerifyFinger asks the device to match a scan against its local store.
func (r *Registry) VerifyFinger(ctx context.Context, deviceID uuid.UUID, template string) (*service.VerifyResult, error) {
	cl, ok := r.client(deviceID)
	if !ok {
		return nil, ErrNotConnected
	}

	reply, err := cl.send(ctx, CmdVerifyFinger, map[string]any{
		"template": template,
	})
	if err != nil {
		return nil, err
	}

	var data verifyReplyData
	if err := json.Unmarshal(reply.Data, &data); err != nil {
		return nil, errors.Wrap(err, "malformed verify reply")
	}

	return &service.VerifyResult{
		Matched:      data.Matched,
		DeviceUserID: data.DeviceUserID,
		Confidence:   data.Confidence,
	}, nil
}

// DeviceUsers lists the identities stored on the device.
func (r *Registry) DeviceUsers(ctx context.Context, deviceID uuid.UUID) ([]service.DeviceUser, error) {
	cl, ok := r.client(deviceID)
	if !ok {
		return nil, ErrNotConnected
	}

	reply, err := cl.send(ctx, CmdGetAllUsers, nil)
	if err != nil {
		return nil, err
	}

	var data []deviceUserData
	if err := json.Unmarshal(reply.Data, &data); err != nil {
		return nil, errors.Wrap(err, "malformed user list reply")
	}

	users := make([]service.DeviceUser, 0, len(data))
	for _, u := range data {
		users = append(users, service.DeviceUser{
			DeviceUserID: u.DeviceUserID,
			Name:         u.Name,
			Fingers:      u.Fingers,
		})
	}

	return users, nil
}

// DeleteDeviceUser removes one identity from the device.
func (r *Registry) DeleteDeviceUser(ctx context.Context, deviceID uuid.UUID, deviceUserID int) error {
	cl, ok := r.client(deviceID)
	if !ok {
		return ErrNotConnected
	}

	_, err := cl.send(ctx, CmdDeleteUser, map[string]any{
		"zkUserId": deviceUserID,
	})

	return err
}

// Restart reboots the device.
func (r *Registry) Restart(ctx context.Context, deviceID uuid.UUID) error {
	cl, ok := r.client(deviceID)
	if !ok {
		return ErrNotConnected
	}

	_, err := cl.send(ctx, CmdRestart, nil)

	return err
}

// OnFingerDetected registers a handler for finger-detected events.
func (r *Registry) OnFingerDetected(handler service.FingerDetectedHandler) {
	r.handlerMu.Lock()
	defer r.handlerMu.Unlock()

	r.onFinger = append(r.onFinger, handler)
}

// OnStatusChanged registers a handler for device status events.
func (r *Registry) OnStatusChanged(handler service.StatusChangedHandler) {
	r.handlerMu.Lock()
	defer r.handlerMu.Unlock()

	r.onStatus = append(r.onStatus, handler)
}

func (r *Registry) client(deviceID uuid.UUID) (*client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cl, ok := r.clients[deviceID]

	return cl, ok
}

func (r *Registry) dispatchFinger(ctx context.Context, event service.FingerDetected) {
	r.handlerMu.RLock()
	handlers := r.onFinger
	r.handlerMu.RUnlock()

	for _, handler := range handlers {
		handler(ctx, event)
	}
}

func (r *Registry) dispatchStatus(event service.StatusChanged) {
	r.handlerMu.RLock()
	handlers := r.onStatus
	r.handlerMu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

func (r *Registry) closeAll(ctx context.Context) {
	r.mu.Lock()
	clients := make([]*client, 0, len(r.clients))
	for _, cl := range r.clients {
		clients = append(clients, cl)
	}
	r.mu.Unlock()

	for _, cl := range clients {
		if err := cl.disconnect(ctx); err != nil {
			r.logger.Warn("failed to close device connection", slog.String("error", err.Error()))
		}
	}
}
