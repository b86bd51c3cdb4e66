package usecase

import (
	"context"

	"muscleup/internal/domain/entity"
	"muscleup/internal/domain/service"

	"github.com/google/uuid"
)

// RegisterDeviceParams carries the fields needed to register a reader.
type RegisterDeviceParams struct {
	Name   string `json:"name"`
	IP     string `json:"ip"`
	Port   int    `json:"port"`
	WSPort int    `json:"ws_port"`
}

// DeviceUsecase manages the registered fingerprint readers and their bridge
// connections.
type DeviceUsecase interface {
	// RegisterDevice persists a new reader.
	RegisterDevice(ctx context.Context, params RegisterDeviceParams) (*entity.Device, error)

	// ListDevices returns every registered reader with its live status
	// merged over the stored snapshot.
	ListDevices(ctx context.Context) ([]*entity.Device, error)

	// GetStatus returns one reader with its live status merged in.
	GetStatus(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error)

	// ConnectDevice opens the bridge connection and runs the handshake.
	ConnectDevice(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error)

	// DisconnectDevice closes the bridge connection until the next connect.
	DisconnectDevice(ctx context.Context, deviceID uuid.UUID) error

	// RestartDevice reboots the reader.
	RestartDevice(ctx context.Context, deviceID uuid.UUID) error

	// ListDeviceUsers lists the identities stored on the reader itself.
	ListDeviceUsers(ctx context.Context, deviceID uuid.UUID) ([]service.DeviceUser, error)

	// DeleteDeviceUser removes an identity from the reader and revokes the
	// matching stored template.
	DeleteDeviceUser(ctx context.Context, deviceID uuid.UUID, deviceUserID int) error
}
