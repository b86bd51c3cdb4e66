package repository

import (
	"context"

	"muscleup/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to register a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the database operations for biometric devices.
// Rows are status snapshots; live connection state is held in memory by the
// bridge clients.
type DeviceRepository interface {
	// Create registers a new device.
	Create(ctx context.Context, device *entity.Device) error

	// FindByID retrieves an active device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// List retrieves all active devices.
	List(ctx context.Context) ([]*entity.Device, error)

	// UpdateSnapshot persists the device's live state (status, heartbeat,
	// handshake metadata, counters) as a side effect of a status change.
	UpdateSnapshot(ctx context.Context, device *entity.Device) error

	// IncrementCounters bumps the enrolled-user and template counters after
	// a successful enrollment.
	IncrementCounters(ctx context.Context, id uuid.UUID) error
}
