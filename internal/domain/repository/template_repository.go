package repository

import (
	"context"

	"muscleup/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for template persistence.
var (
	// ErrTemplateNotFound is returned when a template is not found.
	ErrTemplateNotFound = errors.New("fingerprint template not found")
	// ErrDuplicateTemplate is returned when a unique constraint is violated.
	ErrDuplicateTemplate = errors.New("fingerprint template already exists")
)

// TemplateRepository defines the database operations for fingerprint templates.
type TemplateRepository interface {
	// Create persists a new template.
	Create(ctx context.Context, template *entity.FingerprintTemplate) error

	// FindActiveByUser retrieves all active templates owned by a user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FingerprintTemplate, error)

	// FindByDeviceUser resolves a device-local numeric id back to its template.
	FindByDeviceUser(ctx context.Context, deviceID uuid.UUID, deviceUserID int) (*entity.FingerprintTemplate, error)

	// NextDeviceUserID atomically assigns the next free device-local numeric
	// id for the device. The assignment must be safe under concurrent
	// enrollments against the same device.
	NextDeviceUserID(ctx context.Context, deviceID uuid.UUID) (int, error)

	// DeactivateByDeviceUser revokes the template holding the given
	// device-local id and returns it, so callers can clear the owner's flag.
	DeactivateByDeviceUser(ctx context.Context, deviceID uuid.UUID, deviceUserID int) (*entity.FingerprintTemplate, error)
}
