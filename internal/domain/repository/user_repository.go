// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"muscleup/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the user-related database operations the access
// subsystem needs. Full member CRUD is owned by other services.
type UserRepository interface {
	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// SetFingerprint updates the user's enrolled-fingerprint flag.
	SetFingerprint(ctx context.Context, id uuid.UUID, enrolled bool) error
}
