package repository

import (
	"context"
	"time"

	"muscleup/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for membership persistence.
var (
	// ErrMembershipNotFound is returned when no matching membership exists.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrNoVisitsRemaining is returned when a decrement would go below zero.
	ErrNoVisitsRemaining = errors.New("no visits remaining")
)

// MembershipRepository defines the membership reads and the single write
// (visit decrement) the access pipeline performs.
type MembershipRepository interface {
	// FindActiveByUser retrieves the user's active membership whose date
	// range contains the given day.
	FindActiveByUser(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.Membership, error)

	// DecrementVisits atomically consumes one visit credit. It fails with
	// ErrNoVisitsRemaining instead of going negative.
	DecrementVisits(ctx context.Context, membershipID uuid.UUID) error
}
