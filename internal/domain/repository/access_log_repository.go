package repository

import (
	"context"

	"muscleup/internal/domain/entity"
)

// AccessLogRepository defines the append-only store for access attempts.
type AccessLogRepository interface {
	// Create appends one access attempt. Attempts are never mutated.
	Create(ctx context.Context, attempt *entity.AccessAttempt) error

	// FindRecent retrieves the latest attempts, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.AccessAttempt, error)
}
