// Package usecase defines the interfaces for the application's use cases.
package usecase

import (
	"context"
	"time"

	"muscleup/internal/domain/entity"

	"github.com/google/uuid"
)

// StartEnrollmentParams carries the caller's choices for a new enrollment
// session. Zero values fall back to configured defaults.
type StartEnrollmentParams struct {
	UserID      uuid.UUID                `json:"user_id"`
	DeviceID    uuid.UUID                `json:"device_id"`
	FingerIndex int                      `json:"finger_index"`
	Quality     entity.EnrollmentQuality `json:"quality"`
	Timeout     time.Duration            `json:"timeout"`
}

// EnrollmentUsecase manages the fingerprint enrollment workflow: one live
// session per user, advancing through capture, processing, validation and
// persistence.
type EnrollmentUsecase interface {
	// Start creates a session and launches its state machine. It fails if
	// the user is unknown, already enrolled, already enrolling, or the
	// device is not connected.
	Start(ctx context.Context, params StartEnrollmentParams) (*entity.EnrollmentSession, error)

	// Status returns a snapshot of the user's session. Terminal sessions
	// remain visible for a grace window after finishing.
	Status(ctx context.Context, userID uuid.UUID) (*entity.EnrollmentSession, error)

	// Cancel stops the user's session and reports how many sessions were
	// cancelled (0 or 1). Unknown and already terminal sessions count as 0.
	Cancel(ctx context.Context, userID uuid.UUID) (int, error)

	// ActiveCount reports how many sessions are currently registered.
	ActiveCount() int
}
