package usecase

import (
	"context"

	"muscleup/internal/domain/entity"
	"muscleup/internal/domain/service"

	"github.com/google/uuid"
)

// AccessDecision is the outcome of one verification pass.
type AccessDecision struct {
	Granted    bool                  `json:"granted"`
	Reason     string                `json:"reason,omitempty"`
	User       *entity.User          `json:"user,omitempty"`
	Confidence float64               `json:"confidence"`
	Attempt    *entity.AccessAttempt `json:"attempt,omitempty"`
}

// AccessUsecase runs the fingerprint verification pipeline and the access
// decision rules, and records every attempt.
type AccessUsecase interface {
	// HandleFingerDetected is the event path: a live scan from a reader is
	// matched, evaluated and logged. Errors are returned for the caller to
	// log; the scan itself is already consumed.
	HandleFingerDetected(ctx context.Context, event service.FingerDetected) (*AccessDecision, error)

	// Verify is the API path: match a template supplied by an operator
	// against a device and run the same decision rules.
	Verify(ctx context.Context, deviceID uuid.UUID, template string) (*AccessDecision, error)

	// RecentAttempts lists the latest access attempts, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]*entity.AccessAttempt, error)
}
