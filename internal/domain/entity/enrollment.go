package entity

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus is the state of an in-progress enrollment session.
// Transitions are strictly ordered: waiting → capturing → processing →
// validating → saving → completed, with error or timeout reachable from any
// non-terminal state.
type EnrollmentStatus string

const (
	EnrollmentWaiting    EnrollmentStatus = "waiting"
	EnrollmentCapturing  EnrollmentStatus = "capturing"
	EnrollmentProcessing EnrollmentStatus = "processing"
	EnrollmentValidating EnrollmentStatus = "validating"
	EnrollmentSaving     EnrollmentStatus = "saving"
	EnrollmentCompleted  EnrollmentStatus = "completed"
	EnrollmentError      EnrollmentStatus = "error"
	EnrollmentTimeout    EnrollmentStatus = "timeout"
)

// Terminal reports whether the status ends the session's state machine.
func (s EnrollmentStatus) Terminal() bool {
	switch s {
	case EnrollmentCompleted, EnrollmentError, EnrollmentTimeout:
		return true
	default:
		return false
	}
}

// EnrollmentQuality selects how many capture passes a session requires.
type EnrollmentQuality string

const (
	QualityLow    EnrollmentQuality = "low"
	QualityMedium EnrollmentQuality = "medium"
	QualityHigh   EnrollmentQuality = "high"
)

// MaxCaptures returns the number of samples required at this quality.
// Unknown values fall back to high.
func (q EnrollmentQuality) MaxCaptures() int {
	switch q {
	case QualityLow:
		return 2
	case QualityMedium:
		return 3
	default:
		return 4
	}
}

// EnrollmentSession is one in-progress enrollment attempt for one user.
// It lives only in the session registry; nothing here is persisted.
type EnrollmentSession struct {
	ID            string            `json:"enrollment_id"`  // The unique session identifier.
	UserID        uuid.UUID         `json:"user_id"`        // The user being enrolled.
	UserName      string            `json:"user_name"`      // Display name forwarded to the device.
	DeviceID      uuid.UUID         `json:"device_id"`      // The target device.
	Status        EnrollmentStatus  `json:"status"`         // Current state-machine state.
	Progress      int               `json:"progress"`       // 0-100, monotonically non-decreasing while live.
	CurrentStep   string            `json:"current_step"`   // Human-readable description of the current step.
	StartedAt     time.Time         `json:"started_at"`     // When the session was created.
	Timeout       time.Duration     `json:"timeout"`        // Overall deadline for the session.
	RemainingTime time.Duration     `json:"remaining_time"` // Recomputed from the deadline on every read.
	Captures      int               `json:"captures"`       // Samples collected so far.
	MaxCaptures   int               `json:"max_captures"`   // Samples required for this quality.
	Quality       EnrollmentQuality `json:"quality"`        // Requested capture quality.
	FingerIndex   int               `json:"finger_index"`   // Which finger is being enrolled (0-9).
}
