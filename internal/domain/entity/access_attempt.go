package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessType classifies what an access attempt was for.
type AccessType string

const (
	AccessEntry  AccessType = "entry"
	AccessExit   AccessType = "exit"
	AccessDenied AccessType = "denied"
)

// AccessMethod identifies the channel an attempt came through.
type AccessMethod string

const (
	MethodFingerprint AccessMethod = "fingerprint"
	MethodCard        AccessMethod = "card"
	MethodManual      AccessMethod = "manual"
	MethodQR          AccessMethod = "qr"
)

// AccessAttempt is one append-only record of a physical access decision.
// UserID is nil for scans that matched no enrolled identity.
type AccessAttempt struct {
	ID              uuid.UUID    `json:"id"`               // The unique identifier for the attempt.
	UserID          *uuid.UUID   `json:"user_id"`          // The resolved user, when the scan matched.
	DeviceID        *uuid.UUID   `json:"device_id"`        // The device that produced the scan.
	AccessType      AccessType   `json:"access_type"`      // entry, exit or denied.
	AccessMethod    AccessMethod `json:"access_method"`    // fingerprint, card, manual or qr.
	Success         bool         `json:"success"`          // Whether access was granted.
	ConfidenceScore *float64     `json:"confidence_score"` // Match confidence in [0,1], when reported.
	DenialReason    string       `json:"denial_reason"`    // Why access was denied, when it was.
	DeviceTimestamp time.Time    `json:"device_timestamp"` // When the device observed the attempt.
	CreatedAt       time.Time    `json:"created_at"`       // Timestamp of when this record was written.
}
