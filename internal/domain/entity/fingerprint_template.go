package entity

import (
	"time"

	"github.com/google/uuid"
)

// FingerprintTemplate is the persisted biometric signature produced by a
// completed enrollment. One user may hold one template per finger index, but
// a user with any active template counts as enrolled.
type FingerprintTemplate struct {
	ID           uuid.UUID `json:"id"`             // The unique identifier for the template.
	UserID       uuid.UUID `json:"user_id"`        // The owning user.
	DeviceID     uuid.UUID `json:"device_id"`      // The device the template was enrolled on.
	DeviceUserID int       `json:"device_user_id"` // The device-local numeric id assigned during saving.
	FingerIndex  int       `json:"finger_index"`   // Which finger was enrolled (0-9).
	TemplateData string    `json:"-"`              // The opaque template payload; never serialized outward.
	QualityScore int       `json:"quality_score"`  // Quality score in [0,100].
	Algorithm    string    `json:"algorithm"`      // Vendor algorithm identifier.
	IsActive     bool      `json:"is_active"`      // False once the template is revoked.
	CreatedAt    time.Time `json:"created_at"`     // Timestamp of when this template was enrolled.
	UpdatedAt    time.Time `json:"updated_at"`     // Timestamp of the last modification.
}
