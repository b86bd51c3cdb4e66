package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a gym member as the access subsystem sees it. The full
// member record (contracts, photos, emergency contacts) is owned by the
// membership CRUD services; only the fields the access pipeline reads live
// here.
type User struct {
	ID          uuid.UUID `json:"id"`          // The unique identifier for the user.
	FirstName   string    `json:"first_name"`  // The user's given name.
	LastName    string    `json:"last_name"`   // The user's family name.
	Email       string    `json:"email"`       // Contact email.
	Fingerprint bool      `json:"fingerprint"` // Whether the user holds an active fingerprint template.
	Rol         string    `json:"rol"`         // Role within the gym (member, trainer, admin).
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this user was registered.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

// FullName returns the display name used on device prompts and logs.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
