package entity

import (
	"time"

	"github.com/google/uuid"
)

// MembershipStatus represents the lifecycle state of a membership.
type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipInactive  MembershipStatus = "inactive"
	MembershipSuspended MembershipStatus = "suspended"
	MembershipExpired   MembershipStatus = "expired"
)

// Membership represents a user's plan subscription as read by the access
// decision engine. Sales and renewals are owned by the membership CRUD
// services.
type Membership struct {
	ID              uuid.UUID        `json:"id"`               // The unique identifier for the membership.
	UserID          uuid.UUID        `json:"user_id"`          // The owning user.
	PlanID          uuid.UUID        `json:"plan_id"`          // The purchased plan.
	StartDate       time.Time        `json:"start_date"`       // First day the membership is valid.
	EndDate         time.Time        `json:"end_date"`         // Last day the membership is valid.
	Status          MembershipStatus `json:"status"`           // Lifecycle state.
	RemainingVisits int              `json:"remaining_visits"` // Visit credits left on the plan.
	CreatedAt       time.Time        `json:"created_at"`       // Timestamp of when this membership was created.
	UpdatedAt       time.Time        `json:"updated_at"`       // Timestamp of the last modification.
}

// CoversDate reports whether the membership's date range contains the given day.
func (m *Membership) CoversDate(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)

	return !d.Before(m.StartDate.Truncate(24*time.Hour)) && !d.After(m.EndDate.Truncate(24*time.Hour))
}
