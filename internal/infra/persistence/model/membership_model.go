package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipModel is the GORM-specific struct for the 'user_memberships' table.
type MembershipModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanID          uuid.UUID `gorm:"type:uuid;not null"`
	StartDate       time.Time `gorm:"type:date;not null"`
	EndDate         time.Time `gorm:"type:date;not null"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	RemainingVisits int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "user_memberships"
}
