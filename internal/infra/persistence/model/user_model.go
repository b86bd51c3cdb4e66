// Package model holds the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table. Only the
// columns the access subsystem touches are mapped; the membership CRUD
// services own the rest of the row.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName   string    `gorm:"type:varchar(255);not null"`
	LastName    string    `gorm:"type:varchar(255)"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Fingerprint bool      `gorm:"not null;default:false"`
	Rol         string    `gorm:"type:varchar(50);not null;default:'member'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
