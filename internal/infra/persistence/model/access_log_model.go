package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessLogModel is the GORM-specific struct for the 'access_logs' table.
// Rows are append-only; there is no UpdatedAt on purpose.
type AccessLogModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          *uuid.UUID `gorm:"type:uuid;index"`
	DeviceID        *uuid.UUID `gorm:"type:uuid;index"`
	AccessType      string     `gorm:"type:varchar(20);not null"`
	AccessMethod    string     `gorm:"type:varchar(20);not null"`
	Success         bool       `gorm:"not null"`
	ConfidenceScore *float64   `gorm:"type:numeric(5,4)"`
	DenialReason    string     `gorm:"type:varchar(255)"`
	DeviceTimestamp time.Time  `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessLogModel) TableName() string {
	return "access_logs"
}
