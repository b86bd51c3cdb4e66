package model

import (
	"time"

	"github.com/google/uuid"
)

// FingerprintTemplateModel is the GORM-specific struct for the
// 'fingerprint_templates' table. (device_id, device_user_id) is unique so the
// device-local numeric id can never be handed out twice.
type FingerprintTemplateModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_device_local_id"`
	DeviceUserID int       `gorm:"not null;uniqueIndex:idx_device_local_id"`
	FingerIndex  int       `gorm:"not null;default:1"`
	TemplateData string    `gorm:"type:text;not null"`
	QualityScore int       `gorm:"not null;default:0"`
	Algorithm    string    `gorm:"type:varchar(50);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FingerprintTemplateModel) TableName() string {
	return "fingerprint_templates"
}
