package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BiometricDeviceModel is the GORM-specific struct for the
// 'biometric_devices' table. Status columns are snapshots written by the
// bridge layer; live state stays in memory.
type BiometricDeviceModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string     `gorm:"type:varchar(255);not null"`
	IPAddress        string     `gorm:"type:varchar(45);not null"`
	Port             int        `gorm:"not null"`
	WSPort           int        `gorm:"not null"`
	Status           string     `gorm:"type:varchar(20);not null;default:'disconnected'"`
	LastHeartbeat    *time.Time `gorm:""`
	FirmwareVersion  string     `gorm:"type:varchar(100)"`
	SerialNumber     string     `gorm:"type:varchar(100)"`
	UserCount        int        `gorm:"not null;default:0"`
	FingerprintCount int        `gorm:"not null;default:0"`
	IsActive         bool       `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BiometricDeviceModel) TableName() string {
	return "biometric_devices"
}
