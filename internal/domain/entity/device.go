// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus represents the live connection state of a biometric reader.
type DeviceStatus string

const (
	DeviceDisconnected DeviceStatus = "disconnected"
	DeviceConnecting   DeviceStatus = "connecting"
	DeviceConnected    DeviceStatus = "connected"
)

// Device represents a physical fingerprint reader reached through its bridge
// process. The persisted row is a status snapshot; live status is owned by
// the bridge client for the lifetime of the process.
type Device struct {
	ID               uuid.UUID    `json:"id"`                // The unique identifier for the device.
	Name             string       `json:"name"`              // Operator-facing display name.
	IP               string       `json:"ip"`                // Network address of the reader.
	Port             int          `json:"port"`              // Native protocol port of the reader.
	WSPort           int          `json:"ws_port"`           // WebSocket port of the local bridge.
	Status           DeviceStatus `json:"status"`            // Last known connection status.
	LastHeartbeat    *time.Time   `json:"last_heartbeat"`    // When the bridge last answered a heartbeat.
	Firmware         string       `json:"firmware"`          // Firmware version reported during handshake.
	SerialNumber     string       `json:"serial_number"`     // Serial number reported during handshake.
	UserCount        int          `json:"user_count"`        // Users enrolled on the device itself.
	FingerprintCount int          `json:"fingerprint_count"` // Templates stored on the device itself.
	IsActive         bool         `json:"is_active"`         // Whether the device is available for operations.
	CreatedAt        time.Time    `json:"created_at"`        // Timestamp of when this device was registered.
	UpdatedAt        time.Time    `json:"updated_at"`        // Timestamp of the last modification.
}
