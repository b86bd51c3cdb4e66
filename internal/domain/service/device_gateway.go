// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"

	"muscleup/internal/domain/entity"

	"github.com/google/uuid"
)

// CaptureRequest asks the device to capture one fingerprint sample for an
// enrollment in progress.
type CaptureRequest struct {
	UserID      uuid.UUID // The system user being enrolled.
	UserName    string    // Display name the device shows on its screen.
	FingerIndex int       // Which finger to capture (0-9).
}

// CaptureResult is one raw sample captured by the device.
type CaptureResult struct {
	Template string // Opaque sample payload.
	Quality  int    // Device-reported sample quality in [0,100].
}

// VerifyResult is the device's answer to a match request.
type VerifyResult struct {
	Matched      bool    // Whether the scan matched an enrolled template.
	DeviceUserID int     // Device-local numeric id of the matched identity.
	Confidence   float64 // Match confidence in [0,100] as reported.
}

// DeviceUser is one identity stored on the device itself.
type DeviceUser struct {
	DeviceUserID int    `json:"device_user_id"`
	Name         string `json:"name"`
	Fingers      int    `json:"fingers"`
}

// FingerDetected is the unsolicited event raised when someone places a
// finger on a connected reader.
type FingerDetected struct {
	DeviceID uuid.UUID // Which device observed the finger.
	Template string    // The live scan payload.
}

// StatusChanged is raised whenever a device's live state changes
// (connect, disconnect, bridge-reported counters).
type StatusChanged struct {
	Device entity.Device // Snapshot of the device after the change.
}

// FingerDetectedHandler consumes finger-detected events.
type FingerDetectedHandler func(ctx context.Context, event FingerDetected)

// StatusChangedHandler consumes device status events.
type StatusChangedHandler func(event StatusChanged)

// DeviceGateway is the domain's view of the bridge connection layer: it owns
// one live connection per device and turns domain requests into correlated
// bridge commands.
type DeviceGateway interface {
	// Connect opens the bridge connection for the device and performs the
	// handshake. The returned snapshot carries handshake metadata.
	Connect(ctx context.Context, device *entity.Device) (*entity.Device, error)

	// Disconnect tears the connection down and disables automatic reconnects
	// until the next Connect.
	Disconnect(ctx context.Context, deviceID uuid.UUID) error

	// Status returns the last known in-memory state without blocking.
	// The boolean is false when the device has never been connected.
	Status(deviceID uuid.UUID) (*entity.Device, bool)

	// CaptureSample drives one capture pass of an enrollment.
	CaptureSample(ctx context.Context, deviceID uuid.UUID, req CaptureRequest) (*CaptureResult, error)

	// VerifyFinger asks the device to match a scan against its local store.
	VerifyFinger(ctx context.Context, deviceID uuid.UUID, template string) (*VerifyResult, error)

	// DeviceUsers lists the identities stored on the device.
	DeviceUsers(ctx context.Context, deviceID uuid.UUID) ([]DeviceUser, error)

	// DeleteDeviceUser removes one identity from the device.
	DeleteDeviceUser(ctx context.Context, deviceID uuid.UUID, deviceUserID int) error

	// Restart reboots the device.
	Restart(ctx context.Context, deviceID uuid.UUID) error

	// OnFingerDetected registers a handler for finger-detected events.
	OnFingerDetected(handler FingerDetectedHandler)

	// OnStatusChanged registers a handler for status events.
	OnStatusChanged(handler StatusChangedHandler)
}
