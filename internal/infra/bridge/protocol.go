// Package bridge implements the WebSocket connection layer that talks to the
// per-device bridge processes sitting in front of the fingerprint readers.
package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Commands accepted by the bridge process.
const (
	CmdConnect       = "CMD_CONNECT"
	CmdDisconnect    = "CMD_DISCONNECT"
	CmdGetDeviceInfo = "CMD_GET_DEVICE_INFO"
	CmdEnrollUser    = "CMD_ENROLL_USER"
	CmdVerifyFinger  = "CMD_VERIFY_FINGER"
	CmdGetAllUsers   = "CMD_GET_ALL_USERS"
	CmdDeleteUser    = "CMD_DELETE_USER"
	CmdRestart       = "CMD_RESTART"
	CmdHeartbeat     = "CMD_HEARTBEAT"
)

// Unsolicited event types pushed by the bridge.
const (
	EventFingerDetected = "FINGER_DETECTED"
	EventUserVerified   = "USER_VERIFIED"
	EventDeviceStatus   = "DEVICE_STATUS"
	EventHeartbeat      = "HEARTBEAT"
)

// Sentinel errors surfaced by the connection layer.
var (
	// ErrCommandTimeout is returned when a command receives no reply within
	// the command timeout.
	ErrCommandTimeout = errors.New("bridge command timed out")
	// ErrDisconnected is returned for commands pending when the connection
	// drops.
	ErrDisconnected = errors.New("bridge connection lost")
	// ErrNotConnected is returned for commands issued against a device with
	// no live connection.
	ErrNotConnected = errors.New("device not connected")
)

// DeviceError carries a failure reported by the bridge itself, as opposed to
// a transport failure.
type DeviceError struct {
	Command string
	Reason  string
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device rejected %s: %s", e.Command, e.Reason)
}

// commandMessage is the outbound wire frame. Every command carries a unique
// id the bridge echoes back in its reply.
type commandMessage struct {
	ID        string         `json:"id"`
	Command   string         `json:"command"`
	Params    map[string]any `json:"params,omitempty"`
	Timestamp int64          `json:"timestamp"`
}

// inboundMessage is the single inbound frame shape. Replies carry the echoed
// id; unsolicited events carry a type and no id.
type inboundMessage struct {
	ID      string          `json:"id,omitempty"`
	Success *bool           `json:"success,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	Type string `json:"type,omitempty"`
}

// isReply reports whether the frame answers a pending command.
func (m *inboundMessage) isReply() bool {
	return m.ID != ""
}

// reply is the resolved outcome of one correlated command.
type reply struct {
	Success bool
	Error   string
	Data    json.RawMessage
}

// deviceInfoData is the payload of a CMD_GET_DEVICE_INFO reply.
type deviceInfoData struct {
	Firmware         string `json:"firmware"`
	SerialNumber     string `json:"serialNumber"`
	UserCount        int    `json:"userCount"`
	FingerprintCount int    `json:"fingerprintCount"`
}

// enrollReplyData is the payload of a CMD_ENROLL_USER reply.
type enrollReplyData struct {
	Template string `json:"template"`
	Quality  int    `json:"quality"`
}

// verifyReplyData is the payload of a CMD_VERIFY_FINGER reply.
type verifyReplyData struct {
	Matched      bool    `json:"matched"`
	DeviceUserID int     `json:"zkUserId"`
	Confidence   float64 `json:"confidence"`
}

// deviceUserData is one entry of a CMD_GET_ALL_USERS reply.
type deviceUserData struct {
	DeviceUserID int    `json:"zkUserId"`
	Name         string `json:"name"`
	Fingers      int    `json:"fingers"`
}

// fingerDetectedData is the payload of a FINGER_DETECTED event.
type fingerDetectedData struct {
	Template string `json:"template"`
}

// deviceStatusData is the payload of a DEVICE_STATUS event.
type deviceStatusData struct {
	UserCount        int `json:"userCount"`
	FingerprintCount int `json:"fingerprintCount"`
}
