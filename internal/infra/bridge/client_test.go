package bridge

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"muscleup/internal/domain/entity"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBridge is an in-process stand-in for the device bridge. It answers
// commands with canned replies and can push unsolicited events.
type fakeBridge struct {
	t   *testing.T
	srv *httptest.Server

	// onCommand intercepts a command before the default reply. Returning
	// true means the command was fully handled.
	onCommand func(ctx context.Context, conn *websocket.Conn, msg commandMessage) bool

	mu   sync.Mutex
	conn *websocket.Conn
}

func newFakeBridge(t *testing.T) *fakeBridge {
	f := &fakeBridge{t: t}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)

	return f
}

func (f *fakeBridge) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}

	f.mu.Lock()
	f.conn = conn
	f.mu.Unlock()

	ctx := r.Context()
	for {
		var msg commandMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return
		}

		if f.onCommand != nil && f.onCommand(ctx, conn, msg) {
			continue
		}

		f.replyDefault(ctx, conn, msg)
	}
}

func (f *fakeBridge) replyDefault(ctx context.Context, conn *websocket.Conn, msg commandMessage) {
	resp := map[string]any{"id": msg.ID, "success": true}
	if msg.Command == CmdGetDeviceInfo {
		resp["data"] = map[string]any{
			"firmware":         "6.60",
			"serialNumber":     "ZK-TEST-001",
			"userCount":        3,
			"fingerprintCount": 5,
		}
	}

	if err := wsjson.Write(ctx, conn, resp); err != nil {
		f.t.Logf("fake bridge write failed: %v", err)
	}
}

// pushEvent sends an unsolicited frame over the most recent connection.
func (f *fakeBridge) pushEvent(ctx context.Context, eventType string, data map[string]any) {
	f.mu.Lock()
	conn := f.conn
	f.mu.Unlock()

	require.NotNil(f.t, conn, "no bridge connection to push on")
	require.NoError(f.t, wsjson.Write(ctx, conn, map[string]any{"type": eventType, "data": data}))
}

// device returns an entity pointed at the fake bridge's listener.
func (f *fakeBridge) device(t *testing.T) entity.Device {
	u, err := url.Parse(f.srv.URL)
	require.NoError(t, err)

	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return entity.Device{
		ID:     uuid.New(),
		Name:   "front-desk",
		IP:     host,
		Port:   4370,
		WSPort: port,
	}
}

func testClientConfig() clientConfig {
	return clientConfig{
		commandTimeout:       2 * time.Second,
		heartbeatInterval:    time.Hour,
		reconnectBackoff:     10 * time.Millisecond,
		maxReconnectAttempts: 1,
	}
}

type statusRecorder struct {
	mu       sync.Mutex
	statuses []entity.DeviceStatus
}

func (r *statusRecorder) record(device entity.Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, device.Status)
}

func (r *statusRecorder) seen() []entity.DeviceStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.DeviceStatus(nil), r.statuses...)
}

func TestClient_ConnectHandshake(t *testing.T) {
	bridge := newFakeBridge(t)
	rec := &statusRecorder{}

	c := newClient(bridge.device(t), testClientConfig(), testLogger(), nil, rec.record)
	t.Cleanup(c.teardown)

	snap, err := c.connect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.DeviceConnected, snap.Status)
	assert.Equal(t, "6.60", snap.Firmware)
	assert.Equal(t, "ZK-TEST-001", snap.SerialNumber)
	assert.Equal(t, 3, snap.UserCount)
	assert.Equal(t, 5, snap.FingerprintCount)
	require.NotNil(t, snap.LastHeartbeat)

	statuses := rec.seen()
	require.GreaterOrEqual(t, len(statuses), 2)
	assert.Equal(t, entity.DeviceConnecting, statuses[0])
	assert.Equal(t, entity.DeviceConnected, statuses[len(statuses)-1])
}

func TestClient_ConnectIsIdempotent(t *testing.T) {
	bridge := newFakeBridge(t)

	c := newClient(bridge.device(t), testClientConfig(), testLogger(), nil, nil)
	t.Cleanup(c.teardown)

	first, err := c.connect(context.Background())
	require.NoError(t, err)

	second, err := c.connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.SerialNumber, second.SerialNumber)
	assert.Equal(t, entity.DeviceConnected, second.Status)
}

func TestClient_ConnectDialFailure(t *testing.T) {
	bridge := newFakeBridge(t)
	device := bridge.device(t)
	bridge.srv.Close()

	rec := &statusRecorder{}
	c := newClient(device, testClientConfig(), testLogger(), nil, rec.record)

	_, err := c.connect(context.Background())
	require.Error(t, err)

	assert.Equal(t, entity.DeviceDisconnected, c.snapshot().Status)
	statuses := rec.seen()
	require.NotEmpty(t, statuses)
	assert.Equal(t, entity.DeviceDisconnected, statuses[len(statuses)-1])
}

func TestClient_SendRejectedByBridge(t *testing.T) {
	bridge := newFakeBridge(t)
	bridge.onCommand = func(ctx context.Context, conn *websocket.Conn, msg commandMessage) bool {
		if msg.Command != CmdRestart {
			return false
		}

		err := wsjson.Write(ctx, conn, map[string]any{
			"id":      msg.ID,
			"success": false,
			"error":   "device busy",
		})
		require.NoError(bridge.t, err)

		return true
	}

	c := newClient(bridge.device(t), testClientConfig(), testLogger(), nil, nil)
	t.Cleanup(c.teardown)

	_, err := c.connect(context.Background())
	require.NoError(t, err)

	_, err = c.send(context.Background(), CmdRestart, nil)

	var devErr *DeviceError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, CmdRestart, devErr.Command)
	assert.Equal(t, "device busy", devErr.Reason)
}

func TestClient_SendWithoutConnection(t *testing.T) {
	bridge := newFakeBridge(t)

	c := newClient(bridge.device(t), testClientConfig(), testLogger(), nil, nil)

	_, err := c.send(context.Background(), CmdHeartbeat, nil)
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestClient_FingerDetectedEventDispatch(t *testing.T) {
	bridge := newFakeBridge(t)

	templates := make(chan string, 1)
	onFinger := func(ctx context.Context, template string) {
		templates <- template
	}

	c := newClient(bridge.device(t), testClientConfig(), testLogger(), onFinger, nil)
	t.Cleanup(c.teardown)

	_, err := c.connect(context.Background())
	require.NoError(t, err)

	bridge.pushEvent(context.Background(), EventFingerDetected, map[string]any{"template": "scan-abc"})

	select {
	case got := <-templates:
		assert.Equal(t, "scan-abc", got)
	case <-time.After(2 * time.Second):
		t.Fatal("finger event never dispatched")
	}
}

func TestClient_DeviceStatusEventUpdatesCounters(t *testing.T) {
	bridge := newFakeBridge(t)
	rec := &statusRecorder{}

	c := newClient(bridge.device(t), testClientConfig(), testLogger(), nil, rec.record)
	t.Cleanup(c.teardown)

	_, err := c.connect(context.Background())
	require.NoError(t, err)

	bridge.pushEvent(context.Background(), EventDeviceStatus, map[string]any{
		"userCount":        9,
		"fingerprintCount": 12,
	})

	require.Eventually(t, func() bool {
		snap := c.snapshot()

		return snap.UserCount == 9 && snap.FingerprintCount == 12
	}, 2*time.Second, 10*time.Millisecond)
}

func TestClient_DisconnectSuppressesReconnect(t *testing.T) {
	bridge := newFakeBridge(t)
	rec := &statusRecorder{}

	c := newClient(bridge.device(t), testClientConfig(), testLogger(), nil, rec.record)

	_, err := c.connect(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.disconnect(context.Background()))
	assert.Equal(t, entity.DeviceDisconnected, c.snapshot().Status)

	// No session, so commands fail fast instead of being retried.
	_, err = c.send(context.Background(), CmdHeartbeat, nil)
	require.ErrorIs(t, err, ErrNotConnected)

	// Give any stray reconnect goroutine a chance to run; the status must
	// stay disconnected because the operator asked for it.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, entity.DeviceDisconnected, c.snapshot().Status)
}

func TestClient_HeartbeatTimeoutTriggersReconnect(t *testing.T) {
	bridge := newFakeBridge(t)

	// Swallow the first heartbeat so the client's reply deadline fires while
	// the socket itself stays open.
	var mu sync.Mutex
	stalled := true
	bridge.onCommand = func(ctx context.Context, conn *websocket.Conn, msg commandMessage) bool {
		if msg.Command != CmdHeartbeat {
			return false
		}

		mu.Lock()
		defer mu.Unlock()
		if stalled {
			stalled = false

			return true
		}

		return false
	}

	cfg := testClientConfig()
	cfg.commandTimeout = 300 * time.Millisecond
	cfg.heartbeatInterval = 30 * time.Millisecond
	cfg.maxReconnectAttempts = 5

	rec := &statusRecorder{}
	c := newClient(bridge.device(t), cfg, testLogger(), nil, rec.record)
	t.Cleanup(c.teardown)

	_, err := c.connect(context.Background())
	require.NoError(t, err)

	// The missed heartbeat must end the session like a transport error.
	require.Eventually(t, func() bool {
		for _, s := range rec.seen() {
			if s == entity.DeviceDisconnected {
				return true
			}
		}

		return false
	}, 5*time.Second, 20*time.Millisecond)

	// And the reconnect loop must bring it back once heartbeats flow again.
	require.Eventually(t, func() bool {
		return c.snapshot().Status == entity.DeviceConnected
	}, 5*time.Second, 20*time.Millisecond)
}

func TestClient_ReconnectAfterConnectionLoss(t *testing.T) {
	bridge := newFakeBridge(t)

	cfg := testClientConfig()
	cfg.maxReconnectAttempts = 5

	c := newClient(bridge.device(t), cfg, testLogger(), nil, nil)
	t.Cleanup(c.teardown)

	_, err := c.connect(context.Background())
	require.NoError(t, err)

	// Kill the session from the server side; the client should dial again.
	bridge.mu.Lock()
	conn := bridge.conn
	bridge.mu.Unlock()
	require.NoError(t, conn.Close(websocket.StatusGoingAway, "restarting"))

	require.Eventually(t, func() bool {
		return c.snapshot().Status == entity.DeviceConnected
	}, 5*time.Second, 20*time.Millisecond)
}
