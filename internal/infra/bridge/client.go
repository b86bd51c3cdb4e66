package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"muscleup/internal/domain/entity"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/pkg/errors"
)

// clientConfig carries the connection-layer tunables.
type clientConfig struct {
	commandTimeout       time.Duration
	heartbeatInterval    time.Duration
	reconnectBackoff     time.Duration
	maxReconnectAttempts int
}

// client owns the live WebSocket session for one device. All commands are
// correlated through the session's correlator; unsolicited events are fanned
// out to the registry's handlers.
type client struct {
	cfg    clientConfig
	logger *slog.Logger

	// onFinger and onStatus are set once at construction and never change.
	onFinger func(ctx context.Context, template string)
	onStatus func(device entity.Device)

	mu         sync.Mutex
	device     entity.Device
	conn       *websocket.Conn
	corr       *correlator
	manual     bool
	loopCancel context.CancelFunc

	writeMu sync.Mutex
}

func newClient(device entity.Device, cfg clientConfig, logger *slog.Logger,
	onFinger func(ctx context.Context, template string),
	onStatus func(device entity.Device),
) *client {
	device.Status = entity.DeviceDisconnected

	return &client{
		cfg:      cfg,
		logger:   logger.With(slog.String("device", device.ID.String())),
		onFinger: onFinger,
		onStatus: onStatus,
		device:   device,
	}
}

// snapshot returns a copy of the in-memory device state.
func (c *client) snapshot() entity.Device {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.device
}

// connect dials the bridge and runs the handshake. On success the read loop
// and heartbeat goroutines are running and the device is marked connected.
func (c *client) connect(ctx context.Context) (entity.Device, error) {
	c.mu.Lock()
	if c.conn != nil {
		snap := c.device
		c.mu.Unlock()

		return snap, nil
	}
	c.manual = false
	c.device.Status = entity.DeviceConnecting
	snap := c.device
	c.mu.Unlock()
	c.notifyStatus(snap)

	if err := c.dialAndHandshake(ctx); err != nil {
		c.mu.Lock()
		c.device.Status = entity.DeviceDisconnected
		snap = c.device
		c.mu.Unlock()
		c.notifyStatus(snap)

		return entity.Device{}, err
	}

	return c.snapshot(), nil
}

// dialAndHandshake opens one session: dial, CMD_CONNECT, CMD_GET_DEVICE_INFO,
// then spawn the read loop and heartbeat. Used by connect and by reconnect.
func (c *client) dialAndHandshake(ctx context.Context) error {
	c.mu.Lock()
	url := fmt.Sprintf("ws://%s:%d", c.device.IP, c.device.WSPort)
	c.mu.Unlock()

	dialCtx, cancel := context.WithTimeout(ctx, c.cfg.commandTimeout)
	defer cancel()

	conn, _, err := websocket.Dial(dialCtx, url, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to dial bridge at %s", url)
	}

	corr := newCorrelator(c.cfg.commandTimeout, c.logger)
	loopCtx, loopCancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.conn = conn
	c.corr = corr
	c.loopCancel = loopCancel
	c.mu.Unlock()

	go c.readLoop(loopCtx, conn, corr)

	if _, err := c.send(ctx, CmdConnect, nil); err != nil {
		c.teardown()

		return errors.Wrap(err, "bridge rejected connect")
	}

	info, err := c.deviceInfo(ctx)
	if err != nil {
		c.teardown()

		return errors.Wrap(err, "failed to read device info")
	}

	now := time.Now()
	c.mu.Lock()
	c.device.Status = entity.DeviceConnected
	c.device.Firmware = info.Firmware
	c.device.SerialNumber = info.SerialNumber
	c.device.UserCount = info.UserCount
	c.device.FingerprintCount = info.FingerprintCount
	c.device.LastHeartbeat = &now
	snap := c.device
	c.mu.Unlock()
	c.notifyStatus(snap)

	go c.heartbeatLoop(loopCtx)

	c.logger.Info("device connected",
		slog.String("firmware", info.Firmware),
		slog.String("serial", info.SerialNumber),
	)

	return nil
}

// disconnect tears down the session on operator request. Automatic
// reconnects stay suppressed until the next connect.
func (c *client) disconnect(ctx context.Context) error {
	c.mu.Lock()
	if c.conn == nil {
		c.manual = true
		c.mu.Unlock()

		return nil
	}
	c.manual = true
	c.mu.Unlock()

	// Best effort: the device does not have to acknowledge before we close.
	if _, err := c.send(ctx, CmdDisconnect, nil); err != nil {
		c.logger.Warn("disconnect command failed", slog.String("error", err.Error()))
	}

	c.teardown()

	c.mu.Lock()
	c.device.Status = entity.DeviceDisconnected
	snap := c.device
	c.mu.Unlock()
	c.notifyStatus(snap)

	return nil
}

// teardown closes the current session without touching the manual flag.
func (c *client) teardown() {
	c.mu.Lock()
	conn := c.conn
	corr := c.corr
	cancel := c.loopCancel
	c.conn = nil
	c.corr = nil
	c.loopCancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "closed")
	}
	if corr != nil {
		corr.failAll(ErrDisconnected)
	}
}

// send issues one correlated command and blocks for its reply. A failure
// reported by the bridge comes back as a DeviceError.
func (c *client) send(ctx context.Context, command string, params map[string]any) (reply, error) {
	c.mu.Lock()
	conn := c.conn
	corr := c.corr
	c.mu.Unlock()

	if conn == nil || corr == nil {
		return reply{}, ErrNotConnected
	}

	id, wait := corr.register(command)
	msg := commandMessage{
		ID:        id,
		Command:   command,
		Params:    params,
		Timestamp: time.Now().UnixMilli(),
	}

	writeCtx, cancel := context.WithTimeout(ctx, c.cfg.commandTimeout)
	c.writeMu.Lock()
	err := wsjson.Write(writeCtx, conn, msg)
	c.writeMu.Unlock()
	cancel()
	if err != nil {
		corr.fail(id, ErrDisconnected)

		return reply{}, errors.Wrapf(err, "failed to write %s", command)
	}

	r, err := wait(ctx)
	if err != nil {
		return reply{}, err
	}
	if !r.Success {
		return reply{}, &DeviceError{Command: command, Reason: r.Error}
	}

	return r, nil
}

// readLoop drains inbound frames for the lifetime of one session. Replies go
// to the correlator; events to the dispatchers. Any read error ends the
// session and, unless the operator disconnected, starts the reconnect loop.
func (c *client) readLoop(ctx context.Context, conn *websocket.Conn, corr *correlator) {
	for {
		var msg inboundMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if ctx.Err() != nil {
				// Session was torn down on purpose.
				return
			}

			c.logger.Warn("bridge connection lost", slog.String("error", err.Error()))
			c.teardown()

			c.mu.Lock()
			manual := c.manual
			c.device.Status = entity.DeviceDisconnected
			snap := c.device
			c.mu.Unlock()
			c.notifyStatus(snap)

			if !manual {
				go c.reconnectLoop()
			}

			return
		}

		if msg.isReply() {
			success := msg.Success != nil && *msg.Success
			corr.resolve(msg.ID, reply{Success: success, Error: msg.Error, Data: msg.Data})

			continue
		}

		c.dispatchEvent(ctx, msg)
	}
}

// dispatchEvent handles one unsolicited bridge event.
func (c *client) dispatchEvent(ctx context.Context, msg inboundMessage) {
	switch msg.Type {
	case EventFingerDetected:
		var data fingerDetectedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.logger.Warn("malformed finger event", slog.String("error", err.Error()))

			return
		}
		if c.onFinger != nil {
			c.onFinger(ctx, data.Template)
		}
	case EventDeviceStatus:
		var data deviceStatusData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.logger.Warn("malformed status event", slog.String("error", err.Error()))

			return
		}
		c.mu.Lock()
		c.device.UserCount = data.UserCount
		c.device.FingerprintCount = data.FingerprintCount
		snap := c.device
		c.mu.Unlock()
		c.notifyStatus(snap)
	case EventHeartbeat:
		now := time.Now()
		c.mu.Lock()
		c.device.LastHeartbeat = &now
		c.mu.Unlock()
	case EventUserVerified:
		// Device-side verification results arrive through the reply to
		// CMD_VERIFY_FINGER; the event form is informational.
		c.logger.Debug("user verified event", slog.String("data", string(msg.Data)))
	default:
		c.logger.Warn("unknown bridge event", slog.String("type", msg.Type))
	}
}

// heartbeatLoop pings the bridge at a fixed interval while the session is
// alive. A bridge that stops answering heartbeats is treated like a lost
// connection: the session is torn down and the reconnect loop takes over.
func (c *client) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := c.send(ctx, CmdHeartbeat, nil); err != nil {
				if ctx.Err() != nil {
					// Session was torn down on purpose.
					return
				}

				c.logger.Warn("heartbeat failed", slog.String("error", err.Error()))
				c.teardown()

				c.mu.Lock()
				manual := c.manual
				c.device.Status = entity.DeviceDisconnected
				snap := c.device
				c.mu.Unlock()
				c.notifyStatus(snap)

				if !manual {
					go c.reconnectLoop()
				}

				return
			}

			now := time.Now()
			c.mu.Lock()
			c.device.LastHeartbeat = &now
			c.mu.Unlock()
		}
	}
}

// reconnectLoop retries the session a bounded number of times after an
// unexpected drop. A manual disconnect during the loop stops it.
func (c *client) reconnectLoop() {
	for attempt := 1; attempt <= c.cfg.maxReconnectAttempts; attempt++ {
		time.Sleep(c.cfg.reconnectBackoff)

		c.mu.Lock()
		manual := c.manual
		c.mu.Unlock()
		if manual {
			return
		}

		c.logger.Info("reconnecting to bridge",
			slog.Int("attempt", attempt),
			slog.Int("maxAttempts", c.cfg.maxReconnectAttempts),
		)

		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.commandTimeout)
		err := c.dialAndHandshake(ctx)
		cancel()
		if err == nil {
			return
		}

		c.logger.Warn("reconnect attempt failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Error("giving up on reconnect; manual connect required")
}

// deviceInfo fetches the handshake metadata.
func (c *client) deviceInfo(ctx context.Context) (*deviceInfoData, error) {
	r, err := c.send(ctx, CmdGetDeviceInfo, nil)
	if err != nil {
		return nil, err
	}

	var info deviceInfoData
	if err := json.Unmarshal(r.Data, &info); err != nil {
		return nil, errors.Wrap(err, "malformed device info")
	}

	return &info, nil
}

func (c *client) notifyStatus(snap entity.Device) {
	if c.onStatus != nil {
		c.onStatus(snap)
	}
}
