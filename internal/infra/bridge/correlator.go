package bridge

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// pendingCommand is one in-flight command waiting for its reply.
type pendingCommand struct {
	command string
	done    chan reply
	timer   *time.Timer
	failed  error
}

// correlator matches bridge replies to the commands that caused them. Every
// outbound command gets a fresh uuid; the table maps that id to a waiting
// channel until a reply, a timeout or a connection loss resolves it.
type correlator struct {
	mu      sync.Mutex
	pending map[string]*pendingCommand
	timeout time.Duration
	logger  *slog.Logger
}

func newCorrelator(timeout time.Duration, logger *slog.Logger) *correlator {
	return &correlator{
		pending: make(map[string]*pendingCommand),
		timeout: timeout,
		logger:  logger,
	}
}

// register allocates an id for a command and parks a waiter behind it. The
// returned wait function blocks until the command resolves.
func (c *correlator) register(command string) (id string, wait func(ctx context.Context) (reply, error)) {
	id = uuid.NewString()
	pc := &pendingCommand{
		command: command,
		done:    make(chan reply, 1),
	}

	c.mu.Lock()
	c.pending[id] = pc
	// The deadline fires exactly once; resolve and fail both cancel it.
	pc.timer = time.AfterFunc(c.timeout, func() {
		c.fail(id, ErrCommandTimeout)
	})
	c.mu.Unlock()

	wait = func(ctx context.Context) (reply, error) {
		select {
		case r, ok := <-pc.done:
			if !ok {
				return reply{}, pc.failed
			}

			return r, nil
		case <-ctx.Done():
			c.fail(id, ctx.Err())

			return reply{}, ctx.Err()
		}
	}

	return id, wait
}

// resolve delivers a reply to its waiter. Replies whose id is unknown (late
// arrivals after a timeout, or bridge noise) are logged and dropped.
func (c *correlator) resolve(id string, r reply) {
	c.mu.Lock()
	pc, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
		pc.timer.Stop()
	}
	c.mu.Unlock()

	if !ok {
		c.logger.Warn("dropping orphan bridge reply", slog.String("id", id))

		return
	}

	pc.done <- r
	close(pc.done)
}

// fail resolves one pending command with an error. Safe to call after the
// command already resolved.
func (c *correlator) fail(id string, err error) {
	c.mu.Lock()
	pc, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
		pc.timer.Stop()
	}
	c.mu.Unlock()

	if !ok {
		return
	}

	pc.failed = err
	close(pc.done)
}

// failAll resolves every pending command with the given error. Called when
// the connection drops so no waiter hangs until its individual deadline.
func (c *correlator) failAll(err error) {
	c.mu.Lock()
	drained := c.pending
	c.pending = make(map[string]*pendingCommand)
	for _, pc := range drained {
		pc.timer.Stop()
	}
	c.mu.Unlock()

	for _, pc := range drained {
		pc.failed = err
		close(pc.done)
	}
}

// pendingCount reports how many commands are in flight.
func (c *correlator) pendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.pending)
}
