package bridge

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCorrelator_ResolveDeliversReply(t *testing.T) {
	corr := newCorrelator(time.Second, testLogger())

	id, wait := corr.register(CmdGetDeviceInfo)
	require.Equal(t, 1, corr.pendingCount())

	go corr.resolve(id, reply{Success: true})

	r, err := wait(context.Background())
	require.NoError(t, err)
	assert.True(t, r.Success)
	assert.Equal(t, 0, corr.pendingCount())
}

func TestCorrelator_TimeoutFailsWaiter(t *testing.T) {
	corr := newCorrelator(20*time.Millisecond, testLogger())

	_, wait := corr.register(CmdVerifyFinger)

	_, err := wait(context.Background())
	require.ErrorIs(t, err, ErrCommandTimeout)
	assert.Equal(t, 0, corr.pendingCount())
}

func TestCorrelator_ContextCancelFailsWaiter(t *testing.T) {
	corr := newCorrelator(time.Minute, testLogger())

	_, wait := corr.register(CmdEnrollUser)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, corr.pendingCount())
}

func TestCorrelator_FailAllDrainsEveryWaiter(t *testing.T) {
	corr := newCorrelator(time.Minute, testLogger())

	const waiters = 5

	waits := make([]func(ctx context.Context) (reply, error), 0, waiters)
	for range waiters {
		_, wait := corr.register(CmdHeartbeat)
		waits = append(waits, wait)
	}

	require.Equal(t, waiters, corr.pendingCount())

	corr.failAll(ErrDisconnected)

	var wg sync.WaitGroup
	for _, wait := range waits {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := wait(context.Background())
			assert.ErrorIs(t, err, ErrDisconnected)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, corr.pendingCount())
}

func TestCorrelator_OrphanReplyIsDropped(t *testing.T) {
	corr := newCorrelator(time.Second, testLogger())

	// Must not panic or register anything.
	corr.resolve("never-issued", reply{Success: true})
	assert.Equal(t, 0, corr.pendingCount())
}

func TestCorrelator_LateReplyAfterTimeoutIsDropped(t *testing.T) {
	corr := newCorrelator(10*time.Millisecond, testLogger())

	id, wait := corr.register(CmdGetAllUsers)

	_, err := wait(context.Background())
	require.ErrorIs(t, err, ErrCommandTimeout)

	corr.resolve(id, reply{Success: true})
	assert.Equal(t, 0, corr.pendingCount())
}

func TestCorrelator_DistinctIDsPerCommand(t *testing.T) {
	corr := newCorrelator(time.Minute, testLogger())

	idA, _ := corr.register(CmdConnect)
	idB, _ := corr.register(CmdConnect)

	assert.NotEqual(t, idA, idB)
	corr.failAll(ErrDisconnected)
}
