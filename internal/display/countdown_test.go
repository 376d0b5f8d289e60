package display_test

import (
	"sync/atomic"
	"testing"
	"time"

	"bannerweb/internal/display"
	"bannerweb/internal/display/displaytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	waitFor = time.Second
	poll    = 5 * time.Millisecond
)

func newCountdown(t *testing.T, timer int) (*display.Countdown, *displaytest.Clock, *atomic.Int32) {
	t.Helper()
	clock := displaytest.NewClock()
	fired := &atomic.Int32{}
	c := display.New(timer, func() { fired.Add(1) }, display.WithClock(clock))
	t.Cleanup(c.Stop)
	return c, clock, fired
}

func TestCountdown_ExpiresAfterNTicks(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		c, clock, fired := newCountdown(t, n)
		require.Equal(t, display.Counting, c.State())
		require.Equal(t, n, c.Remaining())

		clock.TickN(t, n)

		require.Eventually(t, func() bool { return c.State() == display.Expired }, waitFor, poll)
		require.Eventually(t, func() bool { return fired.Load() == 1 }, waitFor, poll)
		assert.Equal(t, 0, c.Remaining())

		// the schedule is released after expiry
		assert.False(t, clock.TryTick(20*time.Millisecond))
		assert.Equal(t, int32(1), fired.Load())
	}
}

func TestCountdown_CountsDownOncePerTick(t *testing.T) {
	c, clock, fired := newCountdown(t, 5)

	clock.Tick(t)
	clock.Tick(t)
	require.Eventually(t, func() bool { return c.Remaining() == 3 }, waitFor, poll)
	assert.Equal(t, display.Counting, c.State())
	assert.Zero(t, fired.Load())
}

func TestCountdown_ZeroTimerNeverFires(t *testing.T) {
	c, clock, fired := newCountdown(t, 0)

	assert.Equal(t, display.Expired, c.State())
	assert.Equal(t, 0, c.Remaining())
	assert.Zero(t, clock.Tickers())

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestCountdown_ZeroTimerCanBeDismissed(t *testing.T) {
	c, _, fired := newCountdown(t, 0)

	c.Dismiss()
	c.Dismiss()

	assert.Equal(t, int32(1), fired.Load())
}

func TestCountdown_DismissBeforeExpiryFiresOnce(t *testing.T) {
	c, clock, fired := newCountdown(t, 3)

	clock.Tick(t)
	require.Eventually(t, func() bool { return c.Remaining() == 2 }, waitFor, poll)

	c.Dismiss()
	assert.Equal(t, display.Expired, c.State())
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, int32(1), fired.Load())

	// let the original schedule elapse
	for i := 0; i < 3; i++ {
		clock.TryTick(20 * time.Millisecond)
	}
	c.Dismiss()

	assert.Equal(t, int32(1), fired.Load())
}

func TestCountdown_DismissAfterExpiryIsNoop(t *testing.T) {
	c, clock, fired := newCountdown(t, 1)

	clock.Tick(t)
	require.Eventually(t, func() bool { return fired.Load() == 1 }, waitFor, poll)

	c.Dismiss()
	assert.Equal(t, int32(1), fired.Load())
}

func TestCountdown_ResetRestartsSchedule(t *testing.T) {
	c, clock, fired := newCountdown(t, 3)

	clock.TickN(t, 2)
	require.Eventually(t, func() bool { return c.Remaining() == 1 }, waitFor, poll)

	c.Reset(4)
	assert.Equal(t, 4, c.Remaining())
	assert.Equal(t, 4, c.Timer())
	assert.Equal(t, 2, clock.Tickers())

	// a compounding schedule would expire after one more tick
	clock.Tick(t)
	require.Eventually(t, func() bool { return c.Remaining() == 3 }, waitFor, poll)
	assert.Zero(t, fired.Load())

	clock.TickN(t, 3)
	require.Eventually(t, func() bool { return fired.Load() == 1 }, waitFor, poll)
}

func TestCountdown_ResetToZeroExpiresWithoutFiring(t *testing.T) {
	c, _, fired := newCountdown(t, 3)

	c.Reset(0)

	assert.Equal(t, display.Expired, c.State())
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestCountdown_StopNeverFires(t *testing.T) {
	c, clock, fired := newCountdown(t, 2)

	c.Stop()
	clock.TryTick(20 * time.Millisecond)
	c.Dismiss()

	assert.Zero(t, fired.Load())
}

func TestCountdown_RealClock(t *testing.T) {
	fired := make(chan struct{}, 2)
	c := display.New(2, func() { fired <- struct{}{} }, display.WithInterval(5*time.Millisecond))
	defer c.Stop()

	select {
	case <-fired:
	case <-time.After(waitFor):
		t.Fatal("countdown did not expire")
	}
	assert.Equal(t, display.Expired, c.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "counting", display.Counting.String())
	assert.Equal(t, "expired", display.Expired.String())
	assert.Equal(t, "unknown", display.State(9).String())
}
