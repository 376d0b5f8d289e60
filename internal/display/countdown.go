// Package display runs the banner countdown: Counting(n) ticks down once per
// interval until Expired, firing the expiry callback at most once per mount.
package display

import (
	"sync"
	"time"
)

type State int

const (
	Counting State = iota
	Expired
)

func (s State) String() string {
	switch s {
	case Counting:
		return "counting"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

const DefaultInterval = time.Second

type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type realClock struct{}

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct {
	*time.Ticker
}

func (t realTicker) Chan() <-chan time.Time {
	return t.C
}

type Option func(*Countdown)

func WithClock(clock Clock) Option {
	return func(c *Countdown) {
		c.clock = clock
	}
}

func WithInterval(d time.Duration) Option {
	return func(c *Countdown) {
		c.interval = d
	}
}

// handle is the scheduled tick owned by exactly one mount.
type handle struct {
	stop chan struct{}
}

type Countdown struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	onExpire func()

	timer     int
	remaining int
	state     State
	// settled is set once the callback fired or the countdown was stopped.
	settled bool
	handle  *handle
}

// New mounts a countdown for timer seconds and starts scheduling ticks.
// A timer of zero or less starts Expired and never fires on its own.
func New(timer int, onExpire func(), opts ...Option) *Countdown {
	c := &Countdown{
		clock:    realClock{},
		interval: DefaultInterval,
		onExpire: onExpire,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Reset(timer)

	return c
}

// Reset cancels any in-flight schedule and re-enters Counting(timer).
func (c *Countdown) Reset(timer int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()

	c.timer = timer
	c.settled = false
	if timer <= 0 {
		c.remaining = 0
		c.state = Expired
		return
	}

	c.remaining = timer
	c.state = Counting

	h := &handle{stop: make(chan struct{})}
	c.handle = h
	go c.run(h, c.clock.NewTicker(c.interval))
}

// Dismiss is the manual close: it forces Expired and fires the callback
// unless it already fired for this mount.
func (c *Countdown) Dismiss() {
	c.mu.Lock()
	if c.settled {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	c.remaining = 0
	c.state = Expired
	c.settled = true
	c.mu.Unlock()

	c.fire()
}

// Stop unmounts the countdown without firing the callback.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.settled = true
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Countdown) Timer() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer
}

func (c *Countdown) run(h *handle, t Ticker) {
	defer t.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-t.Chan():
			expired, done := c.tick(h)
			if expired {
				c.fire()
			}
			if done {
				return
			}
		}
	}
}

func (c *Countdown) tick(h *handle) (expired bool, done bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// superseded by Reset, Dismiss or Stop
	if c.handle != h {
		return false, true
	}

	c.remaining--
	if c.remaining > 0 {
		return false, false
	}

	c.remaining = 0
	c.state = Expired
	c.settled = true
	c.handle = nil

	return true, true
}

func (c *Countdown) cancelLocked() {
	if c.handle == nil {
		return
	}
	close(c.handle.stop)
	c.handle = nil
}

func (c *Countdown) fire() {
	if c.onExpire != nil {
		c.onExpire()
	}
}
