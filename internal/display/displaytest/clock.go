// Package displaytest provides a manually driven clock for countdown tests.
package displaytest

import (
	"sync"
	"testing"
	"time"

	"bannerweb/internal/display"
)

type Clock struct {
	mu      sync.Mutex
	tickers []*Ticker
}

func NewClock() *Clock {
	return &Clock{}
}

func (c *Clock) NewTicker(time.Duration) display.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &Ticker{ch: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

// Tickers reports how many tickers were ever scheduled.
func (c *Clock) Tickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

// Tick delivers one tick to the most recently scheduled ticker and fails the
// test if nothing receives it.
func (c *Clock) Tick(tb testing.TB) {
	tb.Helper()
	if !c.TryTick(time.Second) {
		tb.Fatal("tick was not received")
	}
}

// TryTick delivers one tick to the latest ticker, reporting whether it was
// received within wait.
func (c *Clock) TryTick(wait time.Duration) bool {
	c.mu.Lock()
	if len(c.tickers) == 0 {
		c.mu.Unlock()
		return false
	}
	t := c.tickers[len(c.tickers)-1]
	c.mu.Unlock()

	select {
	case t.ch <- time.Now():
		return true
	case <-time.After(wait):
		return false
	}
}

// TickN sends n ticks to the latest ticker.
func (c *Clock) TickN(tb testing.TB, n int) {
	tb.Helper()
	for i := 0; i < n; i++ {
		c.Tick(tb)
	}
}

type Ticker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *Ticker) Chan() <-chan time.Time {
	return t.ch
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *Ticker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}
