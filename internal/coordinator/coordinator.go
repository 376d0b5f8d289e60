// Package coordinator owns the canonical banner state. It performs the
// initial fetch, relays form updates to the backend, mounts the countdown
// while the banner is visible and queues transient notifications.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bannerweb/internal/banner"
	"bannerweb/internal/display"
	"bannerweb/pkg/lib/sl"

	"github.com/google/uuid"
)

var ErrNoBanner = errors.New("no banner loaded")

const (
	MsgLoadFailed   = "Failed to load banner data. Please try again later."
	MsgUpdated      = "Banner updated successfully!"
	MsgUpdateFailed = "Failed to update banner. Please try again."
)

type BannerClient interface {
	Banner(ctx context.Context) (*banner.Banner, error)
	SaveBanner(ctx context.Context, b banner.Banner) (*banner.Banner, error)
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

type Notice struct {
	ID        string     `json:"id"`
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

// DisplayView is what the page needs to draw a mounted banner.
type DisplayView struct {
	Description string `json:"description"`
	Link        string `json:"link"`
	Remaining   int    `json:"remaining"`
	Expired     bool   `json:"expired"`
}

type Snapshot struct {
	Loading bool
	Banner  *banner.Banner
	// Display is nil unless the banner is loaded and visible.
	Display *DisplayView
}

type Option func(*Coordinator)

// WithDisplayOptions configures every countdown the coordinator mounts.
func WithDisplayOptions(opts ...display.Option) Option {
	return func(c *Coordinator) {
		c.displayOpts = append(c.displayOpts, opts...)
	}
}

// WithContext sets the context used for updates triggered by countdown expiry.
func WithContext(ctx context.Context) Option {
	return func(c *Coordinator) {
		c.ctx = ctx
	}
}

type Coordinator struct {
	log         *slog.Logger
	client      BannerClient
	displayOpts []display.Option
	ctx         context.Context

	mu        sync.Mutex
	loading   bool
	banner    *banner.Banner
	countdown *display.Countdown
	mountGen  uint64
	notices   []Notice
	observers []func(*banner.Banner)
}

func New(log *slog.Logger, client BannerClient, opts ...Option) *Coordinator {
	c := &Coordinator{
		log:     log,
		client:  client,
		ctx:     context.Background(),
		loading: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn to receive a copy of canonical state after every change.
func (c *Coordinator) Subscribe(fn func(*banner.Banner)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Load issues the single startup read.
func (c *Coordinator) Load(ctx context.Context) error {
	const op = "coordinator.Load"

	log := c.log.With(
		slog.String("op", op),
	)

	log.Info("fetching banner")

	b, err := c.client.Banner(ctx)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.notifyLocked(NoticeError, MsgLoadFailed)
		c.mu.Unlock()

		log.Error("failed to fetch banner", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	c.banner = b
	c.syncDisplayLocked()
	current := c.banner.Clone()
	observers := c.observers
	c.mu.Unlock()

	log.Info("banner fetched", slog.Bool("visible", b.IsVisible), slog.Int("timer", b.Timer))
	publish(observers, current)

	return nil
}

// Update merges patch over canonical state and overwrites the remote record.
// Canonical state only changes when the backend confirms the write.
func (c *Coordinator) Update(ctx context.Context, patch banner.Patch) error {
	const op = "coordinator.Update"

	log := c.log.With(
		slog.String("op", op),
	)

	c.mu.Lock()
	if c.banner == nil {
		c.mu.Unlock()
		log.Warn("update without loaded banner")
		return fmt.Errorf("%s: %w", op, ErrNoBanner)
	}
	merged := banner.Merge(*c.banner.Clone(), patch)
	c.mu.Unlock()

	log.Debug("saving banner", slog.Any("banner", merged))

	saved, err := c.client.SaveBanner(ctx, merged)

	c.mu.Lock()
	if err != nil {
		c.notifyLocked(NoticeError, MsgUpdateFailed)
		c.mu.Unlock()

		log.Error("failed to update banner", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	// last write wins
	c.banner = saved
	c.syncDisplayLocked()
	c.notifyLocked(NoticeSuccess, MsgUpdated)
	current := c.banner.Clone()
	observers := c.observers
	c.mu.Unlock()

	log.Info("banner updated")
	publish(observers, current)

	return nil
}

// TimerEnd hides the banner locally before confirming the change with the
// backend. A failed confirmation is not rolled back.
func (c *Coordinator) TimerEnd(ctx context.Context) error {
	return c.timerEnd(ctx, nil)
}

func (c *Coordinator) timerEnd(ctx context.Context, gen *uint64) error {
	c.mu.Lock()
	if c.banner == nil {
		c.mu.Unlock()
		return nil
	}
	// an expiry from a countdown that was already replaced is ignored
	if gen != nil && (*gen != c.mountGen || c.countdown == nil) {
		c.mu.Unlock()
		return nil
	}
	c.banner.IsVisible = false
	c.syncDisplayLocked()
	current := c.banner.Clone()
	observers := c.observers
	c.mu.Unlock()

	publish(observers, current)

	return c.Update(ctx, banner.Hide())
}

// Dismiss is the manual close of the mounted banner. It reports whether a
// countdown was mounted.
func (c *Coordinator) Dismiss() bool {
	c.mu.Lock()
	cd := c.countdown
	c.mu.Unlock()

	if cd == nil {
		return false
	}

	// fires expire synchronously unless the countdown already settled
	cd.Dismiss()

	return true
}

func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Loading: c.loading,
		Banner:  c.banner.Clone(),
	}
	if c.countdown != nil {
		s.Display = &DisplayView{
			Description: c.banner.Description,
			Link:        c.banner.Link,
			Remaining:   c.countdown.Remaining(),
			Expired:     c.countdown.State() == display.Expired,
		}
	}
	return s
}

// Notices drains pending notifications.
func (c *Coordinator) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.notices
	c.notices = nil
	return n
}

// Close unmounts the countdown.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unmountLocked()
}

func (c *Coordinator) expire(gen uint64) {
	const op = "coordinator.expire"

	c.log.Debug("banner countdown ended", slog.String("op", op))

	if err := c.timerEnd(c.ctx, &gen); err != nil {
		c.log.Warn("failed to confirm hidden banner", slog.String("op", op), sl.Err(err))
	}
}

func (c *Coordinator) syncDisplayLocked() {
	switch {
	case c.banner == nil || !c.banner.IsVisible:
		c.unmountLocked()
	case c.countdown == nil:
		c.mountLocked()
	case c.countdown.Timer() != c.banner.Timer:
		c.countdown.Reset(c.banner.Timer)
	}
}

func (c *Coordinator) mountLocked() {
	c.mountGen++
	gen := c.mountGen
	c.countdown = display.New(c.banner.Timer, func() { c.expire(gen) }, c.displayOpts...)
}

func (c *Coordinator) unmountLocked() {
	if c.countdown == nil {
		return
	}
	c.countdown.Stop()
	c.countdown = nil
	c.mountGen++
}

func (c *Coordinator) notifyLocked(kind NoticeKind, msg string) {
	c.notices = append(c.notices, Notice{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   msg,
		CreatedAt: time.Now(),
	})
}

func publish(observers []func(*banner.Banner), b *banner.Banner) {
	for _, fn := range observers {
		fn(b.Clone())
	}
}
