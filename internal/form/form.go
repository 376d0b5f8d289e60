// Package form is the banner admin form: a draft copy of the banner fields,
// validated before it is submitted to the coordinator.
package form

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"bannerweb/internal/banner"
)

const (
	MsgDescriptionRequired = "Description is required."
	MsgInvalidLink         = "Link must be a valid URL."
	MsgInvalidTimer        = "Timer must be a non-negative integer."
	MsgUpdateFailed        = "Failed to update banner. Please try again."
)

var (
	ErrInvalid    = errors.New("invalid draft")
	ErrSubmitting = errors.New("submission in progress")
)

var (
	httpLink = regexp.MustCompile(`^https?://.+`)
	wwwLink  = regexp.MustCompile(`^www\..+`)
)

const defaultTimer = "60"

// Draft keeps the timer as typed so invalid input survives a failed submit.
type Draft struct {
	Description string
	Link        string
	Timer       string
	IsVisible   bool
}

func DraftFromBanner(b *banner.Banner) Draft {
	if b == nil {
		return Draft{Timer: defaultTimer}
	}
	return Draft{
		Description: b.Description,
		Link:        b.Link,
		Timer:       strconv.Itoa(b.Timer),
		IsVisible:   b.IsVisible,
	}
}

// ParseDraft reads a posted HTML form. An unchecked checkbox is absent.
func ParseDraft(v url.Values) Draft {
	return Draft{
		Description: v.Get("description"),
		Link:        v.Get("link"),
		Timer:       strings.TrimSpace(v.Get("timer")),
		IsVisible:   v.Has("isVisible"),
	}
}

// Validate runs the checks in order and returns the first failing message,
// or "" when the draft is valid.
func Validate(d Draft) string {
	if strings.TrimSpace(d.Description) == "" {
		return MsgDescriptionRequired
	}
	if !httpLink.MatchString(d.Link) && !wwwLink.MatchString(d.Link) {
		return MsgInvalidLink
	}
	if _, ok := parseTimer(d.Timer); !ok {
		return MsgInvalidTimer
	}
	return ""
}

// Patch converts a valid draft into a full banner patch.
func (d Draft) Patch() (banner.Patch, error) {
	timer, ok := parseTimer(d.Timer)
	if !ok {
		return banner.Patch{}, fmt.Errorf("form.Draft.Patch: %w: timer %q", ErrInvalid, d.Timer)
	}
	return banner.PatchFromBanner(banner.Banner{
		Description: d.Description,
		Link:        d.Link,
		Timer:       timer,
		IsVisible:   d.IsVisible,
	}), nil
}

// parseTimer accepts integral numbers such as "5" or "5.0".
func parseTimer(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

type Updater interface {
	Update(ctx context.Context, patch banner.Patch) error
}

type View struct {
	Draft      Draft
	Error      string
	Submitting bool
}

type Form struct {
	updater Updater

	mu         sync.Mutex
	draft      Draft
	err        string
	submitting bool
}

func New(updater Updater, seed *banner.Banner) *Form {
	return &Form{
		updater: updater,
		draft:   DraftFromBanner(seed),
	}
}

// Seed replaces the draft with the latest canonical banner. A nil banner
// keeps the current draft.
func (f *Form) Seed(b *banner.Banner) {
	if b == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = DraftFromBanner(b)
}

// Submit validates d and sends it to the updater. The form is disabled for
// the duration of the update and the draft is kept on failure.
func (f *Form) Submit(ctx context.Context, d Draft) error {
	const op = "form.Submit"

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrSubmitting)
	}

	f.draft = d
	if msg := Validate(d); msg != "" {
		f.err = msg
		f.mu.Unlock()
		return fmt.Errorf("%s: %w: %s", op, ErrInvalid, msg)
	}

	f.submitting = true
	f.err = ""
	f.mu.Unlock()

	err := f.update(ctx, d)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false
	if err != nil {
		f.err = MsgUpdateFailed
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (f *Form) update(ctx context.Context, d Draft) error {
	patch, err := d.Patch()
	if err != nil {
		return err
	}
	return f.updater.Update(ctx, patch)
}

func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	return View{
		Draft:      f.draft,
		Error:      f.err,
		Submitting: f.submitting,
	}
}
