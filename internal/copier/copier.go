// Package copier implements the copy-to-clipboard helper behind the embed
// documentation page: it reads a snippet's rendered text, hands it to the
// clipboard capability, and drives the per-snippet "Copied!" acknowledgment.
package copier

import (
	"fmt"
	"sync"
	"time"
)

// HideDelay is how long a copy acknowledgment stays visible.
const HideDelay = 2000 * time.Millisecond

// SnippetSource resolves a snippet ID to its rendered text.
type SnippetSource interface {
	SnippetText(id string) (string, bool)
}

// Clipboard is the host capability the copier writes through.
type Clipboard interface {
	WriteText(text string) error
}

// ChangeFunc observes notification visibility transitions.
type ChangeFunc func(noteID string, visible bool)

// Timer is the cancelable delay behind a pending hide. time.AfterFunc
// satisfies it in production; tests substitute a manual trigger.
type Timer interface {
	Stop() bool
}

// TimerFunc schedules fn after d and returns a handle that can cancel it.
type TimerFunc func(d time.Duration, fn func()) Timer

type note struct {
	visible bool
	timer   Timer
	gen     uint64
}

// Copier owns the notification state for every snippet on the page.
// All timer state lives here, keyed by notification ID, so there is at most
// one pending hide per notification.
type Copier struct {
	mu       sync.Mutex
	source   SnippetSource
	clip     Clipboard
	delay    time.Duration
	newTimer TimerFunc
	notes    map[string]*note
	onChange ChangeFunc
}

// Option configures a Copier.
type Option func(*Copier)

// WithHideDelay overrides the acknowledgment duration.
func WithHideDelay(d time.Duration) Option {
	return func(c *Copier) { c.delay = d }
}

// WithTimerFunc overrides the hide scheduler.
func WithTimerFunc(f TimerFunc) Option {
	return func(c *Copier) { c.newTimer = f }
}

// New creates a Copier reading snippets from source and writing through clip.
func New(source SnippetSource, clip Clipboard, opts ...Option) *Copier {
	c := &Copier{
		source: source,
		clip:   clip,
		delay:  HideDelay,
		newTimer: func(d time.Duration, fn func()) Timer {
			return time.AfterFunc(d, fn)
		},
		notes: make(map[string]*note),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers the visibility observer. Call before the first Copy.
func (c *Copier) OnChange(fn ChangeFunc) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// NoteID returns the notification identifier paired with a snippet.
func NoteID(snippetID string) string {
	return snippetID + "-notification"
}

// Copy writes the snippet's text to the clipboard. On success the paired
// notification becomes visible and a hide is scheduled after the configured
// delay; a copy that lands while a hide is pending supersedes that timer so
// the notification stays up for a fresh full window. On failure the
// notification state is left untouched.
func (c *Copier) Copy(snippetID string) error {
	text, ok := c.source.SnippetText(snippetID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSnippet, snippetID)
	}
	if err := c.clip.WriteText(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardWrite, err)
	}
	c.show(NoteID(snippetID))
	return nil
}

// Visible reports whether the notification is currently shown.
func (c *Copier) Visible(noteID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.notes[noteID]
	return ok && n.visible
}

// Dismiss cancels any pending hide and hides the notification immediately.
func (c *Copier) Dismiss(noteID string) {
	c.mu.Lock()
	n, ok := c.notes[noteID]
	if !ok || !n.visible {
		c.mu.Unlock()
		return
	}
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	n.visible = false
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(noteID, false)
	}
}

func (c *Copier) show(noteID string) {
	c.mu.Lock()
	n, ok := c.notes[noteID]
	if !ok {
		n = &note{}
		c.notes[noteID] = n
	}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	wasVisible := n.visible
	n.visible = true
	n.timer = c.newTimer(c.delay, func() { c.hide(noteID, gen) })
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil && !wasVisible {
		fn(noteID, true)
	}
}

// hide is the timer callback. The generation guard drops fires from timers
// that were superseded between expiring and acquiring the lock.
func (c *Copier) hide(noteID string, gen uint64) {
	c.mu.Lock()
	n, ok := c.notes[noteID]
	if !ok || n.gen != gen || !n.visible {
		c.mu.Unlock()
		return
	}
	n.visible = false
	n.timer = nil
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(noteID, false)
	}
}
