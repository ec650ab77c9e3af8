// Package timer provides a cancelable one-shot timer for Bubble Tea
// models. A Timer never runs anything on its own goroutine: Schedule
// returns a tick command and the stored action runs only when the
// matching FiredMsg is handed back to Handle from the model's Update.
package timer

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FiredMsg is delivered when a scheduled delay elapses. ID identifies the
// timer and Tag the schedule call; ticks with an outdated tag are ignored.
type FiredMsg struct {
	ID  int
	Tag int
}

// Ticker produces the command that delivers a FiredMsg after d. It has the
// signature of tea.Tick.
type Ticker func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Option configures a Timer
type Option func(*Timer)

// WithTicker replaces tea.Tick, mostly so tests can fire ticks without
// waiting.
func WithTicker(t Ticker) Option {
	return func(timer *Timer) {
		timer.ticker = t
	}
}

// Timer runs at most one pending action. Scheduling again replaces the
// pending action and restarts the delay.
type Timer struct {
	id       int
	tag      int
	action   func()
	disposed bool
	ticker   Ticker
}

// New creates an idle timer
func New(opts ...Option) *Timer {
	t := &Timer{
		id:     nextID(),
		ticker: tea.Tick,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID returns the identifier carried by this timer's FiredMsg values
func (t *Timer) ID() int {
	return t.id
}

// Schedule cancels any pending action and arranges for action to run d
// from now. A non-positive delay runs action immediately and returns nil.
// Scheduling a disposed timer does nothing.
func (t *Timer) Schedule(d time.Duration, action func()) tea.Cmd {
	if t.disposed {
		return nil
	}
	t.Cancel()

	if d <= 0 {
		action()
		return nil
	}

	t.action = action
	id, tag := t.id, t.tag
	return t.ticker(d, func(time.Time) tea.Msg {
		return FiredMsg{ID: id, Tag: tag}
	})
}

// Cancel drops the pending action, if any. A tick already in flight is
// ignored when it arrives.
func (t *Timer) Cancel() {
	t.tag++
	t.action = nil
}

// Pending reports whether an action is waiting to run
func (t *Timer) Pending() bool {
	return t.action != nil
}

// Owns reports whether msg was produced by this timer
func (t *Timer) Owns(msg FiredMsg) bool {
	return msg.ID == t.id
}

// Handle runs the pending action if msg is the current tick for this
// timer. It reports whether the action ran.
func (t *Timer) Handle(msg FiredMsg) bool {
	if t.disposed || msg.ID != t.id || msg.Tag != t.tag || t.action == nil {
		return false
	}
	action := t.action
	t.action = nil
	action()
	return true
}

// Dispose cancels the pending action and makes every later call a no-op
func (t *Timer) Dispose() {
	t.Cancel()
	t.disposed = true
}
