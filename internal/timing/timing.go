// Package timing holds the two small timer state machines the widgets share:
// a trailing-edge debouncer coalescing bursts of input into one action, and a
// frame throttle guaranteeing at most one update per rendered frame.
package timing

import (
	"sync"
	"time"
)

// Debouncer runs only the last action of a burst, delay after the burst ends.
// Each Trigger cancels and reschedules the pending timer.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the delay, replacing any pending action.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending action, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Throttle coalesces requests so at most one action runs per interval. The
// first request of a window schedules the action; the rest of the window is
// dropped, the action re-reads whatever state it needs when it runs.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	pending  *time.Timer
}

func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Request schedules fn unless an action is already pending. Reports whether
// this call scheduled it.
func (t *Throttle) Request(fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		return false
	}

	t.pending = time.AfterFunc(t.interval, func() {
		t.mu.Lock()
		t.pending = nil
		t.mu.Unlock()

		fn()
	})

	return true
}

// Stop cancels the pending action, if any.
func (t *Throttle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}
