// Package debounce provides a last-call-wins debouncer for coalescing
// bursts of calls, such as search-as-you-type requests, into a single
// invocation after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays function execution until calls stop arriving for the
// configured duration. Each Call cancels any pending invocation, so only
// the last call in a burst runs.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// New creates a Debouncer with the given quiet period.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the quiet period, cancelling any
// previously scheduled function that has not fired yet.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending invocation. It reports whether a pending
// invocation was cancelled.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
