package analytics

import (
	"sync"
	"time"
)

// SearchDebounceDelay is the quiet period applied to live search input
// before a fetch is issued.
const SearchDebounceDelay = 400 * time.Millisecond

// Handle is a cancellable scheduled call.
type Handle struct {
	timer *time.Timer
}

// Cancel stops the pending call if it hasn't fired yet.
func (h *Handle) Cancel() {
	if h != nil && h.timer != nil {
		h.timer.Stop()
	}
}

// Schedule runs fn after delay and returns a handle that can cancel it.
func Schedule(fn func(), delay time.Duration) *Handle {
	return &Handle{timer: time.AfterFunc(delay, fn)}
}

// Debouncer coalesces rapid calls into one: each Call cancels the previous
// pending one, so only the last call within a quiet period fires
// (last-write-wins). It delays the final call, never drops it.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	pending *Handle
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn after the quiet period, cancelling any pending call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending.Cancel()
	d.pending = Schedule(fn, d.delay)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending.Cancel()
	d.pending = nil
}
