package cloud

import (
	"context"
	"sync"
	"time"
)

// Debouncer runs fn once after a quiet period. Every Schedule restarts the
// period, so a burst of changes produces a single run that sees the final
// state. Runs never overlap.
type Debouncer struct {
	delay time.Duration
	fn    func(ctx context.Context)
	base  context.Context

	runMu sync.Mutex // held while fn runs

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	closed  bool
}

// NewDebouncer creates a Debouncer. Timer-triggered runs use base as context.
func NewDebouncer(base context.Context, delay time.Duration, fn func(ctx context.Context)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn, base: base}
}

// Schedule marks work pending and restarts the quiet period.
// It is a no-op after Close.
func (d *Debouncer) Schedule() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.pending = true
	if d.timer == nil {
		d.timer = time.AfterFunc(d.delay, func() { d.run(d.base) })
		return
	}
	d.timer.Reset(d.delay)
}

// Pending reports whether a run is scheduled but has not started.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Flush runs pending work now and waits for it, including a run the timer
// already started.
func (d *Debouncer) Flush(ctx context.Context) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.run(ctx)
}

// Close flushes and stops accepting work.
func (d *Debouncer) Close(ctx context.Context) {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.Flush(ctx)
}

func (d *Debouncer) run(ctx context.Context) {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	d.mu.Lock()
	pending := d.pending
	d.pending = false
	d.mu.Unlock()

	if pending {
		d.fn(ctx)
	}
}
