// Package debounce provides a generation-counted debouncer for lookups
// triggered by rapid successive events (e.g., autocomplete keystrokes).
//
// Each trigger schedules a delayed call tagged with a generation id and
// cancels the previously pending one. Only the call whose generation is
// still current when the delay elapses actually runs, so stale lookups are
// discarded without depending on any UI framework's effect model.
package debounce

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the delay used when none is configured.
const DefaultInterval = 400 * time.Millisecond

// Debouncer coalesces rapid triggers into a single delayed call.
// The zero value is not usable; create one with New.
type Debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	gen     uint64
	pending *time.Timer
}

// New creates a Debouncer with the given interval.
// A non-positive interval falls back to DefaultInterval.
func New(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Debouncer{interval: interval}
}

// Trigger schedules fn to run after the debounce interval, superseding any
// previously scheduled call. fn receives the context passed here; if the
// context is cancelled before the interval elapses, fn does not run.
//
// Trigger returns the generation id of the scheduled call. The id of the
// most recent trigger is the only one whose fn will run.
func (d *Debouncer) Trigger(ctx context.Context, fn func(ctx context.Context)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen

	if d.pending != nil {
		d.pending.Stop()
	}

	d.pending = time.AfterFunc(d.interval, func() {
		if ctx.Err() != nil {
			return
		}
		if !d.isCurrent(gen) {
			return
		}
		fn(ctx)
	})

	return gen
}

// Stop cancels any pending call without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	// Invalidate the last scheduled generation in case its timer already fired.
	d.gen++
}

// Generation returns the id of the most recent trigger.
func (d *Debouncer) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

// isCurrent reports whether gen is still the latest scheduled generation.
func (d *Debouncer) isCurrent(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen == gen
}
