package loader

import (
	"sync"
	"time"
)

// Debouncer coalesces raw search input into committed terms. Each
// keystroke feeds Input; after a quiet period with no further input
// the emit callback fires once with the latest value. Intermediate
// values are never emitted, and nothing is emitted after Close.
//
// Thread-safety: all methods are safe for concurrent use. The emit
// callback is never called concurrently with itself from here.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	seq    uint64 // invalidates stale timer callbacks
	latest string
	dirty  bool
	closed bool
	emit   func(term string)
}

// NewDebouncer creates a debouncer that calls emit after delay of
// quiet following the last Input.
func NewDebouncer(delay time.Duration, emit func(term string)) *Debouncer {
	return &Debouncer{delay: delay, emit: emit}
}

// Input records a raw term and restarts the quiet period.
func (d *Debouncer) Input(raw string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.latest = raw
	d.dirty = true
	d.seq++
	currentSeq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.dirty && !d.closed && d.seq == currentSeq && d.emit != nil {
			d.dirty = false
			term := d.latest
			fn := d.emit
			d.mu.Unlock()
			fn(term)
		} else {
			d.mu.Unlock()
		}
	})
}

// Flush commits a pending term immediately, skipping the remaining
// quiet period. The renderer uses this when the user hits enter.
func (d *Debouncer) Flush() {
	d.mu.Lock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++

	if d.dirty && !d.closed && d.emit != nil {
		d.dirty = false
		term := d.latest
		fn := d.emit
		d.mu.Unlock()
		fn(term)
		return
	}
	d.mu.Unlock()
}

// Pending reports whether an emission is waiting on the quiet period.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dirty
}

// Close discards any pending emission. No emission happens after
// Close returns.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	d.dirty = false
	d.closed = true
}
