// Package visibility decides when the list's sentinel row has come
// into (or close enough to) the visible window, signalling that the
// next page should load. It is pure geometry over row counts: the
// renderer reports viewport state after every scroll or re-render and
// the trigger fires its subscriber on entry.
package visibility

import "sync"

// Viewport describes the renderer's window over the list content, in
// rows. Top is the index of the first visible content row, Height how
// many rows are shown. SentinelTop/SentinelHeight locate the sentinel
// region inside the content.
type Viewport struct {
	Top            int
	Height         int
	ContentHeight  int
	SentinelTop    int
	SentinelHeight int
}

// Trigger watches sentinel geometry and fires a callback when the
// sentinel enters the trigger region. Firing is edge-triggered: one
// signal per entry, re-armed when the sentinel leaves again. Repeated
// Observe calls while visible do not re-fire; the continuation guard
// downstream would reject them anyway, but not firing keeps the
// signal clean.
type Trigger struct {
	mu        sync.Mutex
	threshold float64 // fraction of the sentinel that must be visible
	lookahead int     // extra rows below the window that count as visible
	notify    func()
	anchor    string
	inside    bool // sentinel currently in the trigger region
	observed  bool // a viewport has been reported for the current anchor
	last      Viewport
	closed    bool
}

// New creates a trigger. threshold is the fraction of the sentinel
// that must be inside the (lookahead-expanded) window before firing;
// near zero fires as soon as any row of it shows.
func New(threshold float64, lookaheadRows int) *Trigger {
	if threshold < 0 {
		threshold = 0
	}
	if lookaheadRows < 0 {
		lookaheadRows = 0
	}
	return &Trigger{threshold: threshold, lookahead: lookaheadRows}
}

// Notify registers the callback fired on entry. Only one subscriber
// is held; registering replaces the previous one.
func (t *Trigger) Notify(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notify = fn
}

// Attach tells the trigger which sentinel it is watching. When the
// anchor identity changes (the list re-rendered and produced a new
// sentinel), observation state resets and, if geometry for the new
// anchor is already known, an initial check runs right away. A short
// list can sit with its sentinel already inside the window before any
// scroll happens; without this check no scroll event would ever fire.
func (t *Trigger) Attach(anchorID string) {
	t.mu.Lock()
	if t.closed || anchorID == t.anchor {
		t.mu.Unlock()
		return
	}
	t.anchor = anchorID
	t.inside = false
	fire := t.observed && t.evaluate(t.last)
	if fire {
		t.inside = true
	}
	fn := t.notify
	t.mu.Unlock()

	if fire && fn != nil {
		fn()
	}
}

// Observe reports the current viewport state. Fires the subscriber if
// the sentinel has newly entered the trigger region.
func (t *Trigger) Observe(vp Viewport) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.last = vp
	t.observed = true

	// Geometry reported before any Attach is recorded but cannot
	// fire; the initial check runs when the anchor arrives.
	if t.anchor == "" {
		t.mu.Unlock()
		return
	}

	visible := t.evaluate(vp)
	fire := visible && !t.inside
	t.inside = visible
	fn := t.notify
	t.mu.Unlock()

	if fire && fn != nil {
		fn()
	}
}

// Close detaches the trigger. It never fires after Close returns.
func (t *Trigger) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.notify = nil
}

// evaluate reports whether the sentinel meets the threshold inside
// the lookahead-expanded window. Caller must hold t.mu.
func (t *Trigger) evaluate(vp Viewport) bool {
	if vp.SentinelHeight <= 0 || vp.Height <= 0 {
		return false
	}

	windowTop := vp.Top
	windowBottom := vp.Top + vp.Height + t.lookahead // exclusive
	sentinelTop := vp.SentinelTop
	sentinelBottom := vp.SentinelTop + vp.SentinelHeight // exclusive

	overlapTop := max(windowTop, sentinelTop)
	overlapBottom := min(windowBottom, sentinelBottom)
	overlap := overlapBottom - overlapTop
	if overlap <= 0 {
		return false
	}

	fraction := float64(overlap) / float64(vp.SentinelHeight)
	if t.threshold == 0 {
		return true
	}
	return fraction >= t.threshold
}
