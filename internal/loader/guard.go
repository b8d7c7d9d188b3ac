package loader

import "sync"

// Guard serializes continuation requests. At most one fetch is in
// flight per loader; everything else asking to continue while busy or
// after exhaustion is silently turned away. Rejection is expected
// traffic, not an error: the visibility trigger keeps signalling
// while a fetch runs.
type Guard struct {
	mu        sync.Mutex
	busy      bool
	exhausted bool
}

// Admit reports whether a continuation may proceed. On admission the
// busy flag is set before Admit returns, so a second caller arriving
// before the fetch even starts is already rejected.
func (g *Guard) Admit() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy || g.exhausted {
		return false
	}
	g.busy = true
	return true
}

// Settle clears the busy flag once a fetch finished, whether it
// succeeded or failed.
func (g *Guard) Settle() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.busy = false
}

// Exhaust marks the source as out of pages. Only Reset clears it.
func (g *Guard) Exhaust() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.exhausted = true
}

// Reset returns the guard to its initial state for a new query.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.busy = false
	g.exhausted = false
}

// Busy reports whether a fetch is in flight.
func (g *Guard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// Exhausted reports whether the source is out of pages.
func (g *Guard) Exhausted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.exhausted
}
