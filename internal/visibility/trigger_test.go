package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vp builds a viewport for a list of contentRows rows with a one-row
// sentinel at the bottom, scrolled so that row `top` is first visible.
func vp(top, height, contentRows int) Viewport {
	return Viewport{
		Top:            top,
		Height:         height,
		ContentHeight:  contentRows + 1,
		SentinelTop:    contentRows,
		SentinelHeight: 1,
	}
}

func TestTriggerFiresOnEntry(t *testing.T) {
	tr := New(0.01, 0)
	fired := 0
	tr.Notify(func() { fired++ })
	tr.Attach("sentinel-1")

	tr.Observe(vp(0, 10, 50)) // sentinel at row 50, far below
	assert.Equal(t, 0, fired)

	tr.Observe(vp(41, 10, 50)) // rows 41..50 visible, sentinel on screen
	assert.Equal(t, 1, fired)
}

func TestTriggerIsEdgeTriggered(t *testing.T) {
	tr := New(0.01, 0)
	fired := 0
	tr.Notify(func() { fired++ })
	tr.Attach("sentinel-1")

	tr.Observe(vp(41, 10, 50))
	tr.Observe(vp(41, 10, 50))
	tr.Observe(vp(42, 10, 50))
	require.Equal(t, 1, fired, "repeated visibility must not re-fire")

	// Scroll away, then back: fires again.
	tr.Observe(vp(0, 10, 50))
	tr.Observe(vp(41, 10, 50))
	assert.Equal(t, 2, fired)
}

func TestTriggerLookaheadFiresEarly(t *testing.T) {
	tr := New(0.01, 3)
	fired := 0
	tr.Notify(func() { fired++ })
	tr.Attach("sentinel-1")

	// Sentinel at row 50; window shows rows 38..47. With 3 rows of
	// lookahead the expanded window reaches row 50.
	tr.Observe(vp(38, 10, 50))
	assert.Equal(t, 1, fired)

	// One row short of the expanded window: no fire.
	tr2 := New(0.01, 3)
	fired2 := 0
	tr2.Notify(func() { fired2++ })
	tr2.Attach("sentinel-1")
	tr2.Observe(vp(37, 10, 50))
	assert.Equal(t, 0, fired2)
}

func TestTriggerInitialCheckOnAttach(t *testing.T) {
	tr := New(0.01, 0)
	fired := 0
	tr.Notify(func() { fired++ })

	// Short list: sentinel already inside the window before any
	// scroll. Geometry arrives first, then the anchor changes on
	// re-render.
	tr.Attach("sentinel-1")
	tr.Observe(vp(0, 20, 5))
	require.Equal(t, 1, fired)

	// Re-render produced a new sentinel, still visible: initial check
	// fires without any Observe for it.
	tr.Attach("sentinel-2")
	assert.Equal(t, 2, fired)
}

func TestTriggerObserveBeforeAttachDoesNotFire(t *testing.T) {
	tr := New(0.01, 0)
	fired := 0
	tr.Notify(func() { fired++ })

	tr.Observe(vp(0, 20, 5))
	assert.Equal(t, 0, fired, "no anchor yet")

	tr.Attach("sentinel-1")
	assert.Equal(t, 1, fired, "initial check runs once attached")
}

func TestTriggerAppendMovesSentinelAway(t *testing.T) {
	tr := New(0.01, 0)
	fired := 0
	tr.Notify(func() { fired++ })
	tr.Attach("more-after-20")

	tr.Observe(vp(11, 10, 20)) // sentinel on screen
	require.Equal(t, 1, fired)

	// A page got appended. The renderer reports the new geometry and
	// then the new anchor; the sentinel now sits far below the
	// window, so nothing fires until the user scrolls again.
	tr.Observe(vp(11, 10, 40))
	tr.Attach("more-after-40")
	assert.Equal(t, 1, fired)

	tr.Observe(vp(31, 10, 40))
	assert.Equal(t, 2, fired)
}

func TestTriggerAttachSameAnchorDoesNotRefire(t *testing.T) {
	tr := New(0.01, 0)
	fired := 0
	tr.Notify(func() { fired++ })
	tr.Attach("sentinel-1")
	tr.Observe(vp(0, 20, 5))
	require.Equal(t, 1, fired)

	tr.Attach("sentinel-1")
	assert.Equal(t, 1, fired)
}

func TestTriggerThreshold(t *testing.T) {
	// Sentinel is 4 rows tall; require half of it visible.
	tr := New(0.5, 0)
	fired := 0
	tr.Notify(func() { fired++ })
	tr.Attach("sentinel-1")

	base := Viewport{Height: 10, ContentHeight: 54, SentinelTop: 50, SentinelHeight: 4}

	one := base
	one.Top = 41 // rows 41..50: one sentinel row visible, fraction 0.25
	tr.Observe(one)
	assert.Equal(t, 0, fired)

	two := base
	two.Top = 42 // rows 42..51: two rows visible, fraction 0.5
	tr.Observe(two)
	assert.Equal(t, 1, fired)
}

func TestTriggerClose(t *testing.T) {
	tr := New(0.01, 0)
	fired := 0
	tr.Notify(func() { fired++ })
	tr.Attach("sentinel-1")
	tr.Close()

	tr.Observe(vp(41, 10, 50))
	tr.Attach("sentinel-2")
	assert.Equal(t, 0, fired)
}

func TestTriggerNoSubscriberIsSafe(t *testing.T) {
	tr := New(0.01, 0)
	tr.Attach("sentinel-1")
	tr.Observe(vp(41, 10, 50)) // must not panic
}
