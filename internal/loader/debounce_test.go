package loader

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// termRecorder captures debouncer emissions.
type termRecorder struct {
	mu    sync.Mutex
	terms []string
}

func (r *termRecorder) record(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = append(r.terms, term)
}

func (r *termRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.terms))
	copy(out, r.terms)
	return out
}

func TestDebouncerCoalescesRapidInput(t *testing.T) {
	rec := &termRecorder{}
	d := NewDebouncer(40*time.Millisecond, rec.record)
	defer d.Close()

	for _, raw := range []string{"w", "wo", "wou", "woun", "wound"} {
		d.Input(raw)
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return len(rec.all()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"wound"}, rec.all(), "only the last raw value commits")

	// And it stays at one: no delayed duplicate.
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, rec.all(), 1)
}

func TestDebouncerSeparateQuietPeriods(t *testing.T) {
	rec := &termRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)
	defer d.Close()

	d.Input("first")
	require.Eventually(t, func() bool { return len(rec.all()) == 1 }, time.Second, time.Millisecond)

	d.Input("second")
	require.Eventually(t, func() bool { return len(rec.all()) == 2 }, time.Second, time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.all())
}

func TestDebouncerCloseDiscardsPending(t *testing.T) {
	rec := &termRecorder{}
	d := NewDebouncer(30*time.Millisecond, rec.record)

	d.Input("doomed")
	require.True(t, d.Pending())
	d.Close()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.all(), "no emission after teardown")
	assert.False(t, d.Pending())

	// Input after Close is ignored too.
	d.Input("late")
	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.all())
}

func TestDebouncerFlushEmitsImmediately(t *testing.T) {
	rec := &termRecorder{}
	d := NewDebouncer(time.Hour, rec.record)
	defer d.Close()

	d.Input("falls")
	d.Flush()

	assert.Equal(t, []string{"falls"}, rec.all())
	assert.False(t, d.Pending())

	// Flush with nothing pending is a no-op.
	d.Flush()
	assert.Len(t, rec.all(), 1)
}
