package list

import (
	"fmt"
	"testing"

	"github.com/carebridge/formlist/internal/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeForms(n int) []forms.Form {
	out := make([]forms.Form, n)
	for i := range out {
		out[i] = forms.Form{
			ID:    fmt.Sprintf("f-%02d", i),
			Title: fmt.Sprintf("Form %02d", i),
		}
	}
	return out
}

func TestViewportTracksScroll(t *testing.T) {
	m := New()
	m.SetSize(80, 10)
	m.SetRows(makeForms(30), true)

	vp := m.Viewport()
	assert.Equal(t, 0, vp.Top)
	assert.Equal(t, 10, vp.Height)
	assert.Equal(t, 31, vp.ContentHeight, "sentinel adds one content row")
	assert.Equal(t, 30, vp.SentinelTop)
	assert.Equal(t, 1, vp.SentinelHeight)

	m.Scroll(15)
	assert.Equal(t, 15, m.Viewport().Top)

	// Cannot scroll past the sentinel
	m.Scroll(100)
	assert.Equal(t, 21, m.Viewport().Top)
}

func TestViewportWithoutSentinel(t *testing.T) {
	m := New()
	m.SetSize(80, 10)
	m.SetRows(makeForms(5), false)

	vp := m.Viewport()
	assert.Equal(t, 5, vp.ContentHeight)
	assert.Equal(t, 0, vp.SentinelHeight)
	assert.Empty(t, m.SentinelID())
}

func TestSentinelIdentityChangesPerPage(t *testing.T) {
	m := New()
	m.SetSize(80, 10)

	m.SetRows(makeForms(20), true)
	first := m.SentinelID()
	require.NotEmpty(t, first)

	m.SetRows(makeForms(40), true)
	second := m.SentinelID()
	require.NotEmpty(t, second)
	assert.NotEqual(t, first, second)

	m.SetRows(makeForms(47), false)
	assert.Empty(t, m.SentinelID())
}

func TestCursorStaysInWindow(t *testing.T) {
	m := New()
	m.SetSize(80, 5)
	m.SetRows(makeForms(20), false)

	m.MoveDown(7)
	f, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "f-07", f.ID)
	vp := m.Viewport()
	assert.LessOrEqual(t, vp.Top, 7)
	assert.Greater(t, vp.Top+vp.Height, 7)

	m.MoveUp(100)
	f, _ = m.Selected()
	assert.Equal(t, "f-00", f.ID)
	assert.Equal(t, 0, m.Viewport().Top)
}

func TestGoToBottomShowsSentinel(t *testing.T) {
	m := New()
	m.SetSize(80, 10)
	m.SetRows(makeForms(25), true)

	m.GoToBottom()
	f, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "f-24", f.ID)

	vp := m.Viewport()
	assert.Equal(t, 26-10, vp.Top, "window ends at the sentinel row")
}

func TestSetRowsKeepsSelectionByID(t *testing.T) {
	m := New()
	m.SetSize(80, 10)
	rows := makeForms(10)
	m.SetRows(rows, true)
	m.MoveDown(4)

	// Same rows plus an appended page
	m.SetRows(makeForms(20), true)
	f, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "f-04", f.ID)

	// Selected form gone after a new query
	m.SetRows(makeForms(2), false)
	f, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, "f-00", f.ID)
}

func TestEmptyList(t *testing.T) {
	m := New()
	m.SetSize(80, 10)
	m.SetRows(nil, false)

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No forms match")
}
