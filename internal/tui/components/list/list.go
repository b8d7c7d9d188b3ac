// Package list renders the scrolling table of forms. The last row is
// a sentinel ("loading more…") whenever the source has more pages;
// the model feeds this component's Viewport to the visibility trigger
// after every scroll, resize, or content change.
package list

import (
	"fmt"
	"strings"

	"github.com/carebridge/formlist/internal/csync"
	"github.com/carebridge/formlist/internal/forms"
	"github.com/carebridge/formlist/internal/tui/components/core"
	"github.com/carebridge/formlist/internal/tui/styles"
	"github.com/carebridge/formlist/internal/visibility"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Model implements the forms list component
type Model struct {
	core.FocusableBase

	width  int
	height int

	rows     *csync.Slice[forms.Form]
	hasMore  bool
	selected int // index into rows
	offset   int // first visible content row

	keyMap KeyMap
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)

// New creates an empty forms list
func New() *Model {
	return &Model{
		rows:   csync.NewSlice[forms.Form](),
		keyMap: DefaultKeyMap(),
	}
}

// Init implements the Component interface
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation input
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keyMap.Down):
			return m, m.MoveDown(1)
		case key.Matches(msg, m.keyMap.Up):
			return m, m.MoveUp(1)
		case key.Matches(msg, m.keyMap.PageDown):
			return m, m.MoveDown(max(1, m.height-1))
		case key.Matches(msg, m.keyMap.PageUp):
			return m, m.MoveUp(max(1, m.height-1))
		case key.Matches(msg, m.keyMap.End):
			return m, m.GoToBottom()
		case key.Matches(msg, m.keyMap.Home):
			return m, m.GoToTop()
		}
	}
	return m, nil
}

func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Button {
	case tea.MouseWheelDown:
		cmd = m.Scroll(2)
	case tea.MouseWheelUp:
		cmd = m.Scroll(-2)
	}
	return m, cmd
}

// SetSize implements the Sizeable interface
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	m.clamp()
	return nil
}

// SetRows replaces the list content. Selection is kept on the same
// form when it survives the change, otherwise clamped.
func (m *Model) SetRows(rows []forms.Form, hasMore bool) tea.Cmd {
	var selectedID string
	if f, ok := m.Selected(); ok {
		selectedID = f.ID
	}

	m.rows.Replace(rows)
	m.hasMore = hasMore

	if selectedID != "" {
		m.selected = 0
		for i, f := range rows {
			if f.ID == selectedID {
				m.selected = i
				break
			}
		}
	}
	m.clamp()
	return nil
}

// Len returns the number of loaded rows (the sentinel not included).
func (m *Model) Len() int {
	return m.rows.Len()
}

// Selected returns the form under the cursor
func (m *Model) Selected() (forms.Form, bool) {
	return m.rows.Get(m.selected)
}

// MoveDown moves the cursor down by n rows
func (m *Model) MoveDown(n int) tea.Cmd {
	m.selected += n
	m.clamp()
	m.ensureVisible()
	return nil
}

// MoveUp moves the cursor up by n rows
func (m *Model) MoveUp(n int) tea.Cmd {
	m.selected -= n
	m.clamp()
	m.ensureVisible()
	return nil
}

// GoToTop moves the cursor to the first row
func (m *Model) GoToTop() tea.Cmd {
	m.selected = 0
	m.offset = 0
	return nil
}

// GoToBottom moves the cursor to the last loaded row, scrolling far
// enough that the sentinel (when present) is in view.
func (m *Model) GoToBottom() tea.Cmd {
	m.selected = m.rows.Len() - 1
	m.offset = m.contentHeight() - m.height
	m.clamp()
	return nil
}

// Scroll moves the window without moving the cursor. The window may
// run past the last row to expose the sentinel.
func (m *Model) Scroll(n int) tea.Cmd {
	m.offset += n
	m.clamp()
	return nil
}

// Viewport reports the current window geometry for the visibility
// trigger. The sentinel occupies one content row past the loaded
// rows while more pages remain.
func (m *Model) Viewport() visibility.Viewport {
	vp := visibility.Viewport{
		Top:           m.offset,
		Height:        m.height,
		ContentHeight: m.contentHeight(),
	}
	if m.hasMore {
		vp.SentinelTop = m.rows.Len()
		vp.SentinelHeight = 1
	}
	return vp
}

// SentinelID identifies the current sentinel. The identity changes
// whenever the loaded row count does, so the trigger re-arms after
// each appended page. Empty means no sentinel.
func (m *Model) SentinelID() string {
	if !m.hasMore {
		return ""
	}
	return fmt.Sprintf("more-after-%d", m.rows.Len())
}

func (m *Model) contentHeight() int {
	h := m.rows.Len()
	if m.hasMore {
		h++
	}
	return h
}

func (m *Model) clamp() {
	if m.selected > m.rows.Len()-1 {
		m.selected = m.rows.Len() - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	maxOffset := m.contentHeight() - m.height
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) ensureVisible() {
	if m.height <= 0 {
		return
	}
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.height {
		m.offset = m.selected - m.height + 1
	}
}

// View implements the Component interface
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	theme := styles.CurrentTheme()
	s := theme.S()

	if m.rows.Len() == 0 && !m.hasMore {
		return s.Muted.Render("No forms match.")
	}

	lines := make([]string, 0, m.height)
	for row := m.offset; row < m.offset+m.height && row < m.contentHeight(); row++ {
		if row == m.rows.Len() {
			lines = append(lines, s.SentinelRow.Render(styles.SentinelIcon+" loading more"))
			continue
		}
		f, ok := m.rows.Get(row)
		if !ok {
			continue
		}
		lines = append(lines, m.renderRow(f, row == m.selected))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(f forms.Form, selected bool) string {
	theme := styles.CurrentTheme()
	s := theme.S()

	marker := "  "
	if selected {
		marker = styles.SelectIcon + " "
	}

	line := fmt.Sprintf("%s%s %s", marker, statusIcon(f.Status), f.Title)
	meta := fmt.Sprintf("%s · %s", f.Section, f.UpdatedDisplay())

	gap := m.width - lipgloss.Width(line) - lipgloss.Width(meta) - 1
	if gap > 0 {
		line += strings.Repeat(" ", gap) + meta
	}
	line = truncate(line, m.width)

	if selected {
		return s.SelectedRow.Render(line)
	}
	return s.Text.Render(line)
}

func statusIcon(status forms.Status) string {
	switch status {
	case forms.StatusDraft:
		return styles.DraftIcon
	case forms.StatusInProgress:
		return styles.InProgressIcon
	case forms.StatusCompleted:
		return styles.CompletedIcon
	case forms.StatusWithdrawn:
		return styles.WithdrawnIcon
	default:
		return " "
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width < 1 || len(runes) < width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
