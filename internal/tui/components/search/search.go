// Package search implements the search box. Every edit emits a
// TermChangedMsg with the raw text; the model forwards it to the
// loader's debouncer, so this component never decides when a query
// actually runs.
package search

import (
	"github.com/carebridge/formlist/internal/tui/components/core"
	"github.com/carebridge/formlist/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// TermChangedMsg is emitted whenever the input text changes
type TermChangedMsg struct {
	Raw string
}

// Model implements the search input component
type Model struct {
	core.FocusableBase

	value       string
	placeholder string
	cursorPos   int
	width       int
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)
var _ core.Focusable = (*Model)(nil)

// New creates a new search input
func New() *Model {
	m := &Model{
		placeholder: "Search forms by title",
	}
	m.Focus()
	return m
}

// Init implements the Component interface
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles text editing keys
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.Focused() {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	before := m.value
	keyStr := keyMsg.String()

	// Bubble Tea v2 reports space as "space" not " "
	if keyStr == "space" {
		m.value = m.value[:m.cursorPos] + " " + m.value[m.cursorPos:]
		m.cursorPos++
		return m, m.changed(before)
	}

	switch keyStr {
	case "backspace":
		if m.cursorPos > 0 {
			m.value = m.value[:m.cursorPos-1] + m.value[m.cursorPos:]
			m.cursorPos--
		}
	case "delete":
		if m.cursorPos < len(m.value) {
			m.value = m.value[:m.cursorPos] + m.value[m.cursorPos+1:]
		}
	case "left":
		if m.cursorPos > 0 {
			m.cursorPos--
		}
	case "right":
		if m.cursorPos < len(m.value) {
			m.cursorPos++
		}
	case "ctrl+a":
		m.cursorPos = 0
	case "ctrl+e":
		m.cursorPos = len(m.value)
	case "ctrl+u":
		m.value = m.value[m.cursorPos:]
		m.cursorPos = 0
	case "ctrl+k":
		m.value = m.value[:m.cursorPos]
	default:
		// Printable ASCII except space, which is handled above
		s := keyMsg.String()
		if len(s) == 1 && s[0] >= 33 && s[0] <= 126 {
			m.value = m.value[:m.cursorPos] + s + m.value[m.cursorPos:]
			m.cursorPos++
		}
	}

	return m, m.changed(before)
}

func (m *Model) changed(before string) tea.Cmd {
	if m.value == before {
		return nil
	}
	value := m.value
	return func() tea.Msg {
		return TermChangedMsg{Raw: value}
	}
}

// Value returns the current input text
func (m *Model) Value() string {
	return m.value
}

// IsEmpty reports whether the input has no text
func (m *Model) IsEmpty() bool {
	return m.value == ""
}

// Reset clears the input. The caller decides whether the cleared
// value should reach the loader.
func (m *Model) Reset() tea.Cmd {
	before := m.value
	m.value = ""
	m.cursorPos = 0
	return m.changed(before)
}

// SetSize implements the Sizeable interface
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	return nil
}

// View renders the input with a block cursor when focused
func (m *Model) View() string {
	theme := styles.CurrentTheme()

	inputStyle := lipgloss.NewStyle().
		Width(m.width - 2).
		Padding(0, 1)

	if m.value == "" && !m.Focused() {
		return inputStyle.Foreground(theme.FgSubtle).Render(m.placeholder)
	}

	display := styles.SearchIcon + " "
	if m.Focused() {
		before := m.value[:m.cursorPos]
		cursor := " "
		after := ""
		if m.cursorPos < len(m.value) {
			cursor = string(m.value[m.cursorPos])
			after = m.value[m.cursorPos+1:]
		}
		cursorStyle := lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.FgInverted)
		display += before + cursorStyle.Render(cursor) + after
	} else {
		display += m.value
	}

	return inputStyle.Render(display)
}
