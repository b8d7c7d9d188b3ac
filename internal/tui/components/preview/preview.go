// Package preview renders a detail pane for the selected form.
package preview

import (
	"fmt"
	"strings"

	"github.com/carebridge/formlist/internal/csync"
	"github.com/carebridge/formlist/internal/forms"
	"github.com/carebridge/formlist/internal/tui/components/core"
	"github.com/carebridge/formlist/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour/v2"
)

// Model implements the form detail pane
type Model struct {
	width  int
	height int

	form *forms.Form

	// Rendered markdown per form ID; markdown rendering is the
	// expensive part of drawing this pane.
	rendered *csync.Map[string, string]
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)

// New creates an empty preview pane
func New() *Model {
	return &Model{
		rendered: csync.NewMap[string, string](),
	}
}

// Init implements the Component interface
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// SetForm sets the form shown in the pane
func (m *Model) SetForm(f forms.Form) tea.Cmd {
	if m.form != nil && m.form.ID == f.ID {
		return nil
	}
	m.form = &f
	return nil
}

// Clear empties the pane
func (m *Model) Clear() {
	m.form = nil
}

// SetSize implements the Sizeable interface
func (m *Model) SetSize(width, height int) tea.Cmd {
	if width != m.width {
		m.rendered.Clear()
	}
	m.width = width
	m.height = height
	return nil
}

// View implements the Component interface
func (m *Model) View() string {
	if m.width <= 0 {
		return ""
	}
	if m.form == nil {
		return styles.CurrentTheme().S().Muted.Render("Select a form to preview it.")
	}
	if view, ok := m.rendered.Get(m.form.ID); ok {
		return view
	}
	view := renderMarkdown(m.markdown(), m.width-2)
	m.rendered.Set(m.form.ID, view)
	return view
}

func (m *Model) markdown() string {
	f := m.form
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", f.Title)
	fmt.Fprintf(&b, "- **Status:** %s\n", f.Status)
	fmt.Fprintf(&b, "- **Section:** %s\n", f.Section)
	fmt.Fprintf(&b, "- **Provider:** %s\n", f.Provider)
	fmt.Fprintf(&b, "- **Updated:** %s\n", f.UpdatedDisplay())
	if f.InProgress() {
		b.WriteString("\n> Press enter to open this form in the editor.\n")
	} else {
		b.WriteString("\n> This form is read-only.\n")
	}
	return b.String()
}

// renderMarkdown converts markdown to styled terminal output
func renderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dracula"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSuffix(rendered, "\n")
}
