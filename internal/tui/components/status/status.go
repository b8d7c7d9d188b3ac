// Package status implements the one-line status bar: loader state on
// the left, transient messages on the right.
package status

import (
	"fmt"
	"time"

	"github.com/carebridge/formlist/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// ParseMessageType maps the event payload's string tag to a type
func ParseMessageType(s string) MessageType {
	switch s {
	case "warning":
		return Warning
	case "error":
		return Error
	case "success":
		return Success
	default:
		return Info
	}
}

// Message is a transient status bar message
type Message struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// Component implements the status bar
type Component struct {
	message     *Message
	width       int
	leftContent string

	clearAfter time.Duration
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
	}
}

// SetMessage sets a status message with the given type
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	c.message = &Message{
		Content:   content,
		Type:      msgType,
		Timestamp: time.Now(),
	}

	stamp := c.message.Timestamp
	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

// ShowInfo shows an info message
func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

// ShowError shows an error message
func (c *Component) ShowError(message string) tea.Cmd {
	return c.SetMessage(message, Error)
}

// SetLeftContent sets the left side content (loader state summary)
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// SetSize implements the Sizeable interface
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

// Init implements the Component interface
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMessageMsg:
		// Only clear if this is for the current message
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}
	return c, nil
}

// View implements the Component interface
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	theme := styles.CurrentTheme()
	statusStyle := lipgloss.NewStyle().
		Width(c.width).
		Height(1).
		Background(theme.BgSubtle).
		Foreground(theme.FgBase).
		Padding(0, 1)

	left := c.leftContent
	right := ""
	if c.message != nil {
		right = c.formatMessage()
	}

	available := c.width - 2
	if len(left)+len(right) > available {
		if len(right) > 40 {
			right = right[:37] + "..."
		}
		remaining := available - len(right)
		if len(left) > remaining && remaining > 3 {
			left = left[:remaining-3] + "..."
		}
	}

	content := left
	if right != "" {
		spaces := available - len(left) - len(right)
		if spaces > 0 {
			content += fmt.Sprintf("%*s%s", spaces, "", right)
		} else {
			content += " " + right
		}
	}

	return statusStyle.Render(content)
}

func (c *Component) formatMessage() string {
	theme := styles.CurrentTheme()

	var icon string
	var color lipgloss.Style
	switch c.message.Type {
	case Warning:
		icon = styles.WarningIcon
		color = lipgloss.NewStyle().Foreground(theme.Warning)
	case Error:
		icon = styles.ErrorIcon
		color = lipgloss.NewStyle().Foreground(theme.Error)
	case Success:
		icon = styles.CheckIcon
		color = lipgloss.NewStyle().Foreground(theme.Success)
	default:
		icon = styles.InfoIcon
		color = lipgloss.NewStyle().Foreground(theme.Info)
	}

	return color.Render(icon + " " + c.message.Content)
}
