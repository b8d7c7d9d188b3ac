// Package tui is the component-based terminal frontend: a search box,
// the scrolling forms list with its load-more sentinel, an optional
// preview pane, and a status bar. It talks to the loader through the
// app and receives state back through the event broker.
package tui

import (
	"fmt"

	"github.com/carebridge/formlist/internal/app"
	"github.com/carebridge/formlist/internal/tui/components/list"
	"github.com/carebridge/formlist/internal/tui/components/preview"
	"github.com/carebridge/formlist/internal/tui/components/search"
	"github.com/carebridge/formlist/internal/tui/components/status"
	"github.com/carebridge/formlist/internal/tui/events"
	"github.com/carebridge/formlist/internal/tui/styles"
	"github.com/carebridge/formlist/internal/visibility"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Model represents the component-based TUI model
type Model struct {
	width  int
	height int

	// Components
	search    *search.Model
	list      *list.Model
	preview   *preview.Model
	statusBar *status.Component

	// Event system
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	// App holds all business logic
	app *app.App

	// The trigger that turns "sentinel scrolled into view" into a
	// continuation request.
	trigger *visibility.Trigger

	// UI state only
	showPreview bool
	lastErr     error
}

// New creates a new TUI model from an app instance and event broker
func New(appInstance *app.App, eventBroker *events.Broker) *Model {
	cfg := appInstance.Config.Get()
	styles.SetDefaultManager(styles.NewManager(cfg.Theme))

	m := &Model{
		search:      search.New(),
		list:        list.New(),
		preview:     preview.New(),
		statusBar:   status.New(),
		eventBroker: eventBroker,
		app:         appInstance,
		showPreview: true,
	}

	m.trigger = visibility.New(cfg.VisibilityThreshold, cfg.LookaheadMarginRows)
	m.trigger.Notify(func() {
		eventBroker.PublishAsync(events.Event{Type: events.VisibilityEnterEvent})
		appInstance.Loader.Continue()
	})

	// Subscribe to all events
	m.eventSub = eventBroker.Subscribe()

	return m
}

// Init initializes the TUI model and all components
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd

	cmds = append(cmds, m.search.Init())
	cmds = append(cmds, m.list.Init())
	cmds = append(cmds, m.preview.Init())
	cmds = append(cmds, m.statusBar.Init())

	cmds = append(cmds, m.search.Focus())

	// Start event processing
	cmds = append(cmds, m.listenForEvents())

	m.app.Start()

	return tea.Batch(cmds...)
}

// listenForEvents listens for events from the event broker
func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event := <-m.eventSub
		return event
	}
}

// Update handles all TUI updates and routes to components
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle events that come as messages
	if event, ok := msg.(events.Event); ok {
		cmd := m.handleEvent(event)
		cmds = append(cmds, cmd, m.listenForEvents())
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds = append(cmds, m.layout()...)
		m.observeList()
		return m, tea.Batch(cmds...)

	case search.TermChangedMsg:
		m.app.Loader.SetRawTerm(msg.Raw)
		return m, nil

	case tea.MouseWheelMsg:
		var listModel tea.Model
		listModel, cmd := m.list.Update(msg)
		if lm, ok := listModel.(*list.Model); ok {
			m.list = lm
		}
		m.afterNavigation()
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		case "enter":
			if m.search.Focused() && !m.search.IsEmpty() {
				// Commit the pending term right away
				m.app.Loader.FlushTerm()
				return m, nil
			}
			if f, ok := m.list.Selected(); ok {
				m.app.Launch(f)
			}
			return m, nil
		case "esc":
			if !m.search.IsEmpty() {
				return m, m.search.Reset()
			}
			return m, nil
		case "tab":
			if m.search.Focused() {
				return m, m.search.Blur()
			}
			return m, m.search.Focus()
		case "ctrl+p":
			m.showPreview = !m.showPreview
			cmds = append(cmds, m.layout()...)
			return m, tea.Batch(cmds...)
		case "ctrl+r":
			// Retry after a failed fetch
			if m.lastErr != nil {
				m.lastErr = nil
				m.app.Loader.Continue()
			}
			return m, nil
		case "ctrl+t":
			return m, m.cycleTheme()
		}

		// Navigation keys go to the list, everything else to the
		// search box when it has focus.
		var navModel tea.Model
		navModel, navCmd := m.list.Update(msg)
		if lm, ok := navModel.(*list.Model); ok {
			m.list = lm
		}
		if navCmd != nil || isNavigationKey(keyMsg.String()) {
			m.afterNavigation()
			cmds = append(cmds, navCmd)
			return m, tea.Batch(cmds...)
		}

		if m.search.Focused() {
			var searchModel tea.Model
			searchModel, cmd := m.search.Update(msg)
			if sm, ok := searchModel.(*search.Model); ok {
				m.search = sm
			}
			return m, cmd
		}
		return m, nil
	}

	// Remaining messages (ticks etc.) go to the status bar
	var statusModel tea.Model
	statusModel, cmd := m.statusBar.Update(msg)
	if sbm, ok := statusModel.(*status.Component); ok {
		m.statusBar = sbm
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func isNavigationKey(key string) bool {
	switch key {
	case "up", "down", "pgup", "pgdown", "home", "end", "ctrl+j", "ctrl+k":
		return true
	}
	return false
}

// handleEvent processes events from the event broker
func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.LoaderSnapshotEvent:
		snap, ok := event.Payload.(events.SnapshotPayload)
		if !ok {
			return nil
		}
		return m.applySnapshot(snap)

	case events.LoaderErrorEvent:
		payload, ok := event.Payload.(events.ErrorPayload)
		if !ok || payload.Err == nil {
			return nil
		}
		m.lastErr = payload.Err
		return m.statusBar.ShowError(fmt.Sprintf("%v (ctrl+r to retry)", payload.Err))

	case events.SearchCommittedEvent:
		payload, ok := event.Payload.(events.SearchCommittedPayload)
		if !ok {
			return nil
		}
		if payload.Term == "" {
			return m.statusBar.ShowInfo("showing all forms")
		}
		return m.statusBar.ShowInfo(fmt.Sprintf("searching %q", payload.Term))

	case events.FormLaunchEvent:
		payload, ok := event.Payload.(events.LaunchPayload)
		if !ok {
			return nil
		}
		return m.statusBar.ShowInfo(fmt.Sprintf("opening %s", payload.Form.Title))

	case events.StatusMessageEvent:
		payload, ok := event.Payload.(events.StatusMessagePayload)
		if !ok {
			return nil
		}
		return m.statusBar.SetMessage(payload.Message, status.ParseMessageType(payload.Type))
	}
	return nil
}

func (m *Model) applySnapshot(snap events.SnapshotPayload) tea.Cmd {
	if snap.Err == nil {
		m.lastErr = nil
	}
	m.list.SetRows(snap.Rows, snap.HasMore)
	m.statusBar.SetLeftContent(summarize(snap))
	m.syncPreview()
	m.observeList()
	return nil
}

func summarize(snap events.SnapshotPayload) string {
	var state string
	switch {
	case snap.IsLoading:
		state = styles.LoadingIcon + " loading"
	case snap.IsValidating:
		state = styles.LoadingIcon + " loading more"
	case snap.Err != nil:
		state = styles.ErrorIcon + " fetch failed"
	case snap.HasMore:
		state = "more available"
	default:
		state = "all loaded"
	}
	if snap.Term != "" {
		return fmt.Sprintf("%d forms · %q · %s", len(snap.Rows), snap.Term, state)
	}
	return fmt.Sprintf("%d forms · %s", len(snap.Rows), state)
}

// afterNavigation runs whatever has to happen once the window or
// cursor moved: preview follows the selection and the trigger sees
// the new geometry.
func (m *Model) afterNavigation() {
	m.syncPreview()
	m.observeList()
}

func (m *Model) syncPreview() {
	if f, ok := m.list.Selected(); ok {
		m.preview.SetForm(f)
	} else {
		m.preview.Clear()
	}
}

// observeList reports the list's viewport to the visibility trigger.
// Geometry goes first so that when the anchor identity changed (a
// page was appended and the sentinel moved), Attach's initial check
// sees the new render, not where the old sentinel was. Attach is a
// no-op while the identity is unchanged, so this is safe to call
// after every scroll and re-render.
func (m *Model) observeList() {
	m.trigger.Observe(m.list.Viewport())
	if id := m.list.SentinelID(); id != "" {
		m.trigger.Attach(id)
	}
}

// cycleTheme switches to the next registered theme and persists the
// choice in the config file.
func (m *Model) cycleTheme() tea.Cmd {
	name := "ink"
	if styles.CurrentTheme().Name == "ink" {
		name = "clinic"
	}
	if err := styles.DefaultManager().SetTheme(name); err != nil {
		return m.statusBar.ShowError(err.Error())
	}
	if err := m.app.Config.Set("theme", name); err != nil {
		return m.statusBar.ShowError(err.Error())
	}
	return m.statusBar.ShowInfo("theme: " + name)
}

// layout recomputes component sizes from the window size
func (m *Model) layout() []tea.Cmd {
	const statusHeight = 1
	const searchHeight = 3 // bordered single line

	previewWidth := 0
	if m.showPreview && m.width >= 80 {
		previewWidth = m.width / 3
	}
	listWidth := m.width - previewWidth
	listHeight := m.height - statusHeight - searchHeight - 2 // list border

	var cmds []tea.Cmd
	cmds = append(cmds, m.search.SetSize(m.width-2, 1))
	cmds = append(cmds, m.list.SetSize(listWidth-2, listHeight))
	cmds = append(cmds, m.preview.SetSize(previewWidth, listHeight))
	cmds = append(cmds, m.statusBar.SetSize(m.width, statusHeight))
	return cmds
}

// View renders the entire TUI
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("Loading…")
	}

	theme := styles.CurrentTheme()

	const statusHeight = 1
	const searchHeight = 3

	previewWidth := 0
	if m.showPreview && m.width >= 80 {
		previewWidth = m.width / 3
	}
	listWidth := m.width - previewWidth
	bodyHeight := m.height - statusHeight - searchHeight

	searchBorder := theme.S().Input
	if m.search.Focused() {
		searchBorder = theme.S().InputFocused
	}
	searchView := searchBorder.Width(m.width - 2).Render(m.search.View())

	listStyle := theme.S().BorderFocused.
		Width(listWidth - 2).
		Height(bodyHeight - 2)
	if m.search.Focused() {
		listStyle = theme.S().Border.
			Width(listWidth - 2).
			Height(bodyHeight - 2)
	}
	listView := listStyle.Render(m.list.View())

	body := listView
	if previewWidth > 0 {
		previewView := theme.S().Border.
			Width(previewWidth - 2).
			Height(bodyHeight - 2).
			Render(m.preview.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, listView, previewView)
	}

	statusView := m.statusBar.View()

	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, searchView, body, statusView))
}

// Close releases the model's event resources.
func (m *Model) Close() {
	m.trigger.Close()
	m.eventBroker.Unsubscribe(m.eventSub)
}
