package events

import "github.com/carebridge/formlist/internal/forms"

// EventType identifies the type of event
type EventType string

const (
	// Search events
	SearchCommittedEvent EventType = "search.committed"

	// Loader events
	LoaderSnapshotEvent EventType = "loader.snapshot"
	LoaderErrorEvent    EventType = "loader.error"

	// Visibility events
	VisibilityEnterEvent EventType = "visibility.enter"

	// Form events
	FormLaunchEvent EventType = "form.launch"

	// UI events
	StatusMessageEvent EventType = "ui.status"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload interface{}
}

// Event payload types

// SearchCommittedPayload carries a term that survived the debounce
// quiet period.
type SearchCommittedPayload struct {
	Term string
}

// SnapshotPayload mirrors the loader's published state so the TUI can
// render without reaching into the loader.
type SnapshotPayload struct {
	Rows         []forms.Form
	TotalLoaded  int
	Term         string
	IsLoading    bool
	IsValidating bool
	HasMore      bool
	Err          error
}

// ErrorPayload carries a fetch failure surfaced to the renderer.
type ErrorPayload struct {
	Err error
}

// LaunchPayload asks the app to open a form in the external editor.
type LaunchPayload struct {
	Form forms.Form
}

// StatusMessagePayload shows a transient message in the status bar.
type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}
