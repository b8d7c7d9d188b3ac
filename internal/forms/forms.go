// Package forms defines the clinical form records the list browser
// works with and the contract of the paginated data source that
// supplies them.
package forms

import "time"

// Status describes where a form is in its lifecycle.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusWithdrawn  Status = "withdrawn"
)

// Form is a single clinical form record. The loader treats it as
// opaque beyond ID (identity) and Title (the display label that
// search matches against); the remaining fields exist for the
// renderer.
type Form struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	Section   string    `json:"section"`
	Provider  string    `json:"provider"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdatedDisplay formats the last-updated timestamp for the row view.
func (f Form) UpdatedDisplay() string {
	if f.UpdatedAt.IsZero() {
		return "—"
	}
	return f.UpdatedAt.Format("02-Jan-2006")
}

// InProgress reports whether the form can still be edited.
func (f Form) InProgress() bool {
	return f.Status == StatusDraft || f.Status == StatusInProgress
}
