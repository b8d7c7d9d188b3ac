package forms

import (
	"context"
	"errors"
	"fmt"
)

// Sort orders understood by data sources.
const (
	OrderUpdatedDesc = "updated_desc"
	OrderUpdatedAsc  = "updated_asc"
	OrderTitleAsc    = "title_asc"
)

// ErrSourceClosed is returned by sources that have been shut down.
var ErrSourceClosed = errors.New("forms: source closed")

// Cursor marks a position in a paginated result. It is a page/size
// pseudo cursor: the loader owns it and only continuation advances it.
// A Size of zero asks the source for everything in one page.
type Cursor struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Next returns the cursor for the page after this one.
func (c Cursor) Next() Cursor {
	return Cursor{Page: c.Page + 1, Size: c.Size}
}

// Query identifies one page request against a source.
type Query struct {
	Subject string `json:"subject"` // patient identifier
	Context string `json:"context"` // visit/encounter identifier
	Order   string `json:"order"`
	Term    string `json:"term"` // committed search term, may be empty
	Cursor  Cursor `json:"cursor"`
}

// Page is what a source returns for a query.
type Page struct {
	Forms   []Form `json:"forms"`
	Next    Cursor `json:"next"`
	HasMore bool   `json:"has_more"`
}

// Source supplies pages of forms. Implementations decide transport;
// the loader only sees this interface.
type Source interface {
	FetchPage(ctx context.Context, q Query) (Page, error)
}

// Launcher opens a form in an external editor. Routing to the actual
// editor is outside this repository; the TUI only calls Open.
type Launcher interface {
	Open(ctx context.Context, f Form) error
}

// FetchError wraps a source failure together with the query that
// produced it, so the renderer can show what failed.
type FetchError struct {
	Query Query
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch page %d for subject %q: %v", e.Query.Cursor.Page, e.Query.Subject, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
