// Package filter ranks accumulated form rows against a committed
// search term. Matching and scoring are delegated to the fuzzy
// library; this package only fixes the contract the loader relies on:
// an empty term is the identity, and output is ordered strongest
// match first.
package filter

import (
	"github.com/carebridge/formlist/internal/forms"
	"github.com/sahilm/fuzzy"
)

// titles adapts a form slice to fuzzy.Source.
type titles []forms.Form

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

// Rank filters rows by term. An empty term returns the rows unchanged
// in accumulation order. Otherwise only rows whose title matches are
// returned, best match first; rows without a match are dropped.
func Rank(rows []forms.Form, term string) []forms.Form {
	if term == "" {
		out := make([]forms.Form, len(rows))
		copy(out, rows)
		return out
	}

	matches := fuzzy.FindFrom(term, titles(rows))
	out := make([]forms.Form, 0, len(matches))
	for _, m := range matches {
		out = append(out, rows[m.Index])
	}
	return out
}
