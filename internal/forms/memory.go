package forms

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemorySource is an in-memory Source used by the demo binary and by
// tests. It applies the query's term as a server-side substring
// filter, honors sort order, and slices the result by the cursor.
type MemorySource struct {
	mu      sync.Mutex
	forms   []Form
	delay   time.Duration
	nextErr error
	fetches int
	closed  bool
}

// NewMemorySource creates a source over the given records.
func NewMemorySource(forms []Form) *MemorySource {
	s := &MemorySource{forms: make([]Form, len(forms))}
	copy(s.forms, forms)
	return s
}

// SetDelay makes every fetch sleep for d before returning, to
// simulate transport latency.
func (s *MemorySource) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// FailNext makes the next fetch return err instead of a page.
func (s *MemorySource) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextErr = err
}

// Fetches returns how many fetches have been issued.
func (s *MemorySource) Fetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

// Close makes all further fetches fail with ErrSourceClosed.
func (s *MemorySource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// FetchPage implements Source.
func (s *MemorySource) FetchPage(ctx context.Context, q Query) (Page, error) {
	s.mu.Lock()
	s.fetches++
	delay := s.delay
	err := s.nextErr
	s.nextErr = nil
	closed := s.closed
	matched := s.match(q)
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return Page{}, ctx.Err()
		}
	}
	if closed {
		return Page{}, ErrSourceClosed
	}
	if err != nil {
		return Page{}, err
	}

	// Size zero means "everything in one page" (eager strategy).
	if q.Cursor.Size <= 0 {
		return Page{Forms: matched, Next: q.Cursor.Next(), HasMore: false}, nil
	}

	start := q.Cursor.Page * q.Cursor.Size
	if start >= len(matched) {
		return Page{Forms: nil, Next: q.Cursor.Next(), HasMore: false}, nil
	}
	end := start + q.Cursor.Size
	if end > len(matched) {
		end = len(matched)
	}
	return Page{
		Forms:   matched[start:end],
		Next:    q.Cursor.Next(),
		HasMore: end < len(matched),
	}, nil
}

// match filters and orders the backing records for a query.
// Caller must hold s.mu.
func (s *MemorySource) match(q Query) []Form {
	out := make([]Form, 0, len(s.forms))
	term := strings.ToLower(q.Term)
	for _, f := range s.forms {
		if term != "" && !strings.Contains(strings.ToLower(f.Title), term) {
			continue
		}
		out = append(out, f)
	}

	switch q.Order {
	case OrderUpdatedAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	case OrderTitleAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case OrderUpdatedDesc, "":
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	}
	return out
}
