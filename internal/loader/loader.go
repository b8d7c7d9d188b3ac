// Package loader reconciles a paginated forms source with a debounced
// search term and a continuation signal. It owns the accumulated
// result set, the cursor, and the fetch lifecycle; the renderer only
// reads snapshots and asks to continue.
package loader

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/carebridge/formlist/internal/filter"
	"github.com/carebridge/formlist/internal/forms"
	"github.com/carebridge/formlist/internal/tui/events"
	"go.uber.org/zap"
)

const defaultPageSize = 20

// Default quiet periods before a raw term commits. Incremental
// commits cost a round trip, so they wait longer.
const (
	DefaultIncrementalDebounce = 1000 * time.Millisecond
	DefaultEagerDebounce       = 300 * time.Millisecond
)

// ErrNoSource is returned by New when no data source was given.
var ErrNoSource = errors.New("loader: no source configured")

// Options configures a Loader.
type Options struct {
	Source   forms.Source
	Strategy Strategy
	Broker   *events.Broker // optional; snapshots are published here
	Log      *zap.Logger    // optional

	Subject string
	Context string
	Order   string

	// DebounceInterval overrides the strategy's default quiet period.
	DebounceInterval time.Duration
}

// Snapshot is the read surface the renderer gets. It is a value: no
// field aliases loader-owned state.
type Snapshot struct {
	Rows         []forms.Form
	TotalLoaded  int
	Term         string
	State        State
	IsLoading    bool
	IsValidating bool
	HasMore      bool
	Err          error
}

// Loader accumulates pages from a source and coordinates search.
//
// All state transitions happen under one mutex, so a snapshot never
// shows a partially applied page. Fetches run on their own goroutine;
// each is tagged with a generation counter at issue time. The
// generation advances whenever the query resets, so a response tagged
// with an earlier generation is discarded without touching the
// result set.
type Loader struct {
	source   forms.Source
	strategy Strategy
	broker   *events.Broker
	log      *zap.Logger

	subject   string
	contextID string
	order     string

	guard     Guard
	debouncer *Debouncer

	mu         sync.Mutex
	ctx        context.Context
	rows       []forms.Form
	cursor     forms.Cursor
	state      State
	committed  string
	lastErr    error
	generation uint64

	wg sync.WaitGroup
}

// New creates a loader. It does not fetch until Start.
func New(opts Options) (*Loader, error) {
	if opts.Source == nil {
		return nil, ErrNoSource
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	l := &Loader{
		source:    opts.Source,
		strategy:  opts.Strategy,
		broker:    opts.Broker,
		log:       log,
		subject:   opts.Subject,
		contextID: opts.Context,
		order:     opts.Order,
		state:     StateIdle,
		cursor:    forms.Cursor{Size: opts.Strategy.PageSize()},
	}

	interval := opts.DebounceInterval
	if interval <= 0 {
		if opts.Strategy.IsEager() {
			interval = DefaultEagerDebounce
		} else {
			interval = DefaultIncrementalDebounce
		}
	}
	l.debouncer = NewDebouncer(interval, l.CommitTerm)

	return l, nil
}

// Start resets state and issues the first fetch.
func (l *Loader) Start(ctx context.Context) {
	l.mu.Lock()
	l.ctx = ctx
	l.mu.Unlock()
	l.initialize("")
}

// SetRawTerm feeds one keystroke's worth of search input. The term
// only takes effect once the debounce quiet period passes.
func (l *Loader) SetRawTerm(raw string) {
	l.debouncer.Input(raw)
}

// FlushTerm commits pending search input immediately.
func (l *Loader) FlushTerm() {
	l.debouncer.Flush()
}

// CommitTerm makes term the committed search term. Incremental
// loading starts the query over; eager loading just changes what the
// filter computes. Committing the current term again is a no-op.
func (l *Loader) CommitTerm(term string) {
	l.mu.Lock()
	if term == l.committed {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	if l.broker != nil {
		l.broker.Publish(events.Event{
			Type:    events.SearchCommittedEvent,
			Payload: events.SearchCommittedPayload{Term: term},
		})
	}
	l.log.Debug("term committed", zap.String("term", term))

	if l.strategy.IsEager() {
		l.mu.Lock()
		l.committed = term
		snap := l.snapshotLocked()
		l.mu.Unlock()
		l.publish(snap, false)
		return
	}

	l.initialize(term)
}

// Continue fetches the next page. It is a silent no-op while a fetch
// is in flight or after the source ran out of pages.
func (l *Loader) Continue() {
	l.mu.Lock()
	if !l.guard.Admit() {
		l.mu.Unlock()
		l.log.Debug("continuation rejected",
			zap.Bool("busy", l.guard.Busy()),
			zap.Bool("exhausted", l.guard.Exhausted()),
		)
		return
	}
	l.state = StateValidatingMore
	gen := l.generation
	q := l.queryLocked()
	l.mu.Unlock()

	l.spawnFetch(gen, q)
}

// Snapshot returns the current read surface.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Close discards pending search input and waits for any in-flight
// fetch to settle.
func (l *Loader) Close() {
	l.debouncer.Close()
	l.wg.Wait()
}

// initialize resets accumulation for a (possibly empty) term and
// issues the first fetch of the new query.
func (l *Loader) initialize(term string) {
	l.mu.Lock()
	l.guard.Reset()
	l.guard.Admit()
	l.generation++
	gen := l.generation
	l.committed = term
	l.rows = nil
	l.cursor = forms.Cursor{Page: 0, Size: l.strategy.PageSize()}
	l.state = StateLoadingInitial
	l.lastErr = nil
	q := l.queryLocked()
	l.mu.Unlock()

	l.spawnFetch(gen, q)
}

// queryLocked builds the query for the current cursor and term.
// Caller must hold l.mu.
func (l *Loader) queryLocked() forms.Query {
	return forms.Query{
		Subject: l.subject,
		Context: l.contextID,
		Order:   l.order,
		Term:    l.committed,
		Cursor:  l.cursor,
	}
}

func (l *Loader) spawnFetch(gen uint64, q forms.Query) {
	l.log.Debug("fetch issued",
		zap.Int("page", q.Cursor.Page),
		zap.String("term", q.Term),
		zap.Uint64("generation", gen),
	)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		page, err := l.source.FetchPage(l.fetchContext(), q)
		l.settle(gen, q, page, err)
	}()
}

func (l *Loader) fetchContext() context.Context {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ctx != nil {
		return l.ctx
	}
	return context.Background()
}

// settle applies a fetch result. A stale response carries the
// generation of a query that has since been reset; it is dropped
// before any state is touched, and the guard belongs to the query
// that replaced it, so it must not clear that either. The committed
// term is deliberately not compared here: an eager commit changes
// the term without resetting the query, and the in-flight initial
// load is still the result set that term will filter.
func (l *Loader) settle(gen uint64, q forms.Query, page forms.Page, err error) {
	l.mu.Lock()
	if gen != l.generation {
		l.mu.Unlock()
		l.log.Debug("stale response discarded",
			zap.String("stale_term", q.Term),
			zap.Uint64("stale_generation", gen),
		)
		return
	}

	if err != nil {
		l.state = StateErrored
		l.lastErr = &forms.FetchError{Query: q, Err: err}
		l.guard.Settle()
		snap := l.snapshotLocked()
		l.mu.Unlock()

		l.log.Error("fetch failed",
			zap.Int("page", q.Cursor.Page),
			zap.String("term", q.Term),
			zap.Error(err),
		)
		l.publish(snap, true)
		return
	}

	l.rows = append(l.rows, page.Forms...)
	l.cursor = page.Next
	l.lastErr = nil
	if page.HasMore {
		l.state = StateIdle
	} else {
		l.guard.Exhaust()
		l.state = StateExhausted
	}
	l.guard.Settle()
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.log.Debug("page merged",
		zap.Int("page", q.Cursor.Page),
		zap.Int("added", len(page.Forms)),
		zap.Int("total", snap.TotalLoaded),
		zap.Bool("has_more", snap.HasMore),
	)
	l.publish(snap, false)
}

// snapshotLocked assembles the read surface. Caller must hold l.mu.
func (l *Loader) snapshotLocked() Snapshot {
	var rows []forms.Form
	if l.strategy.IsEager() {
		rows = filter.Rank(l.rows, l.committed)
	} else {
		rows = make([]forms.Form, len(l.rows))
		copy(rows, l.rows)
	}

	return Snapshot{
		Rows:         rows,
		TotalLoaded:  len(l.rows),
		Term:         l.committed,
		State:        l.state,
		IsLoading:    l.state == StateLoadingInitial,
		IsValidating: l.state == StateValidatingMore,
		HasMore:      !l.guard.Exhausted(),
		Err:          l.lastErr,
	}
}

func (l *Loader) publish(snap Snapshot, isErr bool) {
	if l.broker == nil {
		return
	}
	l.broker.Publish(events.Event{
		Type: events.LoaderSnapshotEvent,
		Payload: events.SnapshotPayload{
			Rows:         snap.Rows,
			TotalLoaded:  snap.TotalLoaded,
			Term:         snap.Term,
			IsLoading:    snap.IsLoading,
			IsValidating: snap.IsValidating,
			HasMore:      snap.HasMore,
			Err:          snap.Err,
		},
	})
	if isErr {
		l.broker.Publish(events.Event{
			Type:    events.LoaderErrorEvent,
			Payload: events.ErrorPayload{Err: snap.Err},
		})
	}
}
