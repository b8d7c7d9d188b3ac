package loader

// State is where the loader sits in its fetch lifecycle.
type State int

const (
	// StateIdle: constructed, or a page settled and more may follow.
	StateIdle State = iota
	// StateLoadingInitial: first fetch for the current query in flight.
	StateLoadingInitial
	// StateValidatingMore: continuation fetch in flight.
	StateValidatingMore
	// StateExhausted: the source reported no further pages.
	StateExhausted
	// StateErrored: the last fetch failed; recoverable by retrying.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoadingInitial:
		return "loading-initial"
	case StateValidatingMore:
		return "validating-more"
	case StateExhausted:
		return "exhausted"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}
