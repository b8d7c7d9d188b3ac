package loader

// Strategy selects how the loader talks to its source, fixed once at
// construction. Eager pulls the whole result in one fetch and filters
// locally on each committed term; Incremental pages on demand and
// hands the committed term to the source.
type Strategy struct {
	eager    bool
	pageSize int
}

// Eager is the load-everything strategy (client-side filtering).
func Eager() Strategy {
	return Strategy{eager: true}
}

// Incremental is the page-on-demand strategy (server-side filtering).
func Incremental(pageSize int) Strategy {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return Strategy{pageSize: pageSize}
}

// IsEager reports whether this is the load-everything strategy.
func (s Strategy) IsEager() bool {
	return s.eager
}

// PageSize returns the page length for incremental loading; zero for
// eager, which asks the source for everything at once.
func (s Strategy) PageSize() int {
	if s.eager {
		return 0
	}
	return s.pageSize
}

func (s Strategy) String() string {
	if s.eager {
		return "eager"
	}
	return "incremental"
}
