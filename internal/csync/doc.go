// Package csync provides small concurrency-safe collection types.
//
// The TUI list stores its rows in a Slice so reads during render
// never race with a loader snapshot replacing the contents, and the
// preview pane caches rendered markdown per form in a Map. These
// wrappers keep that access race-free without spreading mutexes
// through callers.
package csync
