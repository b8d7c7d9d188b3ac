package csync

import "sync"

// Slice is a slice guarded by a RWMutex. Readers get copies; the
// backing array is never shared outside the lock.
type Slice[T any] struct {
	data []T
	mu   sync.RWMutex
}

// NewSlice creates an empty slice.
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{data: make([]T, 0)}
}

// Get returns the element at index and whether the index was valid.
func (s *Slice[T]) Get(index int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if index < 0 || index >= len(s.data) {
		return zero, false
	}
	return s.data[index], true
}

// Len returns the current length.
func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Replace swaps the contents for a copy of elems.
func (s *Slice[T]) Replace(elems []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]T, len(elems))
	copy(s.data, elems)
}
