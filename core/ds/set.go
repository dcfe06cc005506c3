// Package ds provides small generic data structures used by the core packages.
package ds

import "fmt"

// Set is an ordered set: O(1) membership testing with insertion-order
// iteration. The race scope uses it to track live member ids so that
// diagnostics list members in the order they were forked.
//
// Set is not safe for concurrent use; callers hold their own lock.
type Set[T comparable] struct {
	items map[T]struct{}
	order []T
}

// NewSet creates a set containing the given values.
func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *Set[T]) String() string {
	return fmt.Sprintf("%v", s.order)
}

// Add adds v to the set. No-op if already present.
func (s *Set[T]) Add(v T) {
	if s.Contains(v) {
		return
	}
	s.items[v] = struct{}{}
	s.order = append(s.order, v)
}

// Remove removes v from the set. O(n) in the set size.
func (s *Set[T]) Remove(v T) {
	if !s.Contains(v) {
		return
	}
	delete(s.items, v)
	order := make([]T, 0, len(s.order)-1)
	for _, o := range s.order {
		if o != v {
			order = append(order, o)
		}
	}
	s.order = order
}

// Contains reports whether v is present.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return len(s.items) }

// Values returns the elements in insertion order. The returned slice is a
// copy and safe to retain.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
