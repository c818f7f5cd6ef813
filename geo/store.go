package geo

import "slices"

// Store is the chart-owned collection of every geometry in play.
// Iteration order is insertion order. Geometries are tracked by pointer
// identity: adding the same pointer twice keeps one entry.
//
// The store belongs to the chart goroutine; it is not safe for
// concurrent use.
type Store struct {
	items []Geometry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add registers a geometry. Nil geometries and duplicates are ignored.
func (s *Store) Add(g Geometry) {
	if g == nil {
		return
	}
	if slices.Contains(s.items, g) {
		return
	}
	s.items = append(s.items, g)
}

// Remove unregisters a geometry. Removing an absent geometry is a no-op.
func (s *Store) Remove(g Geometry) {
	for i, have := range s.items {
		if have == g {
			s.items = slices.Delete(s.items, i, i+1)
			return
		}
	}
}

// Contains reports whether the geometry is registered.
func (s *Store) Contains(g Geometry) bool {
	return slices.Contains(s.items, g)
}

// All returns the geometries in insertion order. The slice is owned by
// the store; callers must not mutate it.
func (s *Store) All() []Geometry {
	return s.items
}

// Len returns the number of registered geometries.
func (s *Store) Len() int {
	return len(s.items)
}
