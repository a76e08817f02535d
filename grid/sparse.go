package grid

import "iter"

// Sparse is a map-backed overlay for coordinates that carry a value only
// sometimes: entity markers, decals, fog flags. It has no bounds and no
// default value; absent coordinates simply report !ok.
type Sparse[C comparable, T any] struct {
	cells map[C]T
}

// NewSparse creates an empty sparse grid.
func NewSparse[C comparable, T any]() *Sparse[C, T] {
	return &Sparse[C, T]{cells: make(map[C]T)}
}

// At returns the value stored at c and whether one exists.
func (s *Sparse[C, T]) At(c C) (T, bool) {
	v, ok := s.cells[c]
	return v, ok
}

// Set stores v at c, replacing any previous value.
func (s *Sparse[C, T]) Set(c C, v T) {
	s.cells[c] = v
}

// Remove deletes the value at c and reports whether one was present.
func (s *Sparse[C, T]) Remove(c C) bool {
	if _, ok := s.cells[c]; !ok {
		return false
	}
	delete(s.cells, c)
	return true
}

// Len returns the number of stored values.
func (s *Sparse[C, T]) Len() int {
	return len(s.cells)
}

// All returns an iterator over stored (coordinate, value) pairs in map
// order, which is unspecified.
func (s *Sparse[C, T]) All() iter.Seq2[C, T] {
	return func(yield func(C, T) bool) {
		for c, v := range s.cells {
			if !yield(c, v) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the sparse grid.
func (s *Sparse[C, T]) Clone() *Sparse[C, T] {
	cells := make(map[C]T, len(s.cells))
	for c, v := range s.cells {
		cells[c] = v
	}
	return &Sparse[C, T]{cells: cells}
}
