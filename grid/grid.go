// Package grid provides dense and sparse storage keyed by a coordinate
// type. A Grid is a rectangle of cells in component space with O(1)
// bounds-checked access; out-of-bounds reads and writes return an error
// instead of panicking or wrapping around.
package grid

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vovakirdan/gridkit/coord"
)

// ErrOutOfBounds reports an access outside the grid's declared bounds.
var ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

// ErrInvalidBounds reports a grid constructed with a non-positive width
// or height.
var ErrInvalidBounds = errors.New("grid: invalid bounds")

// Grid is a dense container mapping every coordinate within its bounds to
// a value of type T. Bounds are fixed at construction: a minimum corner
// plus a width and height in component space. Negative minima are fine;
// indexing is offset, not absolute.
type Grid[C coord.Coord[C], T any] struct {
	min   C
	w, h  int
	cells []T
}

// New creates a grid covering width x height cells starting at min, with
// every cell set to fill.
func New[C coord.Coord[C], T any](min C, width, height int, fill T) (*Grid[C, T], error) {
	g, err := alloc[C, T](min, width, height)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g, nil
}

// NewFunc creates a grid whose cells are produced by init, evaluated
// exactly once per coordinate in row-major order.
func NewFunc[C coord.Coord[C], T any](min C, width, height int, init func(C) T) (*Grid[C, T], error) {
	g, err := alloc[C, T](min, width, height)
	if err != nil {
		return nil, err
	}
	i := 0
	for b := 0; b < height; b++ {
		for a := 0; a < width; a++ {
			g.cells[i] = init(min.Shift(a, b))
			i++
		}
	}
	return g, nil
}

func alloc[C coord.Coord[C], T any](min C, width, height int) (*Grid[C, T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, width, height)
	}
	return &Grid[C, T]{
		min:   min,
		w:     width,
		h:     height,
		cells: make([]T, width*height),
	}, nil
}

// index returns the flat offset of c, or false when c is out of bounds.
func (g *Grid[C, T]) index(c C) (int, bool) {
	minA, minB := g.min.Unpack()
	a, b := c.Unpack()
	a -= minA
	b -= minB
	if a < 0 || a >= g.w || b < 0 || b >= g.h {
		return 0, false
	}
	return b*g.w + a, true
}

// Contains reports whether c lies within the grid bounds.
func (g *Grid[C, T]) Contains(c C) bool {
	_, ok := g.index(c)
	return ok
}

// At returns the value stored at c.
func (g *Grid[C, T]) At(c C) (T, error) {
	i, ok := g.index(c)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return g.cells[i], nil
}

// Set stores v at c.
func (g *Grid[C, T]) Set(c C, v T) error {
	i, ok := g.index(c)
	if !ok {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[i] = v
	return nil
}

// Fill overwrites every cell with v.
func (g *Grid[C, T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Update replaces every cell with f applied to its coordinate and current
// value, in row-major order.
func (g *Grid[C, T]) Update(f func(C, T) T) {
	i := 0
	for b := 0; b < g.h; b++ {
		for a := 0; a < g.w; a++ {
			g.cells[i] = f(g.min.Shift(a, b), g.cells[i])
			i++
		}
	}
}

// All returns a restartable row-major iterator over (coordinate, value)
// pairs.
func (g *Grid[C, T]) All() iter.Seq2[C, T] {
	return func(yield func(C, T) bool) {
		i := 0
		for b := 0; b < g.h; b++ {
			for a := 0; a < g.w; a++ {
				if !yield(g.min.Shift(a, b), g.cells[i]) {
					return
				}
				i++
			}
		}
	}
}

// Len returns the number of cells.
func (g *Grid[C, T]) Len() int {
	return g.w * g.h
}

// Bounds returns the minimum corner and the width and height.
func (g *Grid[C, T]) Bounds() (min C, width, height int) {
	return g.min, g.w, g.h
}

// Clone returns an independent copy of the grid. Cell values are copied
// shallowly.
func (g *Grid[C, T]) Clone() *Grid[C, T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[C, T]{min: g.min, w: g.w, h: g.h, cells: cells}
}
