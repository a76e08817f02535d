// Package flowfield computes Dijkstra integration fields toward one or
// more goal cells, plus the per-cell steepest-descent direction that
// makes many-agent movement an O(1) lookup per agent per tick. Building
// the field costs a full-grid pass; querying it costs nothing, which is
// the trade the whole structure exists for.
package flowfield

import (
	"iter"

	"github.com/vovakirdan/gridkit/coord"
	"github.com/vovakirdan/gridkit/grid"
	"github.com/vovakirdan/gridkit/internal/search"
	"github.com/vovakirdan/gridkit/pathfind"
)

// Unreachable is the integration cost stored for cells no goal can
// reach.
const Unreachable = 1<<30 - 1

// Direction sentinels stored alongside the neighbor-order index.
const (
	dirNone int8 = -1 // unreachable, no outgoing direction
	dirGoal int8 = -2 // goal cell, integration cost zero
)

// cell is one integration result: cost to the nearest goal and the
// index into Neighbors() of the strictly cheaper neighbor to move to.
type cell struct {
	cost int
	next int8
}

// Field is a computed flow field over fixed grid bounds. Following
// DirectionAt from any reachable cell strictly decreases the
// integration cost each step until a goal is reached.
type Field[C coord.Coord[C]] struct {
	cells *grid.Grid[C, cell]
	goals []C
	valid bool
}

// Build integrates a flow field over the bounds of g toward goals.
// Passability and per-edge cost follow the pathfinder's contract: cost
// is charged for the edge an agent would traverse, from its cell toward
// the goal. Nil predicates mean fully passable at uniform cost 1.
func Build[C coord.Coord[C], T any](g *grid.Grid[C, T], goals []C, passable func(C) bool, cost func(from, to C) int) (*Field[C], error) {
	min, w, h := g.Bounds()
	cells, err := grid.New(min, w, h, cell{})
	if err != nil {
		return nil, err
	}
	f := &Field[C]{cells: cells}
	if err := f.rebuild(goals, passable, cost); err != nil {
		return nil, err
	}
	return f, nil
}

// Rebuild recomputes the field in place for a changed world or a new
// goal set, reusing the existing allocation.
func (f *Field[C]) Rebuild(goals []C, passable func(C) bool, cost func(from, to C) int) error {
	return f.rebuild(goals, passable, cost)
}

func (f *Field[C]) rebuild(goals []C, passable func(C) bool, cost func(from, to C) int) error {
	if len(goals) == 0 {
		return pathfind.ErrNoGoals
	}

	inBounds := func(c C) bool {
		if !f.cells.Contains(c) {
			return false
		}
		return passable == nil || passable(c)
	}

	// The expansion runs goal-outward, so the edge it relaxes is the
	// reverse of the one an agent walks; flip the cost arguments to keep
	// the caller's (from, to) orientation.
	var edgeCost func(C, C) int
	if cost != nil {
		edgeCost = func(a, b C) int { return cost(b, a) }
	}

	out := search.Run(search.Config[C]{
		Seeds:    goals,
		Passable: inBounds,
		Cost:     edgeCost,
	})

	// Integration pass: record settled costs, mark the rest unreachable.
	f.cells.Update(func(c C, _ cell) cell {
		if d, ok := out.Dist[c]; ok {
			return cell{cost: d, next: dirNone}
		}
		return cell{cost: Unreachable, next: dirNone}
	})

	// Direction pass: each reachable cell points at its strictly
	// cheapest neighbor, ties resolved by the lowest neighbor index.
	f.cells.Update(func(c C, cur cell) cell {
		if cur.cost == Unreachable {
			return cur
		}
		if cur.cost == 0 {
			cur.next = dirGoal
			return cur
		}
		best := cur.cost
		for i, n := range c.Neighbors() {
			d, ok := out.Dist[n]
			if ok && d < best {
				best = d
				cur.next = int8(i)
			}
		}
		return cur
	})

	f.goals = append(f.goals[:0], goals...)
	f.valid = true
	return nil
}

// Goals returns the goal set the field was built toward.
func (f *Field[C]) Goals() []C {
	return f.goals
}

// Valid reports whether the field still reflects the world it was built
// from; MarkDirty clears it.
func (f *Field[C]) Valid() bool {
	return f.valid
}

// MarkDirty records that a world edit touched c. The field stays
// queryable but reports !Valid until rebuilt; edits outside its bounds
// are ignored.
func (f *Field[C]) MarkDirty(c C) {
	if f.cells.Contains(c) {
		f.valid = false
	}
}

// CostAt returns the integration cost at c. ok is false outside the
// field bounds and on unreachable cells.
func (f *Field[C]) CostAt(c C) (int, bool) {
	v, err := f.cells.At(c)
	if err != nil || v.cost == Unreachable {
		return Unreachable, false
	}
	return v.cost, true
}

// IsGoal reports whether c is one of the field's goal cells.
func (f *Field[C]) IsGoal(c C) bool {
	v, err := f.cells.At(c)
	return err == nil && v.next == dirGoal
}

// DirectionAt returns the next coordinate an agent at c should move to.
// ok is false at goals, on unreachable cells, and outside the bounds.
func (f *Field[C]) DirectionAt(c C) (C, bool) {
	v, err := f.cells.At(c)
	if err != nil || v.next < 0 {
		var zero C
		return zero, false
	}
	return c.Neighbors()[v.next], true
}

// All returns a row-major iterator over every cell's integration cost,
// for render and debug layers. Unreachable cells yield Unreachable.
func (f *Field[C]) All() iter.Seq2[C, int] {
	return func(yield func(C, int) bool) {
		for c, v := range f.cells.All() {
			if !yield(c, v.cost) {
				return
			}
		}
	}
}
