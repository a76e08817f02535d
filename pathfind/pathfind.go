// Package pathfind provides single-pair and multi-goal A* search over any
// coordinate system. Accessibility and per-edge cost come from the caller
// on every call, so one grid can serve different movement rules (walking,
// flying, wheeled) without duplication.
package pathfind

import (
	"errors"
	"slices"

	"github.com/vovakirdan/gridkit/coord"
	"github.com/vovakirdan/gridkit/internal/search"
)

// ErrNoPath reports that the frontier was exhausted without reaching any
// goal. A legitimate outcome, not a programmer error.
var ErrNoPath = errors.New("pathfind: no path exists")

// ErrSearchLimit reports that the cheapest remaining frontier entry
// exceeded the query's MaxCost ceiling.
var ErrSearchLimit = errors.New("pathfind: search limit exceeded")

// ErrNoGoals reports a query with an empty goal set.
var ErrNoGoals = errors.New("pathfind: no goals given")

// Query describes one search. Passable and Cost may be nil, meaning
// everything is passable at uniform cost 1. MinStepCost scales the
// distance heuristic and must be a lower bound on any edge cost the Cost
// function can return, or optimality is lost; zero means 1. MaxCost,
// when positive, bounds the search: the query fails with ErrSearchLimit
// once the cheapest frontier entry exceeds it.
type Query[C coord.Coord[C]] struct {
	Start       C
	Goals       []C
	Passable    func(C) bool
	Cost        func(from, to C) int
	MaxCost     int
	MinStepCost int
}

// Result is a successful search: the coordinate sequence from start to
// goal inclusive, and the exact sum of per-edge costs along it.
type Result[C coord.Coord[C]] struct {
	Path []C
	Cost int
}

// Find runs A* for the query. Among frontier entries of equal priority
// the one discovered later is expanded first, so results are fully
// deterministic for a given query. Multi-goal queries stop at the first
// goal popped, which is the nearest one because pops occur in
// non-decreasing cost order.
func Find[C coord.Coord[C]](q Query[C]) (Result[C], error) {
	if len(q.Goals) == 0 {
		return Result[C]{}, ErrNoGoals
	}

	minStep := q.MinStepCost
	if minStep <= 0 {
		minStep = 1
	}

	// A single neighbor step can span more than one unit of the metric on
	// some topologies (triangular grids reach distance 2 in one move), so
	// the heuristic divides by the largest span a step can cover.
	span := 1
	for _, n := range q.Start.Neighbors() {
		if d := q.Start.Distance(n); d > span {
			span = d
		}
	}

	goals := make(map[C]struct{}, len(q.Goals))
	for _, g := range q.Goals {
		goals[g] = struct{}{}
	}

	out := search.Run(search.Config[C]{
		Seeds:    []C{q.Start},
		Passable: q.Passable,
		Cost:     q.Cost,
		Heuristic: func(c C) int {
			h := c.Distance(q.Goals[0])
			for _, g := range q.Goals[1:] {
				if d := c.Distance(g); d < h {
					h = d
				}
			}
			return h * minStep / span
		},
		Stop: func(c C) bool {
			_, ok := goals[c]
			return ok
		},
		MaxPriority: q.MaxCost,
	})

	if out.Limited {
		return Result[C]{}, ErrSearchLimit
	}
	if !out.Found {
		return Result[C]{}, ErrNoPath
	}

	path := []C{out.Goal}
	for c := out.Goal; c != q.Start; {
		c = out.Prev[c]
		path = append(path, c)
	}
	slices.Reverse(path)

	return Result[C]{Path: path, Cost: out.Dist[out.Goal]}, nil
}
