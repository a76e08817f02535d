// Package search holds the cost-propagation core shared by pathfinding
// and flow-field integration. Both are the same loop — pop the cheapest
// frontier entry, relax its neighbors, record how each cell was reached —
// and differ only in seeding, heuristic, and stopping condition, so the
// loop lives here exactly once.
package search

import (
	"github.com/zyedidia/generic/heap"

	"github.com/vovakirdan/gridkit/coord"
)

// entry is one frontier element. order is a push counter used to break
// priority ties toward the later push (LIFO), which keeps expansions
// deterministic for a fixed neighbor order.
type entry[C any] struct {
	coord    C
	priority int
	order    int
}

// Config drives one expansion. Cost is charged per directed edge
// (from, to); Heuristic, when set, is added to cost-so-far for frontier
// ordering (A*). Stop, when set, ends the search at the first pop it
// accepts. MaxPriority, when positive, abandons the search once the
// cheapest frontier entry exceeds it.
type Config[C coord.Coord[C]] struct {
	Seeds       []C
	Passable    func(C) bool
	Cost        func(from, to C) int
	Heuristic   func(C) int
	Stop        func(C) bool
	MaxPriority int
}

// Outcome reports what an expansion reached. Dist holds the settled
// cost-so-far per visited coordinate; Prev holds each settled
// coordinate's predecessor (seeds have none). When Stop accepted a pop,
// Found is true and Goal is that coordinate. Limited is true when the
// search hit MaxPriority first.
type Outcome[C comparable] struct {
	Dist    map[C]int
	Prev    map[C]C
	Goal    C
	Found   bool
	Limited bool
}

// Run performs the expansion described by cfg. With no Heuristic and no
// Stop it is a multi-source Dijkstra that settles every reachable cell;
// with both it is A* to the first accepted goal. Stale frontier entries
// (superseded by a cheaper relaxation) are skipped on pop.
func Run[C coord.Coord[C]](cfg Config[C]) Outcome[C] {
	out := Outcome[C]{
		Dist: make(map[C]int),
		Prev: make(map[C]C),
	}

	frontier := heap.New(func(a, b entry[C]) bool {
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.order > b.order
	})

	best := make(map[C]int)
	order := 0
	push := func(c C, dist int) {
		priority := dist
		if cfg.Heuristic != nil {
			priority += cfg.Heuristic(c)
		}
		frontier.Push(entry[C]{coord: c, priority: priority, order: order})
		order++
	}

	for _, s := range cfg.Seeds {
		if cfg.Passable != nil && !cfg.Passable(s) {
			continue
		}
		if _, ok := best[s]; !ok {
			best[s] = 0
			push(s, 0)
		}
	}

	for frontier.Size() > 0 {
		e, _ := frontier.Pop()
		c := e.coord

		if cfg.MaxPriority > 0 && e.priority > cfg.MaxPriority {
			out.Limited = true
			return out
		}

		dist, ok := best[c]
		if !ok {
			continue
		}
		if _, settled := out.Dist[c]; settled {
			continue // stale entry
		}
		out.Dist[c] = dist

		if cfg.Stop != nil && cfg.Stop(c) {
			out.Goal = c
			out.Found = true
			return out
		}

		for _, n := range c.Neighbors() {
			if cfg.Passable != nil && !cfg.Passable(n) {
				continue
			}
			step := 1
			if cfg.Cost != nil {
				step = cfg.Cost(c, n)
			}
			if step < 0 {
				continue // negative edges are treated as impassable
			}
			nd := dist + step
			if d, seen := best[n]; seen && d <= nd {
				continue
			}
			best[n] = nd
			out.Prev[n] = c
			push(n, nd)
		}
	}

	return out
}
