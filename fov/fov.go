// Package fov computes field-of-view, line-of-sight, and multi-source
// lighting over any coordinate system. Algorithms are selected per call
// through one entry point, so callers can swap strategies without
// changing call sites.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gridkit/coord"
)

// Algorithm names one of the visibility strategies.
type Algorithm uint8

const (
	// Shadowcast sweeps distance rings outward while maintaining a set of
	// shadowed angular intervals; cells whose arc is fully in shadow are
	// skipped without tracing a ray. The angular formulation serves every
	// topology; on square grids it behaves like classic octant
	// shadowcasting.
	Shadowcast Algorithm = iota
	// RayMarch traces a line from the origin to every cell in range and
	// marks it visible only when no interior cell blocks. Simpler and
	// more expensive; used as a cross-check and fallback.
	RayMarch
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	if a == RayMarch {
		return "raymarch"
	}
	return "shadowcast"
}

// Result is the visible set computed from one origin. The origin is
// always a member. Visibility is symmetric only when the opaque
// predicate is; the engine documents that, it does not enforce it.
type Result[C coord.Coord[C]] struct {
	Origin  C
	Radius  int
	visible mapset.Set[C]
	dist    map[C]int
}

// Visible reports whether c is in the visible set.
func (r Result[C]) Visible(c C) bool {
	return r.visible.Has(c)
}

// Len returns the size of the visible set.
func (r Result[C]) Len() int {
	return r.visible.Size()
}

// DistanceTo returns the grid distance from the origin to a visible
// cell.
func (r Result[C]) DistanceTo(c C) (int, bool) {
	d, ok := r.dist[c]
	return d, ok
}

// Each calls fn for every visible cell in unspecified order.
func (r Result[C]) Each(fn func(C)) {
	r.visible.Each(fn)
}

// Compute returns the set of cells visible from origin within radius
// under the blocking predicate, using the chosen algorithm. Blocking
// cells are themselves visible; only cells behind them are not. A nil
// opaque predicate means nothing blocks.
func Compute[C coord.Coord[C]](origin C, radius int, opaque func(C) bool, algo Algorithm) Result[C] {
	if opaque == nil {
		opaque = func(C) bool { return false }
	}
	r := Result[C]{
		Origin:  origin,
		Radius:  radius,
		visible: mapset.New[C](),
		dist:    make(map[C]int),
	}
	r.visible.Put(origin)
	r.dist[origin] = 0
	if radius <= 0 {
		return r
	}

	rings := ringsAround(origin, radius)
	switch algo {
	case RayMarch:
		rayMarch(origin, rings, opaque, &r)
	default:
		shadowcast(origin, rings, opaque, &r)
	}
	return r
}

// ringsAround groups the cells around origin by exact grid distance:
// rings[d] holds every cell at distance d, for d in 1..radius. The
// enumeration is geometric, independent of blocking, so shadowed cells
// still appear in their ring.
func ringsAround[C coord.Coord[C]](origin C, radius int) [][]C {
	rings := make([][]C, radius+1)
	rings[0] = []C{origin}
	seen := map[C]struct{}{origin: {}}

	for d := 0; d < radius; d++ {
		// Index loop: a ring can grow while it is being expanded when a
		// neighbor lands in the same ring.
		for i := 0; i < len(rings[d]); i++ {
			c := rings[d][i]
			for _, n := range c.Neighbors() {
				if _, ok := seen[n]; ok {
					continue
				}
				nd := origin.Distance(n)
				if nd < 1 || nd > radius {
					continue
				}
				seen[n] = struct{}{}
				rings[nd] = append(rings[nd], n)
			}
		}
	}
	return rings
}

// rayMarch marks each ring cell visible when its traced line from the
// origin has no opaque interior cell.
func rayMarch[C coord.Coord[C]](origin C, rings [][]C, opaque func(C) bool, r *Result[C]) {
	for d := 1; d < len(rings); d++ {
		for _, c := range rings[d] {
			if LineOfSight(origin, c, opaque) {
				r.visible.Put(c)
				r.dist[c] = d
			}
		}
	}
}
