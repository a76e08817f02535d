package fov

import (
	"math"

	"github.com/vovakirdan/gridkit/coord"
)

// visibleGap is the minimum unshadowed arc, in radians, a cell must
// retain to count as visible. Keeps float noise at shadow boundaries
// from flipping cells.
const visibleGap = 1e-6

// shadowcast sweeps the rings outward. Each cell subtends an angular arc
// as seen from the origin; a cell is visible while any part of its arc
// remains unshadowed. Opaque cells in a ring add their arcs to the
// shadow set after the whole ring is processed, so cells in the same
// ring never occlude each other.
func shadowcast[C coord.Coord[C]](origin C, rings [][]C, opaque func(C) bool, r *Result[C]) {
	o := origin.Center()
	var shadows shadowSet

	for d := 1; d < len(rings); d++ {
		var ringShadows []arc
		for _, c := range rings[d] {
			arcs := cellArcs(o, c)
			blocking := opaque(c)
			if shadows.anyGap(arcs) {
				r.visible.Put(c)
				r.dist[c] = d
			}
			if blocking {
				ringShadows = append(ringShadows, arcs...)
			}
		}
		for _, a := range ringShadows {
			shadows.add(a)
		}
	}
}

// cellArcs returns the angular interval the cell covers as seen from o,
// split in two when it crosses the -pi/pi seam. The cell is modeled as a
// disc of half its nearest-neighbor spacing, the usual permissive
// approximation for grid occlusion.
func cellArcs[C coord.Coord[C]](o coord.Pixel, c C) []arc {
	p := c.Center()
	dist := o.Dist(p)
	radius := occlusionRadius(c)
	if dist <= radius {
		return []arc{{-math.Pi, math.Pi}}
	}

	theta := o.Angle(p)
	half := math.Asin(radius / dist)
	lo, hi := theta-half, theta+half

	switch {
	case lo < -math.Pi:
		return []arc{{lo + 2*math.Pi, math.Pi}, {-math.Pi, hi}}
	case hi > math.Pi:
		return []arc{{lo, math.Pi}, {-math.Pi, hi - 2*math.Pi}}
	default:
		return []arc{{lo, hi}}
	}
}

// occlusionRadius returns half the distance to the cell's nearest
// neighbor center in the topology's embedding.
func occlusionRadius[C coord.Coord[C]](c C) float64 {
	p := c.Center()
	min := math.Inf(1)
	for _, n := range c.Neighbors() {
		if d := p.Dist(n.Center()); d < min {
			min = d
		}
	}
	return min / 2
}

// arc is a closed angular interval in radians with lo <= hi, both within
// [-pi, pi].
type arc struct {
	lo, hi float64
}

// shadowSet is a sorted, disjoint list of shadowed arcs.
type shadowSet struct {
	arcs []arc
}

// add merges a new arc into the set, coalescing overlaps.
func (s *shadowSet) add(a arc) {
	out := make([]arc, 0, len(s.arcs)+1)
	i := 0
	for ; i < len(s.arcs) && s.arcs[i].hi < a.lo; i++ {
		out = append(out, s.arcs[i])
	}
	for ; i < len(s.arcs) && s.arcs[i].lo <= a.hi; i++ {
		if s.arcs[i].lo < a.lo {
			a.lo = s.arcs[i].lo
		}
		if s.arcs[i].hi > a.hi {
			a.hi = s.arcs[i].hi
		}
	}
	out = append(out, a)
	out = append(out, s.arcs[i:]...)
	s.arcs = out
}

// anyGap reports whether any part of the given arcs, beyond the noise
// threshold, is not covered by the shadow set.
func (s *shadowSet) anyGap(arcs []arc) bool {
	for _, a := range arcs {
		if a.hi-a.lo <= 0 {
			continue
		}
		covered := 0.0
		for _, e := range s.arcs {
			lo := math.Max(a.lo, e.lo)
			hi := math.Min(a.hi, e.hi)
			if hi > lo {
				covered += hi - lo
			}
		}
		if (a.hi-a.lo)-covered > visibleGap {
			return true
		}
	}
	return false
}
