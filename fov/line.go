package fov

import "github.com/vovakirdan/gridkit/coord"

// TraceLine returns the cell sequence from one coordinate to another,
// walking neighbor by neighbor along the ideal segment between their
// centers. At each step it moves to the neighbor that gets strictly
// closer to the target and hugs the segment tightest, which generalizes
// Bresenham to any topology. Endpoints are included; the result for
// equal endpoints is a single cell.
//
// Tracing a to b and b to a can differ by a cell on exact diagonals; a
// caller that needs symmetric results should trace from a canonical
// endpoint.
func TraceLine[C coord.Coord[C]](from, to C) []C {
	path := []C{from}
	if from == to {
		return path
	}

	a := from.Center()
	b := to.Center()

	cur := from
	for cur != to {
		d := cur.Distance(to)
		var best C
		bestPerp := -1.0
		for _, n := range cur.Neighbors() {
			if n.Distance(to) >= d {
				continue
			}
			p := perpDistance(n.Center(), a, b)
			if bestPerp < 0 || p < bestPerp-1e-12 {
				best, bestPerp = n, p
			}
		}
		if bestPerp < 0 {
			break // no strictly closer neighbor; malformed topology
		}
		cur = best
		path = append(path, cur)
	}
	return path
}

// LineOfSight reports whether to can be seen from from: no cell strictly
// between them on the traced line satisfies opaque. Endpoints never
// block, so a wall cell is itself visible from an adjacent cell. A nil
// opaque predicate means nothing blocks.
func LineOfSight[C coord.Coord[C]](from, to C, opaque func(C) bool) bool {
	if opaque == nil {
		return true
	}
	line := TraceLine(from, to)
	for i := 1; i < len(line)-1; i++ {
		if opaque(line[i]) {
			return false
		}
	}
	return true
}

// perpDistance returns the distance from p to the segment a-b.
func perpDistance(p, a, b coord.Pixel) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	den := ab.X*ab.X + ab.Y*ab.Y
	if den == 0 {
		return p.Dist(a)
	}
	t := (ap.X*ab.X + ap.Y*ab.Y) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Dist(a.Add(ab.Scale(t)))
}
