package fov

import "github.com/vovakirdan/gridkit/coord"

// Color is an RGB triple with components in [0, 1], used for light
// tinting only; the engine does no rendering with it.
type Color struct {
	R, G, B float64
}

// White is the default light color.
var White = Color{R: 1, G: 1, B: 1}

// Light is one light source. Intensity is the contribution at the
// source, in [0, 1]; it falls off linearly to zero at Radius. A
// penetrating light ignores the blocking predicate and lights through
// walls.
type Light[C coord.Coord[C]] struct {
	Pos             C
	Radius          int
	Intensity       float64
	Color           Color
	PenetratesWalls bool
}

// LightMap holds combined light levels per cell. Levels from multiple
// sources add and clamp to 1; colors mix by intensity-weighted average.
type LightMap[C comparable] struct {
	levels  map[C]float64
	colors  map[C]Color
	weights map[C]float64
}

// LevelAt returns the combined light level at c, zero when unlit.
func (m LightMap[C]) LevelAt(c C) float64 {
	return m.levels[c]
}

// ColorAt returns the mixed light color at c.
func (m LightMap[C]) ColorAt(c C) (Color, bool) {
	col, ok := m.colors[c]
	return col, ok
}

// Len returns the number of lit cells.
func (m LightMap[C]) Len() int {
	return len(m.levels)
}

// Each calls fn for every lit cell in unspecified order.
func (m LightMap[C]) Each(fn func(c C, level float64)) {
	for c, l := range m.levels {
		fn(c, l)
	}
}

// Illuminate accumulates the contribution of every light over the cells
// it can reach. Each source lights the cells visible from its position
// (all cells in radius for penetrating lights); the contribution is
// intensity scaled by linear distance falloff.
func Illuminate[C coord.Coord[C]](lights []Light[C], opaque func(C) bool) LightMap[C] {
	m := LightMap[C]{
		levels:  make(map[C]float64),
		colors:  make(map[C]Color),
		weights: make(map[C]float64),
	}

	for _, l := range lights {
		if l.Radius <= 0 || l.Intensity <= 0 {
			continue
		}
		blocks := opaque
		if l.PenetratesWalls {
			blocks = func(C) bool { return false }
		}
		res := Compute(l.Pos, l.Radius, blocks, Shadowcast)

		col := l.Color
		if col == (Color{}) {
			col = White
		}

		res.Each(func(c C) {
			d, _ := res.DistanceTo(c)
			falloff := 1 - float64(d)/float64(l.Radius)
			if falloff <= 0 {
				return
			}
			contribution := l.Intensity * falloff

			level := m.levels[c] + contribution
			if level > 1 {
				level = 1
			}
			m.levels[c] = level

			w := m.weights[c]
			prev := m.colors[c]
			total := w + contribution
			m.colors[c] = Color{
				R: (prev.R*w + col.R*contribution) / total,
				G: (prev.G*w + col.G*contribution) / total,
				B: (prev.B*w + col.B*contribution) / total,
			}
			m.weights[c] = total
		})
	}
	return m
}
