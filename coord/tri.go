package coord

import (
	"fmt"
	"math"
)

// triHeight is the height of a unit-side equilateral triangle.
const triHeight = 0.8660254037844386 // sqrt(3)/2

// Tri is a position in a triangular tessellation. Cells alternate between
// up-pointing and down-pointing triangles by the parity of X+Y (even is
// up-pointing). Connectivity is 12-way: the 3 edge-adjacent triangles plus
// the 9 vertex-adjacent ones.
type Tri struct {
	X, Y int
}

// Tr is a convenience constructor for Tri.
func Tr(x, y int) Tri {
	return Tri{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Tri) String() string {
	return fmt.Sprintf("tri(%d,%d)", c.X, c.Y)
}

// PointsUp reports whether this triangle is up-pointing.
func (c Tri) PointsUp() bool {
	return (c.X+c.Y)&1 == 0
}

// Unpack returns the X and Y components.
func (c Tri) Unpack() (int, int) {
	return c.X, c.Y
}

// Shift returns the coordinate displaced by (dx, dy).
func (c Tri) Shift(dx, dy int) Tri {
	return Tri{X: c.X + dx, Y: c.Y + dy}
}

// Add returns the component-wise sum of two coordinates.
func (c Tri) Add(o Tri) Tri {
	return Tri{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference of two coordinates.
func (c Tri) Sub(o Tri) Tri {
	return Tri{X: c.X - o.X, Y: c.Y - o.Y}
}

// Scale returns the coordinate with both components multiplied by k.
func (c Tri) Scale(k int) Tri {
	return Tri{X: c.X * k, Y: c.Y * k}
}

// Neighbors returns the 12 adjacent triangles: first the 3 edge-adjacent
// ones, then the 9 vertex-adjacent ones. The exact order depends on
// pointing direction but is fixed for each parity.
func (c Tri) Neighbors() []Tri {
	x, y := c.X, c.Y
	if c.PointsUp() {
		return []Tri{
			{x - 1, y}, {x + 1, y}, {x, y - 1},
			{x - 2, y}, {x + 2, y}, {x, y - 2},
			{x - 1, y - 1}, {x + 1, y - 1},
			{x - 1, y + 1}, {x + 1, y + 1},
			{x, y + 1}, {x, y + 2},
		}
	}
	return []Tri{
		{x - 1, y}, {x + 1, y}, {x, y + 1},
		{x - 2, y}, {x + 2, y}, {x, y + 2},
		{x - 1, y - 1}, {x + 1, y - 1},
		{x - 1, y + 1}, {x + 1, y + 1},
		{x, y - 1}, {x, y - 2},
	}
}

// Distance returns the triangular metric, the larger of the absolute
// component differences. Note that vertex-adjacent neighbors can sit at
// distance 2; a single step may cover two units of this metric.
func (c Tri) Distance(o Tri) int {
	return maxInt(abs(c.X-o.X), abs(c.Y-o.Y))
}

// Center returns the triangle centroid in the unit-side embedding.
// Up-pointing centroids sit in the lower third of their row band,
// down-pointing ones in the upper third.
func (c Tri) Center() Pixel {
	x := 0.5*float64(c.X) + 0.5
	y := float64(c.Y) * triHeight
	if c.PointsUp() {
		y += triHeight / 3.0
	} else {
		y += 2.0 * triHeight / 3.0
	}
	return Pixel{X: x, Y: y}
}

// TriLayout converts triangular coordinates to pixel positions. Side is
// the triangle edge length and must be positive.
type TriLayout struct {
	Side float64
}

// ToPixel returns the pixel position of the triangle centroid.
func (l TriLayout) ToPixel(c Tri) Pixel {
	return c.Center().Scale(l.Side)
}

// FromPixel returns the triangle whose centroid is nearest the pixel
// position among the candidates of the containing row band. It round-trips
// exactly with ToPixel on centroids.
func (l TriLayout) FromPixel(p Pixel) Tri {
	u := Pixel{X: p.X / l.Side, Y: p.Y / l.Side}
	row := int(math.Floor(u.Y / triHeight))
	col := roundToInt(2.0*u.X - 1.0)

	best := Tri{X: col, Y: row}
	bestDist := math.Inf(1)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cand := Tri{X: col + dx, Y: row + dy}
			if d := cand.Center().Dist(u); d < bestDist {
				best, bestDist = cand, d
			}
		}
	}
	return best
}
