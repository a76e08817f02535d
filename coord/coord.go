// Package coord defines the coordinate systems shared by every grid algorithm
// in this module: square grids with 4- or 8-connectivity, axial hexagons,
// 12-connected triangles, and isometric diamonds.
//
// Each topology is a distinct value type. Algorithms that work across
// topologies take a type parameter constrained by [Coord], so mixing
// coordinate systems is rejected at compile time and every instantiation
// specializes to exactly one topology. The Y axis points up in all
// coordinate math; rendering layers that draw top-to-bottom flip it
// themselves.
package coord

import (
	"errors"
	"fmt"
	"math"
)

// ErrTopologyMismatch reports an operation across incompatible coordinate
// systems. Static code cannot trigger it (the type system forbids mixing);
// it surfaces where topology is chosen dynamically, such as scenario files
// naming a grid kind.
var ErrTopologyMismatch = errors.New("coord: topology mismatch")

// Coord is the capability set every coordinate type provides. Pathfinding,
// visibility, flow fields and grid storage are all written once against this
// constraint.
type Coord[C comparable] interface {
	comparable

	// Unpack returns the two integer components of the coordinate.
	Unpack() (int, int)

	// Shift returns the coordinate displaced by (da, db) in component space.
	Shift(da, db int) C

	// Neighbors returns the adjacent coordinates in a fixed, documented
	// order. The order is part of each type's contract; tie-breaking in the
	// algorithms depends on it being stable.
	Neighbors() []C

	// Distance returns the topology's metric between two coordinates.
	// It is symmetric and zero only between equal coordinates.
	Distance(C) int

	// Center returns the cell center in the topology's canonical
	// unit-spacing planar embedding. Line tracing and angular visibility
	// sweeps run in this embedding; rendering layouts scale it separately.
	Center() Pixel
}

// Pixel is a position in continuous 2D space, used for rendering handoff,
// spatial-index bounds, and line tracing between cell centers.
type Pixel struct {
	X, Y float64
}

// Px is a convenience constructor for Pixel.
func Px(x, y float64) Pixel {
	return Pixel{X: x, Y: y}
}

// String returns a string representation of the pixel position.
func (p Pixel) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// Add returns the component-wise sum of two pixel positions.
func (p Pixel) Add(q Pixel) Pixel {
	return Pixel{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two pixel positions.
func (p Pixel) Sub(q Pixel) Pixel {
	return Pixel{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the pixel position scaled by f.
func (p Pixel) Scale(f float64) Pixel {
	return Pixel{X: p.X * f, Y: p.Y * f}
}

// Lerp returns the linear interpolation between p and q at parameter t,
// where t=0 yields p and t=1 yields q.
func (p Pixel) Lerp(q Pixel, t float64) Pixel {
	return Pixel{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Dist returns the Euclidean distance between two pixel positions.
func (p Pixel) Dist(q Pixel) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Angle returns the angle of the vector from p to q in radians,
// in the range (-pi, pi].
func (p Pixel) Angle(q Pixel) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// abs is the integer absolute value used throughout the coordinate types.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
