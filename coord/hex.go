package coord

import (
	"fmt"
	"math"
)

// Hex is a position on a hexagonal grid in axial coordinates (Q, R), with
// the implicit third cube component S = -Q-R. Neighbor structure and
// distance are the same for pointy-top and flat-top maps; orientation only
// matters when converting to pixels ([HexLayout]) or to offset coordinates
// ([OffsetLayout]).
type Hex struct {
	Q, R int
}

// Hx is a convenience constructor for Hex.
func Hx(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// String returns a string representation of the coordinate.
func (c Hex) String() string {
	return fmt.Sprintf("hex(%d,%d)", c.Q, c.R)
}

// S returns the derived third cube component, -Q-R.
func (c Hex) S() int {
	return -c.Q - c.R
}

// Unpack returns the Q and R components.
func (c Hex) Unpack() (int, int) {
	return c.Q, c.R
}

// Shift returns the coordinate displaced by (dq, dr).
func (c Hex) Shift(dq, dr int) Hex {
	return Hex{Q: c.Q + dq, R: c.R + dr}
}

// Add returns the component-wise sum of two coordinates.
func (c Hex) Add(o Hex) Hex {
	return Hex{Q: c.Q + o.Q, R: c.R + o.R}
}

// Sub returns the component-wise difference of two coordinates.
func (c Hex) Sub(o Hex) Hex {
	return Hex{Q: c.Q - o.Q, R: c.R - o.R}
}

// Scale returns the coordinate with both components multiplied by k.
func (c Hex) Scale(k int) Hex {
	return Hex{Q: c.Q * k, R: c.R * k}
}

// Neighbors returns the 6 adjacent hexes, starting at (+1,0) and
// proceeding counterclockwise: (+1,0), (+1,-1), (0,-1), (-1,0), (-1,+1),
// (0,+1).
func (c Hex) Neighbors() []Hex {
	return []Hex{
		{c.Q + 1, c.R},
		{c.Q + 1, c.R - 1},
		{c.Q, c.R - 1},
		{c.Q - 1, c.R},
		{c.Q - 1, c.R + 1},
		{c.Q, c.R + 1},
	}
}

// Distance returns the hex grid distance, half the L1 norm of the cube
// component differences.
func (c Hex) Distance(o Hex) int {
	dq := abs(c.Q - o.Q)
	dr := abs(c.R - o.R)
	ds := abs(c.Q + c.R - o.Q - o.R)
	return (dq + dr + ds) / 2
}

// Center returns the cell center in the unit pointy-top embedding. Flat-top
// maps differ only by a rotation of the whole plane, which leaves every
// angular and metric relationship intact.
func (c Hex) Center() Pixel {
	return pointyToPixel(float64(c.Q), float64(c.R), 1)
}

// HexOrientation selects between the two standard hexagon orientations.
type HexOrientation uint8

const (
	// Pointy orients hexes with a vertex at the top; rows of constant R
	// interleave horizontally.
	Pointy HexOrientation = iota
	// Flat orients hexes with an edge at the top; columns of constant Q
	// interleave vertically.
	Flat
)

// String returns the orientation name.
func (o HexOrientation) String() string {
	if o == Flat {
		return "flat"
	}
	return "pointy"
}

// HexLayout converts axial hex coordinates to pixel positions. Size is the
// hexagon circumradius (center to vertex) and must be positive.
type HexLayout struct {
	Orientation HexOrientation
	Size        float64
}

// ToPixel returns the pixel position of the hex center.
func (l HexLayout) ToPixel(c Hex) Pixel {
	q, r := float64(c.Q), float64(c.R)
	if l.Orientation == Flat {
		return flatToPixel(q, r, l.Size)
	}
	return pointyToPixel(q, r, l.Size)
}

// FromPixel returns the hex whose tile contains the pixel position, using
// cube rounding of the fractional axial coordinates. It round-trips exactly
// with ToPixel on hex centers.
func (l HexLayout) FromPixel(p Pixel) Hex {
	var q, r float64
	if l.Orientation == Flat {
		q = (2.0 / 3.0) * p.X / l.Size
		r = (-1.0/3.0*p.X + math.Sqrt(3)/3.0*p.Y) / l.Size
	} else {
		q = (math.Sqrt(3)/3.0*p.X - 1.0/3.0*p.Y) / l.Size
		r = (2.0 / 3.0) * p.Y / l.Size
	}
	return RoundHex(q, r)
}

// Corners returns the six vertices of the hex in pixel space, starting at
// the vertex with the smallest positive angle and proceeding
// counterclockwise.
func (l HexLayout) Corners(c Hex) []Pixel {
	center := l.ToPixel(c)
	start := 30.0
	if l.Orientation == Flat {
		start = 0.0
	}
	corners := make([]Pixel, 6)
	for i := range corners {
		angle := (start + 60.0*float64(i)) * math.Pi / 180.0
		corners[i] = Pixel{
			X: center.X + l.Size*math.Cos(angle),
			Y: center.Y + l.Size*math.Sin(angle),
		}
	}
	return corners
}

// RoundHex converts fractional axial coordinates to the nearest hex using
// cube rounding: round all three cube components, then recompute the one
// with the largest rounding error so they still sum to zero.
func RoundHex(q, r float64) Hex {
	s := -q - r
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Hex{Q: int(rq), R: int(rr)}
}

func pointyToPixel(q, r, size float64) Pixel {
	return Pixel{
		X: size * (math.Sqrt(3)*q + math.Sqrt(3)/2.0*r),
		Y: size * (3.0 / 2.0 * r),
	}
}

func flatToPixel(q, r, size float64) Pixel {
	return Pixel{
		X: size * (3.0 / 2.0 * q),
		Y: size * (math.Sqrt(3)/2.0*q + math.Sqrt(3)*r),
	}
}
