package coord

import "fmt"

// Iso is a position on an isometric diamond grid. Logically it is a square
// grid — Manhattan distance included — while its screen projection rotates the
// lattice 45 degrees and halves the vertical scale to produce the familiar
// diamond look. All grid math runs in logical space; only [IsoLayout]
// touches screen space.
type Iso struct {
	X, Y int
}

// Is is a convenience constructor for Iso.
func Is(x, y int) Iso {
	return Iso{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Iso) String() string {
	return fmt.Sprintf("iso(%d,%d)", c.X, c.Y)
}

// Unpack returns the X and Y components.
func (c Iso) Unpack() (int, int) {
	return c.X, c.Y
}

// Shift returns the coordinate displaced by (dx, dy).
func (c Iso) Shift(dx, dy int) Iso {
	return Iso{X: c.X + dx, Y: c.Y + dy}
}

// Add returns the component-wise sum of two coordinates.
func (c Iso) Add(o Iso) Iso {
	return Iso{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference of two coordinates.
func (c Iso) Sub(o Iso) Iso {
	return Iso{X: c.X - o.X, Y: c.Y - o.Y}
}

// Scale returns the coordinate with both components multiplied by k.
func (c Iso) Scale(k int) Iso {
	return Iso{X: c.X * k, Y: c.Y * k}
}

// Neighbors returns the 4 orthogonal neighbors in the order right, left,
// up, down (logical space).
func (c Iso) Neighbors() []Iso {
	return []Iso{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

// Distance returns the Manhattan distance in logical space.
func (c Iso) Distance(o Iso) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Center returns the cell center in the logical unit square embedding.
// Visibility and line tracing run here, where adjacency is honest; the
// diamond projection is presentation only.
func (c Iso) Center() Pixel {
	return Pixel{X: float64(c.X), Y: float64(c.Y)}
}

// IsoLayout converts isometric coordinates to screen positions. Size is
// the diamond tile width in pixels and must be positive; the diamond is
// half as tall as it is wide.
type IsoLayout struct {
	Size float64
}

// ToScreen returns the screen position of the tile center under the
// diamond projection.
func (l IsoLayout) ToScreen(c Iso) Pixel {
	return Pixel{
		X: float64(c.X-c.Y) * (l.Size / 2.0),
		Y: float64(c.X+c.Y) * (l.Size / 4.0),
	}
}

// FromScreen returns the coordinate whose tile center is nearest the
// screen position, inverting the diamond projection. It round-trips
// exactly with ToScreen on tile centers.
func (l IsoLayout) FromScreen(p Pixel) Iso {
	xn := p.X / (l.Size / 2.0)
	yn := p.Y / (l.Size / 4.0)
	return Iso{
		X: roundToInt((xn + yn) / 2.0),
		Y: roundToInt((yn - xn) / 2.0),
	}
}

// TileCorners returns the four vertices of the diamond tile in screen
// space, clockwise from the top: top, right, bottom, left.
func (l IsoLayout) TileCorners(c Iso) [4]Pixel {
	center := l.ToScreen(c)
	halfW := l.Size / 2.0
	halfH := l.Size / 4.0
	return [4]Pixel{
		{X: center.X, Y: center.Y - halfH},
		{X: center.X + halfW, Y: center.Y},
		{X: center.X, Y: center.Y + halfH},
		{X: center.X - halfW, Y: center.Y},
	}
}
