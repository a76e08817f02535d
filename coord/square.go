package coord

import "fmt"

// Square4 is a position on a square grid with 4-connectivity (orthogonal
// movement only). Its metric is Manhattan distance.
type Square4 struct {
	X, Y int
}

// Sq4 is a convenience constructor for Square4.
func Sq4(x, y int) Square4 {
	return Square4{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Square4) String() string {
	return fmt.Sprintf("sq4(%d,%d)", c.X, c.Y)
}

// Unpack returns the X and Y components.
func (c Square4) Unpack() (int, int) {
	return c.X, c.Y
}

// Shift returns the coordinate displaced by (dx, dy).
func (c Square4) Shift(dx, dy int) Square4 {
	return Square4{X: c.X + dx, Y: c.Y + dy}
}

// Add returns the component-wise sum of two coordinates.
func (c Square4) Add(o Square4) Square4 {
	return Square4{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference of two coordinates.
func (c Square4) Sub(o Square4) Square4 {
	return Square4{X: c.X - o.X, Y: c.Y - o.Y}
}

// Scale returns the coordinate with both components multiplied by k.
func (c Square4) Scale(k int) Square4 {
	return Square4{X: c.X * k, Y: c.Y * k}
}

// Neighbors returns the 4 orthogonal neighbors in the order
// right, left, up, down.
func (c Square4) Neighbors() []Square4 {
	return []Square4{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

// Distance returns the Manhattan distance to another coordinate.
func (c Square4) Distance(o Square4) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Center returns the cell center in the unit square lattice embedding.
func (c Square4) Center() Pixel {
	return Pixel{X: float64(c.X), Y: float64(c.Y)}
}

// To8 reinterprets the position on the same lattice under 8-connectivity.
func (c Square4) To8() Square8 {
	return Square8{X: c.X, Y: c.Y}
}

// Square8 is a position on a square grid with 8-connectivity (orthogonal
// and diagonal movement). Its metric is Chebyshev distance.
type Square8 struct {
	X, Y int
}

// Sq8 is a convenience constructor for Square8.
func Sq8(x, y int) Square8 {
	return Square8{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Square8) String() string {
	return fmt.Sprintf("sq8(%d,%d)", c.X, c.Y)
}

// Unpack returns the X and Y components.
func (c Square8) Unpack() (int, int) {
	return c.X, c.Y
}

// Shift returns the coordinate displaced by (dx, dy).
func (c Square8) Shift(dx, dy int) Square8 {
	return Square8{X: c.X + dx, Y: c.Y + dy}
}

// Add returns the component-wise sum of two coordinates.
func (c Square8) Add(o Square8) Square8 {
	return Square8{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference of two coordinates.
func (c Square8) Sub(o Square8) Square8 {
	return Square8{X: c.X - o.X, Y: c.Y - o.Y}
}

// Scale returns the coordinate with both components multiplied by k.
func (c Square8) Scale(k int) Square8 {
	return Square8{X: c.X * k, Y: c.Y * k}
}

// Neighbors returns the 8 surrounding neighbors: the orthogonals in the
// order right, left, up, down, then the diagonals up-right, up-left,
// down-right, down-left.
func (c Square8) Neighbors() []Square8 {
	return []Square8{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
		{c.X + 1, c.Y + 1},
		{c.X - 1, c.Y + 1},
		{c.X + 1, c.Y - 1},
		{c.X - 1, c.Y - 1},
	}
}

// Distance returns the Chebyshev distance to another coordinate.
func (c Square8) Distance(o Square8) int {
	return maxInt(abs(c.X-o.X), abs(c.Y-o.Y))
}

// Center returns the cell center in the unit square lattice embedding.
func (c Square8) Center() Pixel {
	return Pixel{X: float64(c.X), Y: float64(c.Y)}
}

// To4 reinterprets the position on the same lattice under 4-connectivity.
func (c Square8) To4() Square4 {
	return Square4{X: c.X, Y: c.Y}
}

// SquareLayout converts square-lattice coordinates to pixel positions.
// Size is the edge length of one tile and must be positive.
type SquareLayout struct {
	Size float64
}

// ToPixel returns the pixel position of the cell center.
func (l SquareLayout) ToPixel(c Square4) Pixel {
	return Pixel{X: float64(c.X) * l.Size, Y: float64(c.Y) * l.Size}
}

// FromPixel returns the coordinate whose tile contains the pixel position.
// It round-trips exactly with ToPixel on tile centers.
func (l SquareLayout) FromPixel(p Pixel) Square4 {
	return Square4{
		X: roundToInt(p.X / l.Size),
		Y: roundToInt(p.Y / l.Size),
	}
}

// ToPixel8 returns the pixel position of an 8-connected cell center.
func (l SquareLayout) ToPixel8(c Square8) Pixel {
	return l.ToPixel(c.To4())
}

// FromPixel8 returns the 8-connected coordinate containing the pixel position.
func (l SquareLayout) FromPixel8(p Pixel) Square8 {
	return l.FromPixel(p).To8()
}

// roundToInt rounds half away from zero, matching the rounding used by all
// pixel-to-coordinate conversions.
func roundToInt(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
