// Package core provides fundamental types for the lab platform: the
// screen cell buffer, colors, integer rect geometry, input frames, and
// runtime config. It contains no external dependencies (especially no
// Bubble Tea) to keep mode logic pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cell space. Modes use it
// to frame arenas and carve out HUD regions before drawing into them.
type Rect struct {
	X, Y int // top-left cell
	W, H int // extent in cells
}

// NewRect returns the rect anchored at (x, y) spanning w by h cells.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts val to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF is Clamp over float64, used for sub-cell cursor positions.
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
