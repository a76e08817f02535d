// Package spatial provides a quadtree over pixel-space positions for
// broad-phase "what is near here" queries, independent of any logical
// grid. The index stores entity identifiers and positions only; entity
// state stays with the caller.
package spatial

import (
	"fmt"

	"github.com/vovakirdan/gridkit/coord"
)

// Rect is an axis-aligned box in pixel space. A point is inside when
// X <= p.X < X+W and Y <= p.Y < Y+H, so adjacent rectangles partition
// the plane without overlap.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from its minimum corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromCenterSize creates a rectangle centered on the given point.
func FromCenterSize(center coord.Pixel, w, h float64) Rect {
	return Rect{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h}
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("rect(%.1f,%.1f %gx%g)", r.X, r.Y, r.W, r.H)
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p coord.Pixel) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() coord.Pixel {
	return coord.Px(r.X+r.W/2, r.Y+r.H/2)
}

// closestTo returns the point inside the rectangle nearest to p, used for
// circle-rectangle overlap tests.
func (r Rect) closestTo(p coord.Pixel) coord.Pixel {
	q := p
	if q.X < r.X {
		q.X = r.X
	} else if q.X > r.X+r.W {
		q.X = r.X + r.W
	}
	if q.Y < r.Y {
		q.Y = r.Y
	} else if q.Y > r.Y+r.H {
		q.Y = r.Y + r.H
	}
	return q
}

// IntersectsCircle reports whether the rectangle overlaps a circle.
func (r Rect) IntersectsCircle(center coord.Pixel, radius float64) bool {
	c := r.closestTo(center)
	dx := c.X - center.X
	dy := c.Y - center.Y
	return dx*dx+dy*dy <= radius*radius
}
