package sketch

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle used for bounding boxes, blit
// positions and dirty-rect reporting. A rectangle with non-positive
// width or height is empty.
type Rect struct {
	X, Y, W, H float64
}

// RectFrom returns the smallest rectangle containing both corner points.
func RectFrom(a, b Point) Rect {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// BoundingRect returns the bounding rectangle of a point set.
// Returns an empty rect for an empty slice.
func BoundingRect(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{X: pts[0].X, Y: pts[0].Y}
	for _, p := range pts[1:] {
		r = r.Union(Rect{X: p.X, Y: p.Y})
	}
	return r
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inflate returns the rectangle grown by dx and dy on each side.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

// Translate returns the rectangle shifted by a displacement.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

// Union returns the smallest rectangle containing both r and s.
// Degenerate (zero-size) rectangles still contribute their position,
// so Union can be seeded from a single point.
func (r Rect) Union(s Rect) Rect {
	x0 := math.Min(r.X, s.X)
	y0 := math.Min(r.Y, s.Y)
	x1 := math.Max(r.X+r.W, s.X+s.W)
	y1 := math.Max(r.Y+r.H, s.Y+s.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether the point lies inside the rectangle
// (inclusive of the top-left edge, exclusive of the bottom-right).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports whether two rectangles intersect.
func (r Rect) Overlaps(s Rect) bool {
	return r.X < s.X+s.W && s.X < r.X+r.W &&
		r.Y < s.Y+s.H && s.Y < r.Y+r.H
}

// ImageRect converts to an image.Rectangle, expanding outward so every
// partially covered pixel is included.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}
