package sketch

import "fmt"

// ArrowShape controls arrow proportions: shaft width, head length, and
// the barb spread ratio (flatness). Width and Head are fractions of the
// shaft length when Fixed is false, or absolute pixel units when Fixed is
// true; fixed units are resolved against the actual length at build time.
type ArrowShape struct {
	Width    float64
	Head     float64
	Flatness float64
	Fixed    bool
}

// DefaultArrowShape is the proportional arrow used when no shape is given.
func DefaultArrowShape() ArrowShape {
	return ArrowShape{Width: 0.1, Head: 0.1, Flatness: 2}
}

// ArrowVertices computes the 7-vertex outline of an arrow (shaft plus a
// two-sided flat-backed head) in local coordinates with the tip at the
// origin and the shaft extending along the negative x axis. Width and
// head are fractions of the shaft length; flatness is the barb spread
// ratio. The outline is symmetric about the shaft axis.
func ArrowVertices(length, width, head, flatness float64) []Point {
	w := width * length / 2
	h := head * length
	y := h * flatness / 2
	return []Point{
		{0, 0},
		{-h, y},
		{-h, w},
		{-length, w},
		{-length, -w},
		{-h, -w},
		{-h, -y},
	}
}

// NewArrow creates an arrow-shaped Polygon with its tip at tip and its
// tail at tail. The polygon is anchored at the tip.
func NewArrow(tip, tail Point, shape ArrowShape) (*Polygon, error) {
	d := tip.Sub(tail)
	length := d.Length()
	if length == 0 {
		return nil, fmt.Errorf("%w: arrow tip and tail coincide", ErrDegenerate)
	}
	return buildArrow(tip, length, d.Atan2(), shape)
}

// NewArrowLength creates an arrow of the given shaft length pointing in
// the +x direction, anchored at its tip.
func NewArrowLength(tip Point, length float64, shape ArrowShape) (*Polygon, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: arrow length must be positive", ErrDegenerate)
	}
	return buildArrow(tip, length, 0, shape)
}

func buildArrow(tip Point, length, angle float64, shape ArrowShape) (*Polygon, error) {
	w, h := shape.Width, shape.Head
	if shape.Fixed {
		w /= length
		h /= length
	}
	p, err := NewPolygon(ArrowVertices(length, w, h, shape.Flatness), WithAnchorVertex(0))
	if err != nil {
		return nil, err
	}
	p.SetPos(tip)
	if angle != 0 {
		p.Rotate(angle)
	}
	return p, nil
}
