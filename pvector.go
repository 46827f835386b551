package sketch

import (
	"fmt"
	"math"
)

// PVector is a placed 2D vector: an algebraic Vec2 value plus the tail
// anchor point that determines where it is drawn. The value and the
// placement are deliberately separate; arithmetic acts on the value and
// returns fresh vectors anchored at the origin, while Rotate, Proj and
// the layout helpers manage placement.
//
// Angles at the PVector surface are in degrees, matching the textual
// vector notation ("3@45"). The geometry kernel underneath works in
// radians.
type PVector struct {
	anchored
	style Style

	V    Vec2
	Tail Point

	shape     ArrowShape
	draggable bool
}

// Draggable reports whether the vector accepts drag interaction.
// The flag is consumed by display integrations; the core only stores it.
func (v *PVector) Draggable() bool { return v.draggable }

// SetDraggable marks the vector for drag interaction.
func (v *PVector) SetDraggable(d bool) { v.draggable = d }

// vectorStyle is the default drawing style for vectors: red arrow body
// with a thin black outline.
func vectorStyle() Style {
	return Style{fill: Red, hasFill: true, stroke: Black, hasStroke: true, weight: 1}
}

// NewPVector creates a placed vector from a magnitude and an angle in
// degrees. A negative magnitude flips the direction by 180°.
func NewPVector(mag, thetaDeg float64) *PVector {
	return PVectorFrom(Polar(mag, thetaDeg))
}

// PVectorXY creates a placed vector from Cartesian components.
func PVectorXY(x, y float64) *PVector {
	return PVectorFrom(V2(x, y))
}

// PVectorFrom wraps a Vec2 value as a placed vector with tail at the origin.
func PVectorFrom(v Vec2) *PVector {
	return &PVector{style: vectorStyle(), V: v, shape: DefaultArrowShape()}
}

// String renders the dual polar/Cartesian representation.
func (v *PVector) String() string {
	return fmt.Sprintf("<PVector %.3g @ %.1f (%.3g, %.3g)>", v.Mag(), v.Theta(), v.V.X, v.V.Y)
}

// Tip returns the head of the placed vector.
func (v *PVector) Tip() Point {
	return v.Tail.Add(v.V)
}

// SetTip re-anchors the vector so its head is at p.
func (v *PVector) SetTip(p Point) {
	v.Tail = p.Add(v.V.Neg())
}

// CsPos returns the midpoint of tail and tip, the vector's nominal
// position for layout purposes.
func (v *PVector) CsPos() Point {
	return v.Tail.Add(v.V.Div(2))
}

// SetCsPos re-anchors the vector so its midpoint is at p.
func (v *PVector) SetCsPos(p Point) {
	v.Tail = p.Add(v.V.Div(2).Neg())
}

// Mag returns the magnitude.
func (v *PVector) Mag() float64 {
	return v.V.Length()
}

// SetMag rescales the vector to the given magnitude, preserving direction.
func (v *PVector) SetMag(r float64) {
	v.V = Polar(r, v.Theta())
}

// Theta returns the direction in degrees.
func (v *PVector) Theta() float64 {
	return v.V.ThetaDeg()
}

// SetTheta redirects the vector, preserving magnitude.
func (v *PVector) SetTheta(deg float64) {
	v.V = Polar(v.Mag(), deg)
}

// Arithmetic. Results are new vectors anchored at the origin.

// Neg returns the negated vector.
func (v *PVector) Neg() *PVector {
	return PVectorFrom(v.V.Neg())
}

// Add returns the vector sum.
func (v *PVector) Add(w *PVector) *PVector {
	return PVectorFrom(v.V.Add(w.V))
}

// Sub returns the vector difference.
func (v *PVector) Sub(w *PVector) *PVector {
	return PVectorFrom(v.V.Sub(w.V))
}

// Scale returns the vector scaled by a scalar.
func (v *PVector) Scale(s float64) *PVector {
	return PVectorFrom(v.V.Mul(s))
}

// Div returns the vector divided by a scalar.
func (v *PVector) Div(s float64) *PVector {
	return PVectorFrom(v.V.Div(s))
}

// Rotate rotates the placed vector by an angle in degrees around an
// arbitrary pivot point, defaulting to its own midpoint. Both the
// direction and the tail placement change; this is rotation of the
// placed vector, distinct from redirecting just the value.
func (v *PVector) Rotate(angleDeg float64, pivot *Point) {
	p := v.CsPos()
	if pivot != nil {
		p = *pivot
	}
	rad := angleDeg * math.Pi / 180
	v.Tail = v.Tail.RotateAround(p, rad)
	v.V = v.V.Rotate(rad)
}

// Proj returns the projection of v onto another vector's direction,
// preserving the original tail.
func (v *PVector) Proj(onto *PVector) *PVector {
	u := onto.V.Normalize()
	p := PVectorFrom(u.Mul(u.Dot(v.V)))
	p.Tail = v.Tail
	return p
}

// ProjAngle returns the projection of v onto a bare direction in degrees,
// preserving the original tail.
func (v *PVector) ProjAngle(thetaDeg float64) *PVector {
	return v.Proj(NewPVector(1, thetaDeg))
}

// Components returns the two orthogonal component vectors, onto 0° and
// 90°. The second is anchored so its tail coincides with the original's
// tip, forming a visual right-triangle decomposition. The components
// always sum to the original vector.
func (v *PVector) Components() [2]*PVector {
	x := v.ProjAngle(0)
	y := v.ProjAngle(90)
	y.SetTip(v.Tip())
	return [2]*PVector{x, y}
}

// Sum returns the plain vector addition of a list, anchored at the origin.
func Sum(vs []*PVector) *PVector {
	var s Vec2
	for _, v := range vs {
		s = s.Add(v.V)
	}
	return PVectorFrom(s)
}

// TipToTail re-anchors each vector's tail to the previous vector's tip,
// the standard layout for a vector-addition diagram. The first vector's
// tail is untouched. The slice is modified in place and returned.
func TipToTail(vs []*PVector) []*PVector {
	for i := 1; i < len(vs); i++ {
		vs[i].Tail = vs[i-1].Tip()
	}
	return vs
}

// ArrowShape returns the current arrow proportions.
func (v *PVector) ArrowShape() ArrowShape {
	return v.shape
}

// SetArrowShape configures the arrow proportions used for rendering.
func (v *PVector) SetArrowShape(s ArrowShape) {
	v.shape = s
}

// Style accessors.

// Fill returns the arrow fill color and whether one is set.
func (v *PVector) Fill() (RGBA, bool) { return v.style.Fill() }

// Stroke returns the outline color and whether one is set.
func (v *PVector) Stroke() (RGBA, bool) { return v.style.Stroke() }

// Weight returns the outline weight.
func (v *PVector) Weight() float64 { return v.style.Weight() }

// SetFill sets the arrow fill color.
func (v *PVector) SetFill(c RGBA) { v.style.setFill(c) }

// SetStroke sets the outline color.
func (v *PVector) SetStroke(c RGBA) { v.style.setStroke(c) }

// SetWeight sets the outline weight.
func (v *PVector) SetWeight(w float64) { v.style.setWeight(w) }

// Shape interface.

// Pos returns the midpoint of the placed vector.
func (v *PVector) Pos() Point { return v.CsPos() }

// SetPos re-anchors the vector so its midpoint is at p.
func (v *PVector) SetPos(p Point) { v.SetCsPos(p) }

// Size returns the absolute component extents.
func (v *PVector) Size() (w, h float64) {
	return math.Abs(v.V.X), math.Abs(v.V.Y)
}

// Resize rescales the components to the given extents, preserving signs.
func (v *PVector) Resize(w, h float64) {
	if v.V.X < 0 {
		w = -w
	}
	if v.V.Y < 0 {
		h = -h
	}
	v.V = V2(w, h)
}

// arrowPolygon builds the arrow-shaped Polygon for the placed vector in
// surface pixel coordinates. Returns nil when the on-screen length is
// visually negligible (under 2 pixels).
func (v *PVector) arrowPolygon() *Polygon {
	tip, tail := v.Tip(), v.Tail
	if cv := v.cv; cv != nil {
		tip = cv.Px(tip.X, tip.Y)
		tail = cv.Px(tail.X, tail.Y)
	}
	if tip.Distance(tail) < 2 {
		return nil
	}
	shape := v.shape
	p, err := NewArrow(tip, tail, shape)
	if err != nil {
		return nil
	}
	fill, hasFill := v.style.Fill()
	if hasFill {
		p.SetFill(fill)
	} else {
		p.NoFill()
	}
	stroke, hasStroke := v.style.Stroke()
	if hasStroke {
		p.SetStroke(stroke)
	} else {
		p.NoStroke()
	}
	p.SetWeight(v.style.Weight())
	return p
}

// ContainsPoint reports whether the point (in surface pixels) hits the
// rendered arrow.
func (v *PVector) ContainsPoint(p Point) bool {
	arrow := v.arrowPolygon()
	if arrow == nil {
		return false
	}
	return arrow.ContainsPoint(p)
}

// Contains reports whether the point in the outer frame hits the arrow.
func (v *PVector) Contains(p Point) bool {
	return v.ContainsPoint(v.toLocal(p))
}

// Draw renders the vector as an arrow onto dst and returns the touched
// rectangle. Vectors shorter than 2 on-screen pixels degenerate to a
// single stroke-colored pixel at the midpoint.
func (v *PVector) Draw(dst *Pixmap, snapshot bool) Rect {
	off := v.drawOffset(snapshot)
	arrow := v.arrowPolygon()
	if arrow == nil {
		c := v.style.stroke
		if !v.style.hasStroke {
			c = v.style.fill
		}
		p := v.CsPos()
		if cv := v.cv; cv != nil {
			p = cv.Px(p.X, p.Y)
		}
		x, y := int(math.Round(p.X+off.X)), int(math.Round(p.Y+off.Y))
		dst.SetPixel(x, y, c)
		return Rect{X: float64(x), Y: float64(y), W: 1, H: 1}
	}
	if !off.IsZero() {
		arrow.SetPos(arrow.Pos().Add(off))
	}
	return arrow.Draw(dst, true)
}
