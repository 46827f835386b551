package sketch

import (
	"errors"
	"fmt"
	"math"
)

// resolution is the perpendicular-distance tolerance below which two
// parallel lines are considered collinear.
const resolution = 1e-10

// ErrDegenerate is returned when a constructor receives geometry with no
// extent, such as a segment with coincident endpoints.
var ErrDegenerate = errors.New("sketch: degenerate geometry")

// Line represents a straight line or a line segment: an anchor point, a
// unit direction, and a scalar length. An infinite length (math.Inf(1))
// marks a full line; a finite length marks a segment from the anchor.
type Line struct {
	anchored
	style Style

	pos    Point
	u      Vec2 // unit direction
	length float64
}

// NewSegment creates a finite segment between two points.
// The endpoints must not coincide.
func NewSegment(start, end Point) (*Line, error) {
	d := end.Sub(start)
	length := d.Length()
	if length == 0 {
		return nil, fmt.Errorf("%w: segment endpoints coincide at (%g, %g)", ErrDegenerate, start.X, start.Y)
	}
	return &Line{
		style:  defaultStyle(),
		pos:    start,
		u:      d.Div(length),
		length: length,
	}, nil
}

// NewLine creates an infinite line through start in the given direction.
// The direction must be nonzero.
func NewLine(start Point, dir Vec2) (*Line, error) {
	if dir.IsZero() {
		return nil, fmt.Errorf("%w: zero direction vector", ErrDegenerate)
	}
	return &Line{
		style:  defaultStyle(),
		pos:    start,
		u:      dir.Normalize(),
		length: math.Inf(1),
	}, nil
}

// NewSlope creates an infinite line through start with the given slope
// dy/dx.
func NewSlope(start Point, slope float64) *Line {
	l, _ := NewLine(start, V2(1, slope))
	return l
}

// IsSegment reports whether the line is a bounded segment.
func (l *Line) IsSegment() bool {
	return !math.IsInf(l.length, 1)
}

// U returns the unit direction vector.
func (l *Line) U() Vec2 {
	return l.u
}

// Length returns the segment length, or +Inf for a full line.
func (l *Line) Length() float64 {
	return l.length
}

// PointAt returns the point at signed distance s from the anchor.
func (l *Line) PointAt(s float64) Point {
	return l.pos.Add(l.u.Mul(s))
}

// Midpoint returns the midpoint of a segment.
func (l *Line) Midpoint() Point {
	return l.PointAt(l.length / 2)
}

// Parameters decomposes p - pos into a component s along the direction u
// and a component d along the perpendicular n = rotate90(u), so that
// p = pos + s*u + d*n. This is the workhorse for hit-testing and
// intersection.
func (l *Line) Parameters(p Point) (s, d float64) {
	dx := p.X - l.pos.X
	dy := p.Y - l.pos.Y
	s = l.u.X*dx + l.u.Y*dy
	d = l.u.X*dy - l.u.Y*dx
	return s, d
}

// Closest returns the point on the line or segment closest to p.
// For segments the projection parameter is clamped to [0, length].
func (l *Line) Closest(p Point) Point {
	s, _ := l.Parameters(p)
	if l.IsSegment() {
		if s < 0 {
			s = 0
		} else if s > l.length {
			s = l.length
		}
	}
	return l.PointAt(s)
}

// IntersectionKind classifies the result of intersecting two lines.
type IntersectionKind int

const (
	// IntersectNone means the operands do not meet.
	IntersectNone IntersectionKind = iota
	// IntersectPoint means the operands meet at a single point. For
	// collinear overlapping segments this is the overlap midpoint.
	IntersectPoint
	// IntersectEverywhere means two coincident infinite lines; there is
	// no unique intersection point.
	IntersectEverywhere
)

// Intersection is the result of Line.Intersect.
type Intersection struct {
	Kind IntersectionKind
	P    Point
}

// Intersect finds the intersection of two lines or segments.
//
// Non-parallel operands are solved as a 2x2 linear system; the solution
// is accepted only if each finite operand's parameter lies within its own
// [0, length] bound. Parallel operands intersect only if collinear within
// the resolution tolerance: two overlapping segments yield the midpoint
// of the overlap interval, a segment on an infinite line yields the
// segment midpoint, and two coincident infinite lines intersect
// everywhere.
func (l *Line) Intersect(other *Line) Intersection {
	u1, u2 := l.u, other.u
	det := u2.X*u1.Y - u1.X*u2.Y
	if det != 0 {
		dx := other.pos.X - l.pos.X
		dy := other.pos.Y - l.pos.Y
		s1 := (u2.X*dy - u2.Y*dx) / det
		if !l.IsSegment() || (s1 >= 0 && s1 <= l.length) {
			s2 := (u1.X*dy - u1.Y*dx) / det
			if !other.IsSegment() || (s2 >= 0 && s2 <= other.length) {
				return Intersection{Kind: IntersectPoint, P: l.PointAt(s1)}
			}
		}
		return Intersection{}
	}

	// Parallel: collinear only if the other anchor sits within the
	// perpendicular tolerance of this line.
	s0, d := l.Parameters(other.PointAt(0))
	if math.Abs(d) > resolution {
		return Intersection{}
	}
	if !l.IsSegment() {
		if !other.IsSegment() {
			return Intersection{Kind: IntersectEverywhere}
		}
		return Intersection{Kind: IntersectPoint, P: other.Midpoint()}
	}
	if !other.IsSegment() {
		return Intersection{Kind: IntersectPoint, P: l.Midpoint()}
	}

	// Both segments: intersect the parametric ranges along this line.
	s1, _ := l.Parameters(other.PointAt(other.length))
	lo, hi := math.Min(s0, s1), math.Max(s0, s1)
	lo = math.Max(0, lo)
	hi = math.Min(l.length, hi)
	if hi >= lo {
		return Intersection{Kind: IntersectPoint, P: l.PointAt((lo + hi) / 2)}
	}
	return Intersection{}
}

// ContainsPoint reports whether p lies on the stroked line in the local
// frame: perpendicular distance at most 1 + weight/2.
func (l *Line) ContainsPoint(p Point) bool {
	_, d := l.Parameters(p)
	return math.Abs(d) <= 1+l.style.Weight()/2
}

// Contains reports whether p (in the outer frame) hits the stroked line.
func (l *Line) Contains(p Point) bool {
	return l.ContainsPoint(l.toLocal(p))
}

// Pos returns the anchor (start) point.
func (l *Line) Pos() Point {
	return l.pos
}

// SetPos translates the line so its anchor is at p.
func (l *Line) SetPos(p Point) {
	l.pos = p
}

// Size returns the bounding-box extent of a segment.
func (l *Line) Size() (w, h float64) {
	if !l.IsSegment() {
		return 0, 0
	}
	return math.Abs(l.u.X) * l.length, math.Abs(l.u.Y) * l.length
}

// Resize rebuilds the segment with the given bounding-box extents,
// preserving the anchor and the direction signs.
func (l *Line) Resize(w, h float64) {
	dx, dy := w, h
	if l.u.X < 0 {
		dx = -dx
	}
	if l.u.Y < 0 {
		dy = -dy
	}
	d := V2(dx, dy)
	if d.IsZero() {
		return
	}
	l.u = d.Normalize()
	l.length = d.Length()
}

// Style accessors. Lines have no fill; only stroke and weight apply.

// Stroke returns the stroke color and whether one is set.
func (l *Line) Stroke() (RGBA, bool) { return l.style.Stroke() }

// Weight returns the stroke weight.
func (l *Line) Weight() float64 { return l.style.Weight() }

// SetStroke sets the stroke color.
func (l *Line) SetStroke(c RGBA) { l.style.setStroke(c) }

// NoStroke removes the stroke.
func (l *Line) NoStroke() { l.style.clearStroke() }

// SetWeight sets the stroke weight in pixels.
func (l *Line) SetWeight(w float64) { l.style.setWeight(w) }

// Draw strokes the line onto dst and returns the touched rectangle.
// Infinite lines are clipped to the destination bounds.
func (l *Line) Draw(dst *Pixmap, snapshot bool) Rect {
	stroke, ok := l.style.Stroke()
	if !ok {
		return Rect{}
	}
	off := l.drawOffset(snapshot)
	a, b, ok := l.endpoints(dst)
	if !ok {
		return Rect{}
	}
	a = a.Add(off)
	b = b.Add(off)
	w := math.Max(1, math.Round(l.style.Weight()))
	strokeSegment(dst, a, b, w, stroke)
	return RectFrom(a, b).Inflate(w, w)
}

// endpoints resolves the drawable extent: the segment endpoints, or the
// parameter range where an infinite line crosses the pixmap bounds.
func (l *Line) endpoints(dst *Pixmap) (Point, Point, bool) {
	if l.IsSegment() {
		return l.PointAt(0), l.PointAt(l.length), true
	}
	w := float64(dst.Width())
	h := float64(dst.Height())
	smin, smax := math.Inf(1), math.Inf(-1)
	consider := func(s float64) {
		p := l.PointAt(s)
		if p.X >= -1 && p.X <= w+1 && p.Y >= -1 && p.Y <= h+1 {
			smin = math.Min(smin, s)
			smax = math.Max(smax, s)
		}
	}
	if l.u.X != 0 {
		consider((0 - l.pos.X) / l.u.X)
		consider((w - l.pos.X) / l.u.X)
	}
	if l.u.Y != 0 {
		consider((0 - l.pos.Y) / l.u.Y)
		consider((h - l.pos.Y) / l.u.Y)
	}
	if smin > smax {
		return Point{}, Point{}, false
	}
	return l.PointAt(smin), l.PointAt(smax), true
}
