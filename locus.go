package sketch

import "math"

// Locus renders either a literal point list or a parametrically sampled
// curve as a polyline. Points are in logical coordinates and mapped
// through the canvas Px transform when the locus is attached to a canvas.
//
// A locus is pure decoration: it never hit-tests positive and cannot be
// repositioned or resized; its size reports the extent of the last draw.
type Locus struct {
	anchored
	style Style

	pts     []Point
	f       func(t float64) Point
	t0, t1  float64
	samples int

	rect Rect
}

// defaultLocusSamples is the sample count when none is given.
const defaultLocusSamples = 100

// NewLocus creates a locus from a literal point list.
func NewLocus(pts []Point) *Locus {
	return &Locus{style: defaultStyle(), pts: pts}
}

// NewParametricLocus creates a locus sampling f over [t0, t1] with n
// evenly spaced samples. n <= 1 selects the default of 100.
func NewParametricLocus(f func(t float64) Point, t0, t1 float64, n int) *Locus {
	if n <= 1 {
		n = defaultLocusSamples
	}
	return &Locus{style: defaultStyle(), f: f, t0: t0, t1: t1, samples: n}
}

// resolve produces the polyline in surface pixel coordinates.
func (l *Locus) resolve() []Point {
	pts := l.pts
	if l.f != nil {
		pts = make([]Point, l.samples)
		for i := range pts {
			t := l.t0 + (l.t1-l.t0)*float64(i)/float64(l.samples-1)
			pts[i] = l.f(t)
		}
	}
	if l.cv == nil {
		return pts
	}
	mapped := make([]Point, len(pts))
	for i, p := range pts {
		mapped[i] = l.cv.Px(p.X, p.Y)
	}
	return mapped
}

// Stroke returns the stroke color and whether one is set.
func (l *Locus) Stroke() (RGBA, bool) { return l.style.Stroke() }

// SetStroke sets the polyline color.
func (l *Locus) SetStroke(c RGBA) { l.style.setStroke(c) }

// Weight returns the stroke weight.
func (l *Locus) Weight() float64 { return l.style.Weight() }

// SetWeight sets the polyline weight.
func (l *Locus) SetWeight(w float64) { l.style.setWeight(w) }

// Shape interface.

// Pos returns the center of the last drawn extent.
func (l *Locus) Pos() Point { return l.rect.Center() }

// SetPos is a no-op; locus geometry comes from its data.
func (l *Locus) SetPos(Point) {}

// Size returns the extent of the last draw, or zero before any draw.
func (l *Locus) Size() (w, h float64) { return l.rect.W, l.rect.H }

// Resize is a no-op; locus geometry comes from its data.
func (l *Locus) Resize(w, h float64) {}

// ContainsPoint always reports false.
func (l *Locus) ContainsPoint(Point) bool { return false }

// Contains always reports false.
func (l *Locus) Contains(Point) bool { return false }

// Draw strokes the polyline onto dst and returns the touched rectangle,
// inflated by the stroke weight. Fewer than 2 resolvable points draw
// nothing and return an empty rectangle.
func (l *Locus) Draw(dst *Pixmap, snapshot bool) Rect {
	pts := l.resolve()
	if len(pts) < 2 {
		l.rect = Rect{}
		return l.rect
	}
	off := l.drawOffset(snapshot)
	if !off.IsZero() {
		for i := range pts {
			pts[i] = pts[i].Add(off)
		}
	}
	stroke, ok := l.style.Stroke()
	if !ok {
		l.rect = Rect{}
		return l.rect
	}
	w := math.Max(1, math.Round(l.style.Weight()))
	strokePolyline(dst, pts, w, stroke, false)
	l.rect = BoundingRect(pts).Inflate(w, w)
	return l.rect
}
