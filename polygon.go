package sketch

import (
	"fmt"
	"math"
)

// rayJitter is the deterministic fractional y-offset applied to the far
// end of the parity-test ray. It replaces a random jitter serving the
// same purpose: a ray cast to an exact-integer coordinate can pass
// exactly through a vertex, which breaks the crossing count. An
// irrational fraction cannot coincide with any vertex that shares the
// ray origin's coordinate grid.
const rayJitter = 0.6180339887498949

// Polygon is a closed shape defined by an ordered vertex list (at least
// three vertices) and an anchor point used for position reporting and as
// the rotation pivot.
//
// The rendered image and the boundary segment list are cached and rebuilt
// lazily; every mutation (rotate, resize, reposition, style change that
// affects geometry) reconstructs the polygon from scratch rather than
// patching state in place.
type Polygon struct {
	anchored
	style Style

	vertices []Point
	pos      Point
	rect     Rect
	angle    float64

	img  *Pixmap
	segs []*Line
}

// PolygonOption configures polygon construction.
type PolygonOption func(*polygonConfig)

type polygonConfig struct {
	anchor    Point
	useAnchor bool
	vertex    int
	useVertex bool
}

// WithAnchor anchors the polygon at an explicit point.
func WithAnchor(p Point) PolygonOption {
	return func(c *polygonConfig) {
		c.anchor = p
		c.useAnchor = true
	}
}

// WithAnchorVertex anchors the polygon at one of its own vertices.
func WithAnchorVertex(i int) PolygonOption {
	return func(c *polygonConfig) {
		c.vertex = i
		c.useVertex = true
	}
}

// NewPolygon creates a polygon from an ordered vertex list. Without an
// anchor option the anchor defaults to the center of the bounding box.
func NewPolygon(pts []Point, opts ...PolygonOption) (*Polygon, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrDegenerate, len(pts))
	}
	var cfg polygonConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Polygon{style: defaultStyle()}
	var anchor Point
	switch {
	case cfg.useAnchor:
		anchor = cfg.anchor
	case cfg.useVertex:
		if cfg.vertex < 0 || cfg.vertex >= len(pts) {
			return nil, fmt.Errorf("sketch: anchor vertex %d out of range", cfg.vertex)
		}
		anchor = pts[cfg.vertex]
	default:
		anchor = BoundingRect(pts).Center()
	}
	p.rebuild(pts, anchor)
	return p, nil
}

// rebuild is the single reconstruction path shared by the constructor and
// every mutator: recompute the bounding rect, install the vertex list,
// and drop all caches.
func (p *Polygon) rebuild(pts []Point, anchor Point) {
	p.vertices = pts
	p.pos = anchor
	p.rect = BoundingRect(pts)
	p.invalidate()
}

// invalidate drops the cached image and segment list.
func (p *Polygon) invalidate() {
	p.img = nil
	p.segs = nil
}

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() []Point {
	out := make([]Point, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Pos returns the anchor point.
func (p *Polygon) Pos() Point {
	return p.pos
}

// SetPos translates the polygon so its anchor is at pos.
func (p *Polygon) SetPos(pos Point) {
	d := pos.Sub(p.pos)
	pts := make([]Point, len(p.vertices))
	for i, v := range p.vertices {
		pts[i] = v.Add(d)
	}
	p.rebuild(pts, pos)
}

// Center returns the center of the bounding rectangle.
func (p *Polygon) Center() Point {
	return p.rect.Center()
}

// Size returns the bounding rectangle extents.
func (p *Polygon) Size() (w, h float64) {
	return p.rect.W, p.rect.H
}

// Angle returns the cumulative rotation applied through Rotate, in radians.
func (p *Polygon) Angle() float64 {
	return p.angle
}

// Segments returns the boundary edges as Line segments, consecutive
// vertices wrapping last to first. The list is cached until the next
// mutation.
func (p *Polygon) Segments() []*Line {
	if p.segs == nil {
		p.segs = p.buildSegments()
	}
	return p.segs
}

func (p *Polygon) buildSegments() []*Line {
	segs := make([]*Line, 0, len(p.vertices))
	prev := p.vertices[len(p.vertices)-1]
	for _, v := range p.vertices {
		if seg, err := NewSegment(prev, v); err == nil {
			segs = append(segs, seg)
		}
		prev = v
	}
	return segs
}

// ContainsPoint reports whether the point lies inside the polygon, using
// a parity ray cast: count boundary crossings of a segment from the point
// to a point safely outside the bounding rect. An odd count means inside.
// The far endpoint carries a fixed fractional y-offset so the ray cannot
// pass exactly through a vertex.
func (p *Polygon) ContainsPoint(pos Point) bool {
	far := Pt(p.rect.X+p.rect.W+2*p.style.Weight(), p.rect.Y+p.rect.H+rayJitter)
	ray, err := NewSegment(pos, far)
	if err != nil {
		return false
	}
	n := 0
	for _, s := range p.Segments() {
		if s.Intersect(ray).Kind != IntersectNone {
			n++
		}
	}
	return n%2 == 1
}

// Contains reports whether the point (in the outer frame) is inside.
func (p *Polygon) Contains(pos Point) bool {
	return p.ContainsPoint(p.toLocal(pos))
}

// Rotate rotates every vertex rigidly around the anchor point by angle
// radians and reconstructs the polygon. The cumulative angle is tracked.
func (p *Polygon) Rotate(angle float64) {
	m := RotateAbout(angle, p.pos)
	pts := make([]Point, len(p.vertices))
	for i, v := range p.vertices {
		pts[i] = m.TransformPoint(v)
	}
	p.rebuild(pts, p.pos)
	p.angle += angle
}

// SetAngle rotates the polygon to an absolute cumulative angle.
func (p *Polygon) SetAngle(a float64) {
	p.Rotate(a - p.angle)
}

// Resize scales the polygon so its bounding box has the given extents.
// Independent x and y factors are applied to every vertex and to the
// anchor, so the polygon also moves when it is not anchored at the origin.
func (p *Polygon) Resize(w, h float64) {
	cw, ch := p.Size()
	if cw == 0 || ch == 0 {
		return
	}
	fx, fy := w/cw, h/ch
	pts := make([]Point, len(p.vertices))
	for i, v := range p.vertices {
		pts[i] = Pt(fx*v.X, fy*v.Y)
	}
	p.rebuild(pts, Pt(fx*p.pos.X, fy*p.pos.Y))
}

// Style accessors.

// Fill returns the fill color and whether one is set.
func (p *Polygon) Fill() (RGBA, bool) { return p.style.Fill() }

// Stroke returns the stroke color and whether one is set.
func (p *Polygon) Stroke() (RGBA, bool) { return p.style.Stroke() }

// Weight returns the stroke weight.
func (p *Polygon) Weight() float64 { return p.style.Weight() }

// SetFill sets the fill color and invalidates the rendered image.
func (p *Polygon) SetFill(c RGBA) {
	p.style.setFill(c)
	p.img = nil
}

// NoFill removes the fill and invalidates the rendered image.
func (p *Polygon) NoFill() {
	p.style.clearFill()
	p.img = nil
}

// SetStroke sets the stroke color and invalidates the rendered image.
func (p *Polygon) SetStroke(c RGBA) {
	p.style.setStroke(c)
	p.img = nil
}

// NoStroke removes the stroke and invalidates the rendered image.
func (p *Polygon) NoStroke() {
	p.style.clearStroke()
	p.img = nil
}

// SetWeight sets the stroke weight. The weight changes both the rendered
// image and the hit tolerance of the boundary, so the image cache is
// invalidated.
func (p *Polygon) SetWeight(w float64) {
	p.style.setWeight(w)
	p.img = nil
}

// Image returns the cached rendered image, rendering it if needed.
func (p *Polygon) Image() *Pixmap {
	if p.img == nil {
		p.img = p.Render()
	}
	return p.img
}

// Render rasterizes the polygon into a fresh buffer sized to the bounding
// box plus stroke-weight padding on each side, with vertices translated
// into buffer-local space. Fill is drawn first, then the outline.
func (p *Polygon) Render() *Pixmap {
	pad := weightPad(p.style.Weight())
	w := int(math.Ceil(p.rect.W)) + 2*pad
	h := int(math.Ceil(p.rect.H)) + 2*pad
	pm := NewPixmap(w, h)

	d := V2(float64(pad)-p.rect.X, float64(pad)-p.rect.Y)
	pts := make([]Point, len(p.vertices))
	for i, v := range p.vertices {
		pts[i] = v.Add(d)
	}
	if fill, ok := p.style.Fill(); ok {
		fillPolygon(pm, pts, fill)
	}
	if stroke, ok := p.style.Stroke(); ok && p.style.Weight() > 0 {
		strokePolygon(pm, pts, p.style.Weight(), stroke)
	}
	return pm
}

// blitPosition returns the top-left corner at which the rendered image is
// composited, accounting for the stroke padding.
func (p *Polygon) blitPosition(off Vec2) Point {
	pad := float64(weightPad(p.style.Weight()))
	return Pt(p.rect.X+off.X-pad, p.rect.Y+off.Y-pad)
}

// Draw composites the cached image onto dst and returns the touched rect.
func (p *Polygon) Draw(dst *Pixmap, snapshot bool) Rect {
	img := p.Image()
	tl := p.blitPosition(p.drawOffset(snapshot))
	dst.Blit(img, int(math.Round(tl.X)), int(math.Round(tl.Y)))
	return Rect{X: tl.X, Y: tl.Y, W: float64(img.Width()), H: float64(img.Height())}
}
