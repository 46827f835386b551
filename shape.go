package sketch

// Shape is the contract every drawable primitive satisfies.
//
// Positions are anchor points: the center for circles, the configured
// anchor for polygons, the start point for lines. Contains works in the
// outer (surface) frame and accounts for the canvas origin when the shape
// is attached to a canvas; ContainsPoint works in the shape's own frame.
type Shape interface {
	Pos() Point
	SetPos(Point)
	Size() (w, h float64)
	Resize(w, h float64)
	Contains(p Point) bool
	ContainsPoint(p Point) bool

	// Draw renders the shape onto dst and returns the touched rectangle
	// for dirty-rect tracking. In snapshot mode the canvas origin offset
	// is ignored so the shape lands in canvas-local coordinates.
	Draw(dst *Pixmap, snapshot bool) Rect
}

// attachable is implemented by shapes that can be bound to a Canvas.
type attachable interface {
	setCanvas(cv *Canvas)
}

// anchored carries the canvas binding shared by all shapes.
type anchored struct {
	cv *Canvas
}

func (a *anchored) setCanvas(cv *Canvas) { a.cv = cv }

// Canvas returns the canvas the shape is attached to, or nil.
func (a *anchored) Canvas() *Canvas { return a.cv }

// toLocal converts a point from the outer frame into the canvas-local
// frame by removing the canvas origin offset.
func (a *anchored) toLocal(p Point) Point {
	if a.cv == nil {
		return p
	}
	o := a.cv.Origin()
	return Pt(p.X-o.X, p.Y-o.Y)
}

// drawOffset is the displacement applied when compositing onto the parent
// surface. Snapshot mode draws in canvas-local coordinates.
func (a *anchored) drawOffset(snapshot bool) Vec2 {
	if snapshot || a.cv == nil {
		return Vec2{}
	}
	o := a.cv.Origin()
	return V2(o.X, o.Y)
}
