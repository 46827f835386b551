package sketch

import (
	"log/slog"
	"math"
)

// Canvas is a drawing surface with a logical coordinate system. Logical
// coordinates follow graph-paper conventions (y increasing up); the
// canvas maps them onto its pixel buffer through the Px transform.
//
// Shapes added to a canvas are drawn over a base layer holding the
// background and any flattened content. The canvas itself satisfies
// Shape, so canvases can be composited onto a parent surface at an
// origin offset (simple parent/child compositing, nothing more).
type Canvas struct {
	width  int
	height int
	lrbt   [4]float64 // left, right, bottom, top
	sx, sy float64    // pixels per logical unit
	origin Point

	bg     RGBA
	base   *Pixmap
	shapes []Shape
}

// NewCanvas creates a canvas width pixels wide whose logical coordinate
// range is lrbt (left, right, bottom, top). The pixel height follows
// from the logical aspect ratio.
func NewCanvas(width int, lrbt [4]float64, bg RGBA) *Canvas {
	left, right, bottom, top := lrbt[0], lrbt[1], lrbt[2], lrbt[3]
	sx := float64(width) / (right - left)
	height := int(math.Round(sx * (top - bottom)))
	if height < 1 {
		height = 1
	}
	sy := float64(height) / (top - bottom)
	cv := &Canvas{
		width:  width,
		height: height,
		lrbt:   lrbt,
		sx:     sx,
		sy:     sy,
		bg:     bg,
	}
	cv.base = NewPixmap(width, height)
	cv.base.Clear(bg)
	return cv
}

// Width returns the pixel width.
func (cv *Canvas) Width() int { return cv.width }

// Height returns the pixel height.
func (cv *Canvas) Height() int { return cv.height }

// Unit returns the number of pixels per logical unit along x.
func (cv *Canvas) Unit() float64 { return cv.sx }

// Origin returns the canvas position within its parent surface.
func (cv *Canvas) Origin() Point { return cv.origin }

// SetOrigin places the canvas within its parent surface.
func (cv *Canvas) SetOrigin(p Point) { cv.origin = p }

// Px maps logical coordinates to canvas pixel coordinates (y flipped).
func (cv *Canvas) Px(x, y float64) Point {
	return Pt((x-cv.lrbt[0])*cv.sx, (cv.lrbt[3]-y)*cv.sy)
}

// Logical maps canvas pixel coordinates back to logical coordinates.
func (cv *Canvas) Logical(sx, sy float64) Point {
	return Pt(cv.lrbt[0]+sx/cv.sx, cv.lrbt[3]-sy/cv.sy)
}

// Add attaches shapes to the canvas. Attached shapes resolve Contains in
// the parent frame using the canvas origin, and vectors and loci map
// their geometry through Px.
func (cv *Canvas) Add(shapes ...Shape) {
	for _, s := range shapes {
		if a, ok := s.(attachable); ok {
			a.setCanvas(cv)
		}
		cv.shapes = append(cv.shapes, s)
	}
}

// Shapes returns the currently attached shapes in draw order.
func (cv *Canvas) Shapes() []Shape {
	return cv.shapes
}

// Vectors returns the attached PVectors in draw order.
func (cv *Canvas) Vectors() []*PVector {
	var vs []*PVector
	for _, s := range cv.shapes {
		if v, ok := s.(*PVector); ok {
			vs = append(vs, v)
		}
	}
	return vs
}

// Gridlines strokes vertical and horizontal grid lines into the base
// layer across the logical range lrbt at the given logical step.
func (cv *Canvas) Gridlines(lrbt [4]float64, step float64, stroke RGBA, weight float64) {
	if step <= 0 {
		Logger().Warn("gridlines skipped", slog.Float64("step", step))
		return
	}
	left, right, bottom, top := lrbt[0], lrbt[1], lrbt[2], lrbt[3]
	for x := left; x <= right+resolution; x += step {
		a := cv.Px(x, bottom)
		b := cv.Px(x, top)
		strokeSegment(cv.base, a, b, weight, stroke)
	}
	for y := bottom; y <= top+resolution; y += step {
		a := cv.Px(left, y)
		b := cv.Px(right, y)
		strokeSegment(cv.base, a, b, weight, stroke)
	}
}

// Render draws the base layer and every attached shape into a fresh
// pixmap in canvas-local coordinates.
func (cv *Canvas) Render() *Pixmap {
	pm := cv.base.Clone()
	for _, s := range cv.shapes {
		s.Draw(pm, true)
	}
	return pm
}

// Snapshot is an alias for Render, matching the snapshot draw mode.
func (cv *Canvas) Snapshot() *Pixmap {
	return cv.Render()
}

// Flatten bakes the attached shapes into the base layer and detaches
// them, trading re-render cost for a static background.
func (cv *Canvas) Flatten() {
	cv.base = cv.Render()
	cv.shapes = nil
}

// Shape interface, for parent/child compositing.

// Pos returns the canvas origin within its parent.
func (cv *Canvas) Pos() Point { return cv.origin }

// SetPos moves the canvas within its parent.
func (cv *Canvas) SetPos(p Point) { cv.origin = p }

// Size returns the pixel dimensions.
func (cv *Canvas) Size() (w, h float64) {
	return float64(cv.width), float64(cv.height)
}

// Resize is not supported for canvases; the coordinate mapping is fixed
// at construction. It is a no-op.
func (cv *Canvas) Resize(w, h float64) {}

// ContainsPoint reports whether the point lies on the canvas area in
// canvas-local pixels.
func (cv *Canvas) ContainsPoint(p Point) bool {
	return p.X >= 0 && p.X < float64(cv.width) && p.Y >= 0 && p.Y < float64(cv.height)
}

// Contains reports whether the point in the parent frame lies on the
// canvas area.
func (cv *Canvas) Contains(p Point) bool {
	return cv.ContainsPoint(Pt(p.X-cv.origin.X, p.Y-cv.origin.Y))
}

// Draw composites the rendered canvas onto dst at the origin offset and
// returns the touched rectangle.
func (cv *Canvas) Draw(dst *Pixmap, snapshot bool) Rect {
	pm := cv.Render()
	x, y := 0.0, 0.0
	if !snapshot {
		x, y = cv.origin.X, cv.origin.Y
	}
	dst.Blit(pm, int(math.Round(x)), int(math.Round(y)))
	return Rect{X: x, Y: y, W: float64(pm.Width()), H: float64(pm.Height())}
}
