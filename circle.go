package sketch

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Circle is a radius-defined shape centered on its position.
// The rendered image is cached and invalidated when the radius or any
// style attribute changes.
type Circle struct {
	anchored
	style Style

	pos    Point
	radius float64
	img    *Pixmap
}

// NewCircle creates a circle with the given radius, centered at the origin.
func NewCircle(r float64) (*Circle, error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: circle radius must be positive", ErrDegenerate)
	}
	return &Circle{style: defaultStyle(), radius: r}, nil
}

// Radius returns the circle radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// SetRadius changes the radius and invalidates the rendered image.
func (c *Circle) SetRadius(r float64) {
	c.radius = r
	c.img = nil
}

// Pos returns the center position.
func (c *Circle) Pos() Point {
	return c.pos
}

// SetPos moves the center. The cached image stays valid; only the blit
// position changes.
func (c *Circle) SetPos(p Point) {
	c.pos = p
}

// Size returns the square image extent, ceil(2*radius) in both dimensions.
func (c *Circle) Size() (w, h float64) {
	d := math.Ceil(2 * c.radius)
	return d, d
}

// Resize sets the radius from the smaller of the requested extents.
func (c *Circle) Resize(w, h float64) {
	c.SetRadius(math.Min(w, h) / 2)
}

// ContainsPoint reports whether the point is strictly inside the circle
// in the local frame.
func (c *Circle) ContainsPoint(p Point) bool {
	return c.pos.Distance(p) < c.radius
}

// Contains reports whether the point (in the outer frame) is inside.
func (c *Circle) Contains(p Point) bool {
	return c.ContainsPoint(c.toLocal(p))
}

// Style accessors.

// Fill returns the fill color and whether one is set.
func (c *Circle) Fill() (RGBA, bool) { return c.style.Fill() }

// Stroke returns the stroke color and whether one is set.
func (c *Circle) Stroke() (RGBA, bool) { return c.style.Stroke() }

// Weight returns the stroke weight.
func (c *Circle) Weight() float64 { return c.style.Weight() }

// SetFill sets the fill color and invalidates the rendered image.
func (c *Circle) SetFill(col RGBA) {
	c.style.setFill(col)
	c.img = nil
}

// NoFill removes the fill and invalidates the rendered image.
func (c *Circle) NoFill() {
	c.style.clearFill()
	c.img = nil
}

// SetStroke sets the stroke color and invalidates the rendered image.
func (c *Circle) SetStroke(col RGBA) {
	c.style.setStroke(col)
	c.img = nil
}

// NoStroke removes the stroke and invalidates the rendered image.
func (c *Circle) NoStroke() {
	c.style.clearStroke()
	c.img = nil
}

// SetWeight sets the stroke weight and invalidates the rendered image.
func (c *Circle) SetWeight(w float64) {
	c.style.setWeight(w)
	c.img = nil
}

// Image returns the cached rendered image, rendering it if needed.
func (c *Circle) Image() *Pixmap {
	if c.img == nil {
		c.img = c.Render()
	}
	return c.img
}

// Render rasterizes the circle into a buffer sized to ceil(2*radius).
// The stroke is drawn first as a full stroke-colored disk, then an inset
// disk (radius reduced by the weight) is drawn on top: with a fill color
// this fills the interior, without one it is punched out, leaving a ring.
// This computes a ring without needing a dedicated stroke-only primitive.
func (c *Circle) Render() *Pixmap {
	d := int(math.Ceil(2 * c.radius))
	pm := NewPixmap(d, d)
	r := math.Round(c.radius)
	center := Pt(r, r)
	w := c.style.Weight()

	if stroke, ok := c.style.Stroke(); ok && w > 0 {
		fillCircle(pm, center, r, stroke)
	}
	inner := r - w
	if fill, ok := c.style.Fill(); ok {
		fillCircle(pm, center, inner, fill)
	} else if w > 0 {
		eraseCircle(pm, center, inner)
	}
	return pm
}

// eraseCircle clears a disk back to transparency, used to cut the ring
// interior when the circle has a stroke but no fill.
func eraseCircle(dst *Pixmap, center Point, r float64) {
	if r <= 0 {
		return
	}
	z := vector.NewRasterizer(dst.Width(), dst.Height())
	cx, cy := center.X, center.Y
	k := kappa * r
	z.MoveTo(float32(cx+r), float32(cy))
	z.CubeTo(float32(cx+r), float32(cy+k), float32(cx+k), float32(cy+r), float32(cx), float32(cy+r))
	z.CubeTo(float32(cx-k), float32(cy+r), float32(cx-r), float32(cy+k), float32(cx-r), float32(cy))
	z.CubeTo(float32(cx-r), float32(cy-k), float32(cx-k), float32(cy-r), float32(cx), float32(cy-r))
	z.CubeTo(float32(cx+k), float32(cy-r), float32(cx+r), float32(cy-k), float32(cx+r), float32(cy))
	z.ClosePath()

	mask := image.NewAlpha(z.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			cov := row[x-b.Min.X]
			if cov == 0 {
				continue
			}
			px := dst.GetPixel(x, y)
			px.A *= 1 - float64(cov)/255
			if px.A == 0 {
				dst.SetPixel(x, y, Transparent)
			} else {
				dst.SetPixel(x, y, px)
			}
		}
	}
}

// Draw composites the cached image centered on the position and returns
// the touched rectangle.
func (c *Circle) Draw(dst *Pixmap, snapshot bool) Rect {
	img := c.Image()
	off := c.drawOffset(snapshot)
	tl := Pt(c.pos.X+off.X-float64(img.Width())/2, c.pos.Y+off.Y-float64(img.Height())/2)
	dst.Blit(img, int(math.Round(tl.X)), int(math.Round(tl.Y)))
	return Rect{X: tl.X, Y: tl.Y, W: float64(img.Width()), H: float64(img.Height())}
}
