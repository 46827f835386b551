package sketch

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Software rasterization primitives over Pixmap, built on the
// golang.org/x/image/vector coverage rasterizer. Shapes call these from
// their render methods; nothing here is exported.

// kappa is the cubic Bezier approximation constant for a quarter circle.
const kappa = 0.5522847498307936

// fillSubpaths rasterizes one or more closed subpaths with the non-zero
// winding rule and composites the color onto dst.
func fillSubpaths(dst *Pixmap, subpaths [][]Point, c RGBA) {
	if c.A == 0 {
		return
	}
	z := vector.NewRasterizer(dst.Width(), dst.Height())
	drawn := false
	for _, pts := range subpaths {
		if len(pts) < 3 {
			continue
		}
		z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	blendMask(dst, z, c)
}

// blendMask renders the rasterizer's accumulated coverage into an alpha
// mask and blends the color through it.
func blendMask(dst *Pixmap, z *vector.Rasterizer, c RGBA) {
	mask := image.NewAlpha(z.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.BlendPixel(x, y, c, row[x-b.Min.X])
		}
	}
}

// fillPolygon fills a single closed polygon.
func fillPolygon(dst *Pixmap, pts []Point, c RGBA) {
	fillSubpaths(dst, [][]Point{pts}, c)
}

// segmentQuad returns the four corners of a width-wide quad covering the
// segment from a to b, extended by half the width at both ends so that
// consecutive edges meet without gaps (square caps).
func segmentQuad(a, b Point, width float64) []Point {
	u := b.Sub(a).Normalize()
	if u.IsZero() {
		u = V2(1, 0)
	}
	h := u.Mul(width / 2)
	n := u.Perp().Mul(width / 2)
	a = a.Add(h.Neg())
	b = b.Add(h)
	return []Point{
		a.Add(n), b.Add(n), b.Add(n.Neg()), a.Add(n.Neg()),
	}
}

// strokeSegment strokes a single line segment with the given width.
func strokeSegment(dst *Pixmap, a, b Point, width float64, c RGBA) {
	if width <= 0 {
		return
	}
	fillPolygon(dst, segmentQuad(a, b, width), c)
}

// strokePolyline strokes consecutive segments of an open or closed point
// chain. Each edge is covered by its own quad; the quads are rasterized
// together so overlapping joins do not double-blend.
func strokePolyline(dst *Pixmap, pts []Point, width float64, c RGBA, closed bool) {
	if width <= 0 || len(pts) < 2 {
		return
	}
	var quads [][]Point
	for i := 1; i < len(pts); i++ {
		quads = append(quads, segmentQuad(pts[i-1], pts[i], width))
	}
	if closed {
		quads = append(quads, segmentQuad(pts[len(pts)-1], pts[0], width))
	}
	fillSubpaths(dst, quads, c)
}

// strokePolygon strokes a closed polygon outline.
func strokePolygon(dst *Pixmap, pts []Point, width float64, c RGBA) {
	strokePolyline(dst, pts, width, c, true)
}

// fillCircle fills a disk using a four-segment cubic Bezier approximation.
func fillCircle(dst *Pixmap, center Point, r float64, c RGBA) {
	if c.A == 0 || r <= 0 {
		return
	}
	z := vector.NewRasterizer(dst.Width(), dst.Height())
	cx, cy := center.X, center.Y
	k := kappa * r
	move := func(x, y float64) { z.MoveTo(float32(x), float32(y)) }
	cube := func(x1, y1, x2, y2, x3, y3 float64) {
		z.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
	}
	move(cx+r, cy)
	cube(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	cube(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	cube(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	cube(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
	blendMask(dst, z, c)
}

// weightPad converts a stroke weight to the integer pixel padding a
// rendered image reserves on each side.
func weightPad(weight float64) int {
	return int(math.Ceil(weight))
}
