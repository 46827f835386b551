// Package sketch provides 2D geometric primitives for an educational
// graphics and game toolkit.
//
// # Overview
//
// sketch implements circles, line segments, polygons and placed vectors
// with hit-testing, affine transforms (rotate/resize/reposition) and
// software rasterization into a pixel buffer. Vector diagrams can be
// parsed from text, laid out tip-to-tail and drawn on a coordinate-mapped
// canvas.
//
// # Quick Start
//
//	import "github.com/sketchgo/sketch"
//
//	// A unit square with default styling.
//	p, _ := sketch.NewPolygon([]sketch.Point{
//		{0, 0}, {100, 0}, {100, 100}, {0, 100},
//	})
//	p.SetFill(sketch.Red)
//	p.Rotate(math.Pi / 4)
//
//	// Hit-testing.
//	inside := p.ContainsPoint(sketch.Pt(50, 50))
//
//	// Render and export.
//	pm := sketch.NewPixmap(200, 200)
//	p.Draw(pm, true)
//	pm.SavePNG("square.png")
//
// # Coordinate System
//
// Pixel space uses standard computer graphics coordinates: origin at the
// top left, x increasing right, y increasing down, angles in radians.
// Canvas logical coordinates follow graph-paper conventions (y increasing
// up); the canvas owns the mapping between the two.
//
// Placed vectors (PVector) expose angles in degrees, matching the textual
// vector notation they are parsed from ("3@45" is magnitude 3 at 45°).
//
// # Architecture
//
//   - Geometry kernel: Point, Vec2, Matrix, Rect, Line
//   - Shapes: Circle, Polygon (including arrows), each owning its
//     geometry, hit-testing and cached rendering
//   - Vectors: Vec2 values, placed PVectors, parsing and diagram layout
//   - Raster: Pixmap buffer with fill/stroke primitives built on
//     golang.org/x/image/vector
//   - Display bindings live under integration/
package sketch

// Version is the current version of the library.
const Version = "0.3.0"
