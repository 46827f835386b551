// Package ebitencanvas presents a sketch.Canvas in a desktop window using
// Ebitengine, and implements drag interaction for vectors marked
// draggable. The binding is deliberately thin: the canvas renders itself
// into a pixmap each frame and the package only moves pixels and mouse
// events across the boundary.
package ebitencanvas

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sketchgo/sketch"
)

// Show opens a window sized to the canvas and runs the display loop until
// the window is closed.
func Show(cv *sketch.Canvas, title string) error {
	ebiten.SetWindowSize(cv.Width(), cv.Height())
	ebiten.SetWindowTitle(title)
	sketch.Logger().Info("ebitencanvas window opened",
		slog.Int("width", cv.Width()), slog.Int("height", cv.Height()))
	return ebiten.RunGame(&game{cv: cv})
}

// game adapts a canvas to the ebiten.Game interface.
type game struct {
	cv    *sketch.Canvas
	frame *ebiten.Image

	dragging *sketch.PVector
	lastX    int
	lastY    int
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = g.pick(x, y)
		g.lastX, g.lastY = x, y
	}
	if g.dragging != nil {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.dragging = nil
		} else if x != g.lastX || y != g.lastY {
			// Pixel delta to logical delta: x scales by the unit,
			// y additionally flips.
			dx := float64(x-g.lastX) / g.cv.Unit()
			dy := -float64(y-g.lastY) / g.cv.Unit()
			g.dragging.Tail = g.dragging.Tail.Add(sketch.V2(dx, dy))
			g.lastX, g.lastY = x, y
		}
	}
	return nil
}

// pick returns the topmost draggable vector under the cursor.
func (g *game) pick(x, y int) *sketch.PVector {
	vs := g.cv.Vectors()
	for i := len(vs) - 1; i >= 0; i-- {
		v := vs[i]
		if v.Draggable() && v.ContainsPoint(sketch.Pt(float64(x), float64(y))) {
			return v
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	pm := g.cv.Render()
	if g.frame == nil {
		g.frame = ebiten.NewImage(pm.Width(), pm.Height())
	}
	g.frame.WritePixels(premultiply(pm.Data()))
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cv.Width(), g.cv.Height()
}

// premultiply converts straight-alpha RGBA bytes to the premultiplied
// form WritePixels expects.
func premultiply(data []uint8) []uint8 {
	out := make([]uint8, len(data))
	for i := 0; i < len(data); i += 4 {
		a := uint32(data[i+3])
		out[i+0] = uint8(uint32(data[i+0]) * a / 255)
		out[i+1] = uint8(uint32(data[i+1]) * a / 255)
		out[i+2] = uint8(uint32(data[i+2]) * a / 255)
		out[i+3] = uint8(a)
	}
	return out
}
