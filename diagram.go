package sketch

import "math"

// componentCutoff suppresses the component overlay when one component is
// visually negligible: smaller magnitude under 1/500 of the larger.
const componentCutoff = 500.0

// Diagram is a composed vector diagram: a coordinate-mapped canvas with
// an optional grid, the vectors themselves, optional component overlays,
// and an optional resultant.
type Diagram struct {
	*Canvas

	Vectors   []*PVector
	Resultant *PVector
}

// DiagramOption configures diagram composition.
type DiagramOption func(*diagramConfig)

type diagramConfig struct {
	bg             RGBA
	gridStep       float64
	grid           bool
	components     bool
	componentColor RGBA
	resultant      bool
	resultantColor RGBA
	draggable      bool
	flatten        bool
}

func defaultDiagramConfig() diagramConfig {
	return diagramConfig{
		bg:             White,
		gridStep:       1,
		grid:           true,
		componentColor: Yellow,
		resultant:      true,
		resultantColor: Blue,
		flatten:        true,
	}
}

// WithBackground sets the canvas background color.
func WithBackground(c RGBA) DiagramOption {
	return func(cfg *diagramConfig) { cfg.bg = c }
}

// WithGridStep sets the grid spacing in logical units.
func WithGridStep(step float64) DiagramOption {
	return func(cfg *diagramConfig) { cfg.gridStep = step }
}

// WithoutGrid disables the grid.
func WithoutGrid() DiagramOption {
	return func(cfg *diagramConfig) { cfg.grid = false }
}

// WithComponents overlays each vector's x/y component decomposition.
func WithComponents() DiagramOption {
	return func(cfg *diagramConfig) { cfg.components = true }
}

// WithoutResultant suppresses the resultant (sum) vector.
func WithoutResultant() DiagramOption {
	return func(cfg *diagramConfig) { cfg.resultant = false }
}

// WithDraggable marks every vector for drag interaction.
func WithDraggable() DiagramOption {
	return func(cfg *diagramConfig) { cfg.draggable = true }
}

// WithoutFlatten keeps the grid as live canvas content instead of baking
// it into the background layer.
func WithoutFlatten() DiagramOption {
	return func(cfg *diagramConfig) { cfg.flatten = false }
}

// NewDiagram lays the vectors out on a fresh canvas width pixels wide
// covering the logical range lrbt, with a 1% margin on each side.
func NewDiagram(vecs []*PVector, width int, lrbt [4]float64, opts ...DiagramOption) *Diagram {
	cfg := defaultDiagramConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	left, right, bottom, top := lrbt[0], lrbt[1], lrbt[2], lrbt[3]
	dx := (right - left) / 100
	dy := (top - bottom) / 100
	cv := NewCanvas(width, [4]float64{left - dx, right + dx, bottom - dy, top + dy}, cfg.bg)

	if cfg.grid {
		cv.Gridlines(lrbt, cfg.gridStep, RGBA{R: 0.8, G: 0.8, B: 0.8, A: 1}, 1)
	}
	if cfg.flatten {
		cv.Flatten()
	}

	d := &Diagram{Canvas: cv, Vectors: vecs}

	if cfg.components {
		for _, v := range vecs {
			comps := v.Components()
			x, y := comps[0].Mag(), comps[1].Mag()
			m := math.Max(x, y)
			if m > 0 && math.Min(x, y) > m/componentCutoff {
				for _, c := range comps {
					c.SetFill(cfg.componentColor)
					cv.Add(c)
				}
			}
		}
	}

	for _, v := range vecs {
		cv.Add(v)
	}

	if cfg.resultant {
		sum := Sum(vecs)
		if len(vecs) > 1 {
			sum.Tail = vecs[0].Tail
			sum.SetFill(cfg.resultantColor)
			cv.Add(sum)
		}
		d.Resultant = sum
	}

	if cfg.draggable {
		for _, v := range vecs {
			v.SetDraggable(true)
		}
	}
	return d
}

// DiagramFromString parses the vector notation and lays out the result.
func DiagramFromString(s string, width int, lrbt [4]float64, opts ...DiagramOption) (*Diagram, error) {
	vecs, err := ParseVectors(s)
	if err != nil {
		return nil, err
	}
	return NewDiagram(vecs, width, lrbt, opts...), nil
}
