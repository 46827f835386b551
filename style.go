package sketch

// Style holds the drawing attributes shared by all shapes: an optional
// fill color, an optional stroke color, and a stroke weight in pixels.
//
// Style is a plain value; shapes own a Style and expose SetFill /
// SetStroke / SetWeight mutators that invalidate exactly the caches the
// touched field affects. Mutating a Style held by a shape directly is
// not supported.
type Style struct {
	fill      RGBA
	hasFill   bool
	stroke    RGBA
	hasStroke bool
	weight    float64
}

// defaultStyle matches the toolkit defaults: no fill, 1px black stroke.
func defaultStyle() Style {
	return Style{stroke: Black, hasStroke: true, weight: 1}
}

// Fill returns the fill color and whether a fill is set.
func (s Style) Fill() (RGBA, bool) {
	return s.fill, s.hasFill
}

// Stroke returns the stroke color and whether a stroke is set.
func (s Style) Stroke() (RGBA, bool) {
	return s.stroke, s.hasStroke
}

// Weight returns the stroke weight in pixels.
func (s Style) Weight() float64 {
	return s.weight
}

func (s *Style) setFill(c RGBA)      { s.fill = c; s.hasFill = true }
func (s *Style) clearFill()          { s.fill = RGBA{}; s.hasFill = false }
func (s *Style) setStroke(c RGBA)    { s.stroke = c; s.hasStroke = true }
func (s *Style) clearStroke()        { s.stroke = RGBA{}; s.hasStroke = false }
func (s *Style) setWeight(w float64) { s.weight = w }
