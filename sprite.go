package sketch

// Edge axis flags reported by bounce callbacks.
const (
	Horizontal = 1 << iota
	Vertical
)

// rotator is satisfied by shapes that track a cumulative angle.
type rotator interface {
	Angle() float64
	SetAngle(float64)
}

// Sprite animates a shape with simple kinematics: velocity, acceleration,
// spin and drag. Step advances the state; the sprite does not own a clock.
type Sprite struct {
	Shape Shape

	Vel      Vec2
	Acc      Vec2
	Spin     float64 // radians per time unit
	Drag     float64 // velocity damping per step, 0..1
	SpinDrag float64 // spin damping per step, 0..1

	// OnBounce, if set, is called after CircleBounce reflects the
	// velocity, with the axes that bounced (Horizontal | Vertical).
	OnBounce func(axes int)
}

// NewSprite wraps a shape for animation.
func NewSprite(s Shape) *Sprite {
	return &Sprite{Shape: s}
}

// Step advances position, velocity and angle by dt time units.
// With acceleration the position update uses the trapezoid rule, so
// constant acceleration integrates exactly.
func (sp *Sprite) Step(dt float64) {
	pos := sp.Shape.Pos()
	if !sp.Acc.IsZero() {
		dv := sp.Acc.Mul(dt)
		pos = pos.Add(sp.Vel.Add(dv.Div(2)).Mul(dt))
		sp.Vel = sp.Vel.Add(dv)
	} else {
		pos = pos.Add(sp.Vel.Mul(dt))
	}
	sp.Shape.SetPos(pos)

	if sp.Spin != 0 {
		if r, ok := sp.Shape.(rotator); ok {
			r.SetAngle(r.Angle() + sp.Spin*dt)
		}
	}
	if sp.Drag != 0 {
		sp.Vel = sp.Vel.Mul(1 - sp.Drag)
	}
	if sp.SpinDrag != 0 {
		sp.Spin *= 1 - sp.SpinDrag
	}
}

// CircleBounce reflects the velocity when the sprite's bounding circle
// crosses the edges of bounds while moving outward.
func (sp *Sprite) CircleBounce(bounds Rect) {
	w, h := sp.Shape.Size()
	r := min(w, h) / 2
	pos := sp.Shape.Pos()

	axes := 0
	if (pos.X < bounds.X+r && sp.Vel.X < 0) || (pos.X > bounds.X+bounds.W-r && sp.Vel.X > 0) {
		sp.Vel.X = -sp.Vel.X
		axes |= Horizontal
	}
	if (pos.Y < bounds.Y+r && sp.Vel.Y < 0) || (pos.Y > bounds.Y+bounds.H-r && sp.Vel.Y > 0) {
		sp.Vel.Y = -sp.Vel.Y
		axes |= Vertical
	}
	if axes != 0 && sp.OnBounce != nil {
		sp.OnBounce(axes)
	}
}
