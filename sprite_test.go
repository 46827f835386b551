package sketch

import (
	"math"
	"testing"
)

func spriteCircle(t *testing.T, r float64) *Sprite {
	t.Helper()
	return NewSprite(mustCircle(t, r))
}

func TestSprite_ConstantVelocity(t *testing.T) {
	sp := spriteCircle(t, 5)
	sp.Vel = V2(1, 0)
	sp.Step(2)

	if got := sp.Shape.Pos(); !got.Approx(Pt(2, 0), 1e-10) {
		t.Errorf("Pos() = %v, want (2,0)", got)
	}
	if !sp.Vel.Approx(V2(1, 0), 1e-10) {
		t.Errorf("Vel = %v, want unchanged (1,0)", sp.Vel)
	}
}

func TestSprite_ConstantAccelerationExact(t *testing.T) {
	// Trapezoid integration reproduces s = a*t^2/2 exactly for constant
	// acceleration, even across multiple steps.
	sp := spriteCircle(t, 5)
	sp.Acc = V2(0, 1)

	sp.Step(2)
	if got := sp.Shape.Pos(); !got.Approx(Pt(0, 2), 1e-10) {
		t.Errorf("after 2s: Pos() = %v, want (0,2)", got)
	}
	if !sp.Vel.Approx(V2(0, 2), 1e-10) {
		t.Errorf("after 2s: Vel = %v, want (0,2)", sp.Vel)
	}

	sp.Step(2)
	if got := sp.Shape.Pos(); !got.Approx(Pt(0, 8), 1e-10) {
		t.Errorf("after 4s: Pos() = %v, want (0,8) = a*t^2/2", got)
	}
}

func TestSprite_Spin(t *testing.T) {
	p := mustPolygon(t, []Point{{0, 0}, {4, 0}, {4, 2}, {0, 2}})
	sp := NewSprite(p)
	sp.Spin = math.Pi / 2
	sp.Step(1)

	if math.Abs(p.Angle()-math.Pi/2) > 1e-12 {
		t.Errorf("Angle() = %v, want pi/2", p.Angle())
	}

	sp.SpinDrag = 0.5
	sp.Step(1)
	if math.Abs(sp.Spin-math.Pi/4) > 1e-12 {
		t.Errorf("Spin after drag = %v, want pi/4", sp.Spin)
	}
}

func TestSprite_Drag(t *testing.T) {
	sp := spriteCircle(t, 5)
	sp.Vel = V2(10, 0)
	sp.Drag = 0.5
	sp.Step(1)

	if got := sp.Shape.Pos(); !got.Approx(Pt(10, 0), 1e-10) {
		t.Errorf("Pos() = %v, want (10,0); drag applies after the move", got)
	}
	if !sp.Vel.Approx(V2(5, 0), 1e-10) {
		t.Errorf("Vel = %v, want (5,0)", sp.Vel)
	}
}

func TestSprite_CircleBounce(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 100, H: 100}

	t.Run("left wall", func(t *testing.T) {
		sp := spriteCircle(t, 5)
		sp.Shape.SetPos(Pt(3, 50))
		sp.Vel = V2(-2, 0)

		var axes int
		sp.OnBounce = func(a int) { axes = a }
		sp.CircleBounce(bounds)

		if !sp.Vel.Approx(V2(2, 0), 1e-10) {
			t.Errorf("Vel = %v, want reflected (2,0)", sp.Vel)
		}
		if axes != Horizontal {
			t.Errorf("axes = %d, want Horizontal", axes)
		}
	})

	t.Run("corner reflects both axes", func(t *testing.T) {
		sp := spriteCircle(t, 5)
		sp.Shape.SetPos(Pt(3, 3))
		sp.Vel = V2(-1, -1)

		var axes int
		sp.OnBounce = func(a int) { axes = a }
		sp.CircleBounce(bounds)

		if !sp.Vel.Approx(V2(1, 1), 1e-10) {
			t.Errorf("Vel = %v, want (1,1)", sp.Vel)
		}
		if axes != Horizontal|Vertical {
			t.Errorf("axes = %d, want Horizontal|Vertical", axes)
		}
	})

	t.Run("moving inward does not bounce", func(t *testing.T) {
		sp := spriteCircle(t, 5)
		sp.Shape.SetPos(Pt(3, 50))
		sp.Vel = V2(2, 0)

		called := false
		sp.OnBounce = func(int) { called = true }
		sp.CircleBounce(bounds)

		if !sp.Vel.Approx(V2(2, 0), 1e-10) || called {
			t.Errorf("inward motion altered: Vel = %v, called = %v", sp.Vel, called)
		}
	})
}
