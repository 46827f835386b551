package sketch

import (
	"math"
	"testing"
)

func TestPVector_Placement(t *testing.T) {
	v := PVectorXY(3, 4)
	v.Tail = Pt(1, 1)

	if got := v.Tip(); !got.Approx(Pt(4, 5), 1e-10) {
		t.Errorf("Tip() = %v, want (4,5)", got)
	}
	if got := v.CsPos(); !got.Approx(Pt(2.5, 3), 1e-10) {
		t.Errorf("CsPos() = %v, want (2.5,3)", got)
	}

	v.SetTip(Pt(10, 10))
	if got := v.Tail; !got.Approx(Pt(7, 6), 1e-10) {
		t.Errorf("Tail after SetTip = %v, want (7,6)", got)
	}
	v.SetCsPos(Pt(0, 0))
	if got := v.Tail; !got.Approx(Pt(-1.5, -2), 1e-10) {
		t.Errorf("Tail after SetCsPos = %v, want (-1.5,-2)", got)
	}
}

func TestPVector_PolarAccessors(t *testing.T) {
	v := PVectorXY(3, 4)

	if math.Abs(v.Mag()-5) > 1e-10 {
		t.Errorf("Mag() = %v, want 5", v.Mag())
	}
	v.SetMag(10)
	if !v.V.Approx(V2(6, 8), 1e-10) {
		t.Errorf("SetMag(10): V = %v, want (6,8)", v.V)
	}

	v = NewPVector(2, 90)
	if !v.V.Approx(V2(0, 2), 1e-10) {
		t.Errorf("NewPVector(2, 90): V = %v, want (0,2)", v.V)
	}
	v.SetTheta(180)
	if !v.V.Approx(V2(-2, 0), 1e-10) {
		t.Errorf("SetTheta(180): V = %v, want (-2,0)", v.V)
	}
}

func TestPVector_ArithmeticAnchorsAtOrigin(t *testing.T) {
	a := PVectorXY(3, 4)
	a.Tail = Pt(5, 5)
	b := PVectorXY(1, 1)
	b.Tail = Pt(-2, 0)

	tests := []struct {
		name   string
		got    *PVector
		expect Vec2
	}{
		{"add", a.Add(b), V2(4, 5)},
		{"sub", a.Sub(b), V2(2, 3)},
		{"neg", a.Neg(), V2(-3, -4)},
		{"scale", a.Scale(2), V2(6, 8)},
		{"div", a.Div(2), V2(1.5, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.V.Approx(tt.expect, 1e-10) {
				t.Errorf("V = %v, want %v", tt.got.V, tt.expect)
			}
			if tt.got.Tail != Pt(0, 0) {
				t.Errorf("result tail = %v, want origin", tt.got.Tail)
			}
		})
	}

	// Operands are untouched.
	if a.Tail != Pt(5, 5) || !a.V.Approx(V2(3, 4), 1e-10) {
		t.Errorf("operand mutated: %v tail %v", a.V, a.Tail)
	}
}

func TestPVector_Rotate(t *testing.T) {
	t.Run("half turn about midpoint swaps tail and tip", func(t *testing.T) {
		v := PVectorXY(2, 0)
		tip := v.Tip()
		v.Rotate(180, nil)
		if !v.Tail.Approx(tip, 1e-10) {
			t.Errorf("tail = %v, want old tip %v", v.Tail, tip)
		}
		if !v.Tip().Approx(Pt(0, 0), 1e-10) {
			t.Errorf("tip = %v, want old tail (0,0)", v.Tip())
		}
	})

	t.Run("explicit pivot", func(t *testing.T) {
		v := PVectorXY(1, 0)
		v.Tail = Pt(1, 0)
		pivot := Pt(0, 0)
		v.Rotate(90, &pivot)
		if !v.Tail.Approx(Pt(0, 1), 1e-10) {
			t.Errorf("tail = %v, want (0,1)", v.Tail)
		}
		if !v.Tip().Approx(Pt(0, 2), 1e-10) {
			t.Errorf("tip = %v, want (0,2)", v.Tip())
		}
	})

	t.Run("round trip", func(t *testing.T) {
		v := PVectorXY(3, -1)
		v.Tail = Pt(2, 7)
		v.Rotate(37, nil)
		v.Rotate(-37, nil)
		if !v.Tail.Approx(Pt(2, 7), 1e-9) || !v.V.Approx(V2(3, -1), 1e-9) {
			t.Errorf("round trip: V = %v tail %v", v.V, v.Tail)
		}
	})
}

func TestPVector_Proj(t *testing.T) {
	v := PVectorXY(3, 4)
	v.Tail = Pt(1, 1)

	px := v.ProjAngle(0)
	if !px.V.Approx(V2(3, 0), 1e-10) {
		t.Errorf("ProjAngle(0): V = %v, want (3,0)", px.V)
	}
	if px.Tail != v.Tail {
		t.Errorf("projection tail = %v, want %v", px.Tail, v.Tail)
	}

	onto := PVectorXY(1, 1)
	p := v.Proj(onto)
	if !p.V.Approx(V2(3.5, 3.5), 1e-10) {
		t.Errorf("Proj onto (1,1): V = %v, want (3.5,3.5)", p.V)
	}
}

func TestPVector_Components(t *testing.T) {
	v := PVectorXY(3, 4)
	v.Tail = Pt(1, 1)

	comps := v.Components()
	x, y := comps[0], comps[1]

	if !x.V.Approx(V2(3, 0), 1e-10) || !y.V.Approx(V2(0, 4), 1e-10) {
		t.Fatalf("components = %v, %v, want (3,0), (0,4)", x.V, y.V)
	}
	// The components always sum to the original value.
	if !x.V.Add(y.V).Approx(v.V, 1e-9) {
		t.Errorf("component sum %v != %v", x.V.Add(y.V), v.V)
	}
	// Right-triangle layout: x starts at the tail, y ends at the tip.
	if x.Tail != v.Tail {
		t.Errorf("x component tail = %v, want %v", x.Tail, v.Tail)
	}
	if !x.Tip().Approx(y.Tail, 1e-10) {
		t.Errorf("x tip %v != y tail %v", x.Tip(), y.Tail)
	}
	if !y.Tip().Approx(v.Tip(), 1e-10) {
		t.Errorf("y tip = %v, want %v", y.Tip(), v.Tip())
	}
}

func TestPVector_SumAndTipToTail(t *testing.T) {
	vs := []*PVector{PVectorXY(1, 0), PVectorXY(0, 1), PVectorXY(-2, 2)}
	vs[0].Tail = Pt(5, 5)

	TipToTail(vs)
	if !vs[1].Tail.Approx(Pt(6, 5), 1e-10) {
		t.Errorf("second tail = %v, want (6,5)", vs[1].Tail)
	}
	if !vs[2].Tail.Approx(Pt(6, 6), 1e-10) {
		t.Errorf("third tail = %v, want (6,6)", vs[2].Tail)
	}

	s := Sum(vs)
	if !s.V.Approx(V2(-1, 3), 1e-10) {
		t.Errorf("Sum = %v, want (-1,3)", s.V)
	}
	if s.Tail != Pt(0, 0) {
		t.Errorf("Sum tail = %v, want origin", s.Tail)
	}
}

func TestPVector_Resize(t *testing.T) {
	v := PVectorXY(3, -4)
	v.Resize(6, 8)
	if !v.V.Approx(V2(6, -8), 1e-10) {
		t.Errorf("Resize: V = %v, want (6,-8)", v.V)
	}
	w, h := v.Size()
	if w != 6 || h != 8 {
		t.Errorf("Size() = (%v, %v), want (6, 8)", w, h)
	}
}

func TestPVector_ContainsPoint(t *testing.T) {
	v := PVectorXY(100, 0)

	if !v.ContainsPoint(Pt(50, 2)) {
		t.Error("point on the shaft reported outside")
	}
	if v.ContainsPoint(Pt(50, 20)) {
		t.Error("point well off the shaft reported inside")
	}

	// Visually negligible vectors never hit.
	tiny := PVectorXY(0.5, 0)
	if tiny.ContainsPoint(Pt(0.2, 0)) {
		t.Error("sub-pixel vector reported a hit")
	}
}

func TestPVector_DrawDegenerate(t *testing.T) {
	v := PVectorXY(0.5, 0)
	v.Tail = Pt(10, 10)

	dst := NewPixmap(20, 20)
	r := v.Draw(dst, true)

	if r.W != 1 || r.H != 1 {
		t.Fatalf("degenerate dirty rect = %+v, want 1x1", r)
	}
	if dst.GetPixel(int(r.X), int(r.Y)).A == 0 {
		t.Error("degenerate vector left no pixel")
	}
}

func TestPVector_DrawArrow(t *testing.T) {
	v := PVectorXY(60, 0)
	v.Tail = Pt(20, 40)

	dst := NewPixmap(100, 80)
	r := v.Draw(dst, true)

	if r.IsEmpty() {
		t.Fatal("Draw returned empty rect")
	}
	// Shaft midpoint carries the red default fill.
	mid := dst.GetPixel(50, 40)
	if mid.A == 0 || mid.R < 0.9 {
		t.Errorf("shaft pixel = %+v, want red", mid)
	}
}
