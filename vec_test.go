package sketch

import (
	"math"
	"testing"
)

func TestVec2_Add(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect Vec2
	}{
		{"zero+zero", V2(0, 0), V2(0, 0), V2(0, 0)},
		{"positive", V2(1, 2), V2(3, 4), V2(4, 6)},
		{"negative", V2(-1, -2), V2(-3, -4), V2(-4, -6)},
		{"mixed", V2(1, -2), V2(-3, 4), V2(-2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Add(tt.w)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_Polar(t *testing.T) {
	tests := []struct {
		name     string
		mag      float64
		thetaDeg float64
		expect   Vec2
	}{
		{"east", 1, 0, V2(1, 0)},
		{"north", 1, 90, V2(0, 1)},
		{"west", 2, 180, V2(-2, 0)},
		{"diagonal", math.Sqrt2, 45, V2(1, 1)},
		{"negative magnitude flips", -1, 0, V2(-1, 0)},
		{"negative magnitude diagonal", -2, 45, V2(-math.Sqrt2, -math.Sqrt2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Polar(tt.mag, tt.thetaDeg)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("Polar(%v, %v) = %v, want %v", tt.mag, tt.thetaDeg, result, tt.expect)
			}
		})
	}
}

func TestVec2_ThetaDeg(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect float64
	}{
		{"east", V2(1, 0), 0},
		{"north", V2(0, 1), 90},
		{"west", V2(-1, 0), 180},
		{"south", V2(0, -1), -90},
		{"diagonal", V2(1, 1), 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.ThetaDeg()
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.ThetaDeg() = %v, want %v", tt.v, result, tt.expect)
			}
		})
	}
}

func TestVec2_PolarRoundTrip(t *testing.T) {
	for _, v := range []Vec2{V2(3, 4), V2(-2, 5), V2(0.1, -0.7)} {
		back := Polar(v.Length(), v.ThetaDeg())
		if !back.Approx(v, 1e-10) {
			t.Errorf("Polar(Length, ThetaDeg) of %v = %v", v, back)
		}
	}
}

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect Vec2
	}{
		{"zero", V2(0, 0), V2(0, 0)},
		{"unit x", V2(5, 0), V2(1, 0)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Normalize()
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, result, tt.expect)
			}
		})
	}
}

func TestVec2_Rotate(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		angle  float64
		expect Vec2
	}{
		{"zero angle", V2(1, 0), 0, V2(1, 0)},
		{"90 deg", V2(1, 0), math.Pi / 2, V2(0, 1)},
		{"180 deg", V2(1, 0), math.Pi, V2(-1, 0)},
		{"270 deg", V2(1, 0), 3 * math.Pi / 2, V2(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Rotate(tt.angle)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Rotate(%v) = %v, want %v", tt.v, tt.angle, result, tt.expect)
			}
		})
	}
}

func TestVec2_Perp(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect Vec2
	}{
		{"x axis", V2(1, 0), V2(0, 1)},
		{"y axis", V2(0, 1), V2(-1, 0)},
		{"diagonal", V2(3, 4), V2(-4, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Perp()
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Perp() = %v, want %v", tt.v, result, tt.expect)
			}
			if math.Abs(tt.v.Dot(result)) > 1e-10 {
				t.Errorf("Perp should be orthogonal: %v.Dot(%v) != 0", tt.v, result)
			}
		})
	}
}

func TestPoint_RotateAround(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		pivot  Point
		angle  float64
		expect Point
	}{
		{"about origin", Pt(1, 0), Pt(0, 0), math.Pi / 2, Pt(0, 1)},
		{"about self", Pt(3, 4), Pt(3, 4), 1.234, Pt(3, 4)},
		{"offset pivot", Pt(1, 0), Pt(1, 1), math.Pi / 2, Pt(2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p.RotateAround(tt.pivot, tt.angle)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.RotateAround(%v, %v) = %v, want %v", tt.p, tt.pivot, tt.angle, result, tt.expect)
			}
		})
	}
}
