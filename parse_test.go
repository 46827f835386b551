package sketch

import (
	"errors"
	"strings"
	"testing"
)

func TestParseVectors_Cartesian(t *testing.T) {
	vs, err := ParseVectors("(1,0)+(0,1)")
	if err != nil {
		t.Fatalf("ParseVectors: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("len = %d, want 2", len(vs))
	}

	// Tip-to-tail layout: the second vector starts at the first's tip.
	if vs[0].Tail != Pt(0, 0) || !vs[0].Tip().Approx(Pt(1, 0), 1e-10) {
		t.Errorf("first vector tail %v tip %v", vs[0].Tail, vs[0].Tip())
	}
	if !vs[1].Tail.Approx(Pt(1, 0), 1e-10) || !vs[1].Tip().Approx(Pt(1, 1), 1e-10) {
		t.Errorf("second vector tail %v tip %v", vs[1].Tail, vs[1].Tip())
	}

	if s := Sum(vs); !s.V.Approx(V2(1, 1), 1e-10) {
		t.Errorf("Sum = %v, want (1,1)", s.V)
	}
}

func TestParseVectors_Polar(t *testing.T) {
	vs, err := ParseVectors("1@0")
	if err != nil {
		t.Fatalf("ParseVectors: %v", err)
	}
	if len(vs) != 1 {
		t.Fatalf("len = %d, want 1", len(vs))
	}
	if got := vs[0].Mag(); got != 1 {
		t.Errorf("Mag() = %v, want 1", got)
	}
	if got := vs[0].Theta(); got != 0 {
		t.Errorf("Theta() = %v, want 0", got)
	}
}

func TestParseVectors_SignedTerms(t *testing.T) {
	vs, err := ParseVectors("3@45 - 2@90")
	if err != nil {
		t.Fatalf("ParseVectors: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("len = %d, want 2", len(vs))
	}
	// The minus negates the whole term.
	if !vs[1].V.Approx(V2(0, -2), 1e-10) {
		t.Errorf("negated term = %v, want (0,-2)", vs[1].V)
	}
}

func TestParseVectors_NoSeparatorNeeded(t *testing.T) {
	vs, err := ParseVectors("(1,0)(0,1)")
	if err != nil {
		t.Fatalf("ParseVectors: %v", err)
	}
	if len(vs) != 2 {
		t.Errorf("len = %d, want 2", len(vs))
	}
}

func TestParseVectors_Whitespace(t *testing.T) {
	vs, err := ParseVectors("  ( 1.5 , -2 )\t+ 3 @ 90 ")
	if err != nil {
		t.Fatalf("ParseVectors: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("len = %d, want 2", len(vs))
	}
	if !vs[0].V.Approx(V2(1.5, -2), 1e-10) {
		t.Errorf("first = %v, want (1.5,-2)", vs[0].V)
	}
}

func TestParseVectors_Empty(t *testing.T) {
	vs, err := ParseVectors("")
	if err != nil {
		t.Fatalf("empty input: %v", err)
	}
	if len(vs) != 0 {
		t.Errorf("len = %d, want 0", len(vs))
	}
}

func TestParseVectors_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"trailing garbage", "(1,0)+garbage"},
		{"incomplete polar", "2@"},
		{"bare word", "north"},
		{"unclosed paren", "(1,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVectors(tt.input)
			if !errors.Is(err, ErrVectorSyntax) {
				t.Fatalf("ParseVectors(%q): got %v, want ErrVectorSyntax", tt.input, err)
			}
		})
	}

	// The error carries the unparsed remainder.
	_, err := ParseVectors("(1,0)+garbage")
	if err == nil || !strings.Contains(err.Error(), "garbage") {
		t.Errorf("error %v does not name the unparsed text", err)
	}
}
