package sketch

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrVectorSyntax is returned when a vector string cannot be parsed.
var ErrVectorSyntax = errors.New("sketch: invalid vector notation")

// Textual vector grammar: signed terms in Cartesian "(x,y)" or polar
// "r@theta" form (theta in degrees), concatenated with explicit + or -
// signs; no other separator is required. Whitespace is insignificant.
var (
	numPat      = `[-+]?\d+\.?\d*(?:[eE][-+]?\d+)?`
	cartesianRe = regexp.MustCompile(`^\(` + numPat + `,` + numPat + `\)`)
	polarRe     = regexp.MustCompile(`^` + numPat + `@` + numPat)
)

// ParseVectors parses a textual sequence of signed vectors, producing the
// list laid out tip-to-tail. Terms are matched greedily one at a time;
// if any non-matching text remains, the whole parse is rejected.
//
//	ParseVectors("(1,0)+(0,1)")   // two Cartesian vectors
//	ParseVectors("3@45 - 2@90")   // polar, degrees
func ParseVectors(s string) ([]*PVector, error) {
	expr := stripSpace(s)
	var vecs []*PVector
	for len(expr) > 0 {
		neg := false
		if expr[0] == '+' || expr[0] == '-' {
			neg = expr[0] == '-'
			expr = expr[1:]
		}
		v, n := parseTerm(expr)
		if n == 0 {
			break
		}
		if neg {
			v = v.Neg()
		}
		vecs = append(vecs, v)
		expr = expr[n:]
	}
	if expr != "" {
		return nil, fmt.Errorf("%w: can't parse %q as vectors (unparsed %q)", ErrVectorSyntax, s, expr)
	}
	return TipToTail(vecs), nil
}

// parseTerm matches one Cartesian or polar term at the start of expr,
// returning the vector and the number of bytes consumed (0 on no match).
func parseTerm(expr string) (*PVector, int) {
	if m := cartesianRe.FindString(expr); m != "" {
		parts := strings.SplitN(m[1:len(m)-1], ",", 2)
		x, errX := strconv.ParseFloat(parts[0], 64)
		y, errY := strconv.ParseFloat(parts[1], 64)
		if errX != nil || errY != nil {
			return nil, 0
		}
		return PVectorXY(x, y), len(m)
	}
	if m := polarRe.FindString(expr); m != "" {
		parts := strings.SplitN(m, "@", 2)
		r, errR := strconv.ParseFloat(parts[0], 64)
		t, errT := strconv.ParseFloat(parts[1], 64)
		if errR != nil || errT != nil {
			return nil, 0
		}
		return NewPVector(r, t), len(m)
	}
	return nil, 0
}

func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
