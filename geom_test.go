package polylla

import (
	"math"
	"testing"
)

func TestIsLeft(t *testing.T) {
	leftTests := []struct {
		v1, v2, p Vec2
		want      int // sign of the result
	}{
		{Vec2{0, 0}, Vec2{0, 1}, Vec2{-1, 0}, 1},
		{Vec2{0, 0}, Vec2{0, 1}, Vec2{1, 0}, -1},
		{Vec2{0, 0}, Vec2{0, 1}, Vec2{0, 3}, 0},
		{Vec2{0, 0}, Vec2{1, 1}, Vec2{2, 2}, 0},
		{Vec2{1, 1}, Vec2{2, 1}, Vec2{1.5, 3}, 1},
	}
	for _, tt := range leftTests {
		got := IsLeft(tt.v1, tt.v2, tt.p)
		sign := 0
		if got > 0 {
			sign = 1
		} else if got < 0 {
			sign = -1
		}
		if sign != tt.want {
			t.Errorf("want sign of IsLeft(%v, %v, %v) == %d, got %v", tt.v1, tt.v2, tt.p, tt.want, got)
		}
	}
}

func TestAngle(t *testing.T) {
	angleTests := []struct {
		p1, p2, p3 Vec2
		want       float64
	}{
		{Vec2{0, 0}, Vec2{0, 1}, Vec2{0, 2}, 180},
		{Vec2{-1, 0}, Vec2{0, 0}, Vec2{0, 1}, 90},
		{Vec2{0, 0}, Vec2{0, 0}, Vec2{0, 0}, 0},
		{Vec2{1, 0}, Vec2{1, 1}, Vec2{2, 1}, 270},
		{Vec2{1, 1}, Vec2{2, 1}, Vec2{2, 2}, 90},
	}
	for _, tt := range angleTests {
		got := Angle(tt.p1, tt.p2, tt.p3)
		if math.Abs(got-tt.want) > tol {
			t.Errorf("want Angle(%v, %v, %v) == %v, got %v", tt.p1, tt.p2, tt.p3, tt.want, got)
		}
	}
}

func TestSegmentIntersect(t *testing.T) {
	segTests := []struct {
		a, b, c, d Vec2
		want       Vec2
		wantOK     bool
	}{
		{Vec2{-1, 0}, Vec2{1, 0}, Vec2{0, -1}, Vec2{0, 1}, Vec2{0, 0}, true},
		{Vec2{2, 0}, Vec2{0, 1}, Vec2{0, 0}, Vec2{2, 1}, Vec2{1, 0.5}, true},
		// parallel segments
		{Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}, Vec2{1, 1}, Vec2{}, false},
		// carrier lines cross outside both spans
		{Vec2{0, 0}, Vec2{1, 0}, Vec2{3, 1}, Vec2{3, 2}, Vec2{}, false},
	}
	for _, tt := range segTests {
		got, ok := SegmentIntersect(tt.a, tt.b, tt.c, tt.d)
		if ok != tt.wantOK {
			t.Fatalf("want SegmentIntersect(%v, %v, %v, %v) ok == %t, got %t",
				tt.a, tt.b, tt.c, tt.d, tt.wantOK, ok)
		}
		if ok && !got.Approx(tt.want) {
			t.Errorf("want SegmentIntersect(%v, %v, %v, %v) == %v, got %v",
				tt.a, tt.b, tt.c, tt.d, tt.want, got)
		}
	}
}

func TestLineIntersect(t *testing.T) {
	lineTests := []struct {
		a, b, c, d Vec2
		want       Vec2
		wantOK     bool
	}{
		// carrier lines cross outside both segments
		{Vec2{0, 0}, Vec2{1, 0}, Vec2{3, 1}, Vec2{3, 2}, Vec2{3, 0}, true},
		{Vec2{-1, 0}, Vec2{1, 0}, Vec2{0, -1}, Vec2{0, 1}, Vec2{0, 0}, true},
		// parallel lines
		{Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}, Vec2{1, 1}, Vec2{}, false},
	}
	for _, tt := range lineTests {
		got, _, ok := LineIntersect(tt.a, tt.b, tt.c, tt.d)
		if ok != tt.wantOK {
			t.Fatalf("want LineIntersect(%v, %v, %v, %v) ok == %t, got %t",
				tt.a, tt.b, tt.c, tt.d, tt.wantOK, ok)
		}
		if ok && !got.Approx(tt.want) {
			t.Errorf("want LineIntersect(%v, %v, %v, %v) == %v, got %v",
				tt.a, tt.b, tt.c, tt.d, tt.want, got)
		}
	}
}

func TestLineIntersectSymmetric(t *testing.T) {
	pairs := [][4]Vec2{
		{Vec2{0, 0}, Vec2{2, 1}, Vec2{0, 3}, Vec2{1, -1}},
		{Vec2{-1, 0}, Vec2{1, 0}, Vec2{0, -1}, Vec2{0, 1}},
		{Vec2{0.5, 0.25}, Vec2{3, 7}, Vec2{-2, 4}, Vec2{5, 1}},
	}
	for _, pp := range pairs {
		p1, _, ok1 := LineIntersect(pp[0], pp[1], pp[2], pp[3])
		p2, _, ok2 := LineIntersect(pp[2], pp[3], pp[0], pp[1])
		if !ok1 || !ok2 {
			t.Fatalf("LineIntersect(%v) unexpectedly parallel", pp)
		}
		if !p1.Approx(p2) {
			t.Errorf("swapping line pairs %v changed the intersection: %v != %v", pp, p1, p2)
		}
	}
}

func TestOnSegment(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{2, 2}
	onTests := []struct {
		p            Vec2
		infA, infB   bool
		want         bool
	}{
		{Vec2{1, 1}, false, false, true},
		{Vec2{3, 3}, false, false, false},  // beyond b
		{Vec2{-1, -1}, false, false, false}, // before a
		{Vec2{3, 3}, false, true, true},    // on the ray past b
		{Vec2{-1, -1}, false, true, false},
		{Vec2{-1, -1}, true, false, true}, // on the ray past a
		{Vec2{3, 3}, true, false, false},
		{Vec2{-5, -5}, true, true, true}, // collinearity alone
		{Vec2{1, 0}, true, true, false},  // off the carrier line
	}
	for _, tt := range onTests {
		got := OnSegment(a, b, tt.p, tt.infA, tt.infB, tol)
		if got != tt.want {
			t.Errorf("want OnSegment(%v, %v, %v, %t, %t) == %t, got %t",
				a, b, tt.p, tt.infA, tt.infB, tt.want, got)
		}
	}
}

func TestExtrapolate(t *testing.T) {
	got := Extrapolate(Vec2{3.5, 3.5}, Vec2{4.5, 4.5}, true)
	if got[0] <= 4.5 || got[1] <= 4.5 {
		t.Errorf("want far point beyond (4.5, 4.5), got %v", got)
	}
	if IsLeft(Vec2{3.5, 3.5}, Vec2{4.5, 4.5}, got) != 0 {
		t.Errorf("far point %v is off the carrier line", got)
	}

	got = Extrapolate(Vec2{3.5, 3.5}, Vec2{4.5, 4.5}, false)
	if got[0] >= 3.5 || got[1] >= 3.5 {
		t.Errorf("want far point behind (3.5, 3.5), got %v", got)
	}

	// coincident endpoints collapse to the corresponding input
	if got := Extrapolate(Vec2{1, 2}, Vec2{1, 2}, true); got != (Vec2{1, 2}) {
		t.Errorf("want degenerate extrapolation == (1, 2), got %v", got)
	}
}

func TestInfIsLeft(t *testing.T) {
	// the carrier hit falls inside (p1, p2): no flip.
	if got := InfIsLeft(Vec2{0, 0}, Vec2{0, 1}, Vec2{-1, 1}, Vec2{2, 1}); got >= 0 {
		t.Errorf("want negative orientation, got %v", got)
	}
	// the carrier hit lies past p2: the segment would need extending
	// through p2, so the sign flips.
	if got := InfIsLeft(Vec2{0, 0}, Vec2{0, 1}, Vec2{2, 0}, Vec2{1, 0}); got <= 0 {
		t.Errorf("want flipped (positive) orientation, got %v", got)
	}
	// parallel carrier: plain orientation.
	if got := InfIsLeft(Vec2{0, 0}, Vec2{0, 1}, Vec2{2, 1}, Vec2{2, 5}); got >= 0 {
		t.Errorf("want negative orientation for parallel chain, got %v", got)
	}
}
