package polylla

import (
	"math"
	"testing"
)

func TestVec2Ops(t *testing.T) {
	v, w := Vec2{1, 2}, Vec2{4, 6}
	if got := v.Add(w); got != (Vec2{5, 8}) {
		t.Errorf("want Add == (5, 8), got %v", got)
	}
	if got := w.Sub(v); got != (Vec2{3, 4}) {
		t.Errorf("want Sub == (3, 4), got %v", got)
	}
	if got := v.Scale(2); got != (Vec2{2, 4}) {
		t.Errorf("want Scale == (2, 4), got %v", got)
	}
	if got := v.Dist(w); got != 5 {
		t.Errorf("want Dist == 5, got %v", got)
	}
	if got := (Vec2{3, 4}).Len(); got != 5 {
		t.Errorf("want Len == 5, got %v", got)
	}
}

func TestVec2Approx(t *testing.T) {
	approxTests := []struct {
		v, w Vec2
		want bool
	}{
		{Vec2{1, 1}, Vec2{1, 1}, true},
		{Vec2{1, 1}, Vec2{1 + 1e-8, 1 - 1e-8}, true},
		{Vec2{1, 1}, Vec2{1 + 1e-4, 1}, false},
		{Vec2{0, 0}, Vec2{0, math.Nextafter(0, 1)}, true},
	}
	for _, tt := range approxTests {
		if got := tt.v.Approx(tt.w); got != tt.want {
			t.Errorf("want %v.Approx(%v) == %t, got %t", tt.v, tt.w, tt.want, got)
		}
	}
}
