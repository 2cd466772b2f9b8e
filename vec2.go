package polylla

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vec2 is a point or vector in the plane.
type Vec2 [2]float64

// NewVec2XY returns a new Vec2 with the given coordinates.
func NewVec2XY(x, y float64) Vec2 {
	return Vec2{x, y}
}

// X returns the x coordinate.
func (v Vec2) X() float64 { return v[0] }

// Y returns the y coordinate.
func (v Vec2) Y() float64 { return v[1] }

// Add returns the vector v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v[0] + w[0], v[1] + w[1]}
}

// Sub returns the vector v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v[0] - w[0], v[1] - w[1]}
}

// Scale returns the vector v scaled by t.
func (v Vec2) Scale(t float64) Vec2 {
	return Vec2{v[0] * t, v[1] * t}
}

// Dist returns the euclidean distance between v and w.
func (v Vec2) Dist(w Vec2) float64 {
	return math.Hypot(v[0]-w[0], v[1]-w[1])
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v[0], v[1])
}

// Approx reports whether v and w are component-wise equal, within the
// package tolerance.
func (v Vec2) Approx(w Vec2) bool {
	return scalar.EqualWithinAbs(v[0], w[0], tol) &&
		scalar.EqualWithinAbs(v[1], w[1], tol)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v[0], v[1])
}
