package polylla

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Computational geometry primitives. Everything here works on finite
// double-precision coordinates; near-zero comparisons go through a
// single package tolerance unless a caller passes the escalated
// tolerance returned by LineIntersect.

// tol is the base tolerance for near-zero comparisons.
const tol = 1e-6

// farMult is the offset used to manufacture far points standing in for
// points at infinity along a ray.
const farMult = 100000

// IsLeft derives the signed area of the triangle (v1, v2, p), or the
// relationship of the directed line v1->v2 to the point p.
//
// Returns >0 if p is to the left of v1->v2, <0 if to the right, 0 if
// the three points are collinear.
func IsLeft(v1, v2, p Vec2) float64 {
	return (v2[0]-v1[0])*(p[1]-v1[1]) - (v2[1]-v1[1])*(p[0]-v1[0])
}

// Angle returns the interior turn angle at p2 for the ordered triple
// (p1, p2, p3), in degrees in [0, 360). The angle is the clockwise
// sweep from the p2->p1 arm to the p2->p3 arm, which is the interior
// angle at p2 of a counter-clockwise polygon.
func Angle(p1, p2, p3 Vec2) float64 {
	deg1 := math.Mod(360+degrees(math.Atan2(p1[0]-p2[0], p1[1]-p2[1])), 360)
	deg2 := math.Mod(360+degrees(math.Atan2(p3[0]-p2[0], p3[1]-p2[1])), 360)
	if deg1 <= deg2 {
		return deg2 - deg1
	}
	return 360 - (deg1 - deg2)
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// SegmentIntersect returns the intersection point of the closed
// segments (v1, v2) and (v3, v4), or ok=false when the segments are
// near-parallel or the carrier-line intersection falls outside either
// segment.
func SegmentIntersect(v1, v2, v3, v4 Vec2) (p Vec2, ok bool) {
	x1, y1 := v1[0], v1[1]
	x2, y2 := v2[0], v2[1]
	x3, y3 := v3[0], v3[1]
	x4, y4 := v4[0], v4[1]
	det := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if scalar.EqualWithinAbsOrRel(det, 0, tol, tol) {
		return p, false
	}
	px := ((x1*y2-y1*x2)*(x3-x4) - (x1-x2)*(x3*y4-y3*x4)) / det
	py := ((x1*y2-y1*x2)*(y3-y4) - (y1-y2)*(x3*y4-y3*x4)) / det
	if math.Min(x1, x2)-tol <= px && px <= math.Max(x1, x2)+tol &&
		math.Min(y1, y2)-tol <= py && py <= math.Max(y1, y2)+tol &&
		math.Min(x3, x4)-tol <= px && px <= math.Max(x3, x4)+tol &&
		math.Min(y3, y4)-tol <= py && py <= math.Max(y3, y4)+tol {
		return Vec2{px, py}, true
	}
	return p, false
}

// LineIntersect returns the intersection point of the carrier lines
// through (v1, v2) and (v3, v4), independent of segment containment.
// ok is false when the lines are near-parallel (determinant below
// 1e-9).
//
// The computed point is verified to lie on both carrier lines; when
// floating-point drift on near-parallel lines defeats the base
// tolerance, the verification tolerance is escalated by powers of ten
// until both lines report the point "on". The escalated tolerance is
// returned so callers can keep their subsequent span checks
// consistent with the intersection they got.
func LineIntersect(v1, v2, v3, v4 Vec2) (p Vec2, ltol float64, ok bool) {
	x1, y1 := v1[0], v1[1]
	x2, y2 := v2[0], v2[1]
	x3, y3 := v3[0], v3[1]
	x4, y4 := v4[0], v4[1]
	det := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if scalar.EqualWithinAbs(det, 0, 1e-9) {
		return p, tol, false
	}
	p = Vec2{
		((x1*y2-y1*x2)*(x3-x4) - (x1-x2)*(x3*y4-y3*x4)) / det,
		((x1*y2-y1*x2)*(y3-y4) - (y1-y2)*(x3*y4-y3*x4)) / det,
	}
	ltol = tol
	for !OnSegment(v1, v2, p, true, true, ltol) || !OnSegment(v3, v4, p, true, true, ltol) {
		ltol *= 10
	}
	return p, ltol, true
}

// OnSegment reports whether p lies on the line through (v1, v2) and
// within the span governed by the two infinity flags:
//
//   - neither infinite: p within the axis-aligned bounding box of the
//     segment, under localTol;
//   - only infV2: p on the ray from v1 toward v2;
//   - only infV1: p on the ray from v2 toward v1;
//   - both: collinearity alone.
//
// The ray modes constrain the coordinate signs according to the
// direction of v1->v2.
func OnSegment(v1, v2, p Vec2, infV1, infV2 bool, localTol float64) bool {
	x1, y1 := v1[0], v1[1]
	x2, y2 := v2[0], v2[1]
	px, py := p[0], p[1]
	onLine := scalar.EqualWithinAbs(IsLeft(v1, v2, p), 0, localTol)
	switch {
	case !infV1 && !infV2:
		return (math.Min(x1, x2) <= px || isclose(math.Min(x1, x2), px, localTol)) &&
			(px <= math.Max(x1, x2) || isclose(math.Max(x1, x2), px, localTol)) &&
			(math.Min(y1, y2) <= py || isclose(math.Min(y1, y2), py, localTol)) &&
			(py <= math.Max(y1, y2) || isclose(math.Max(y1, y2), py, localTol)) &&
			onLine
	case !infV1 && infV2:
		if x1 < x2 {
			if y1 < y2 {
				return (x1 < px || isclose(x1, px, localTol)) &&
					(y1 < py || isclose(y1, py, localTol)) && onLine
			}
			return (x1 < px || isclose(x1, px, localTol)) &&
				(py < y1 || isclose(y1, py, localTol)) && onLine
		}
		if y1 < y2 {
			return (px < x1 || isclose(x1, px, localTol)) &&
				(y1 < py || isclose(y1, py, localTol)) && onLine
		}
		return (px < x1 || isclose(x1, px, localTol)) &&
			(py < y1 || isclose(y1, py, localTol)) && onLine
	case infV1 && !infV2:
		if x1 < x2 {
			if y1 < y2 {
				return (px <= x2 || isclose(x2, px, localTol)) &&
					(py <= y2 || isclose(y2, py, localTol)) && onLine
			}
			return (px <= x2 || isclose(x2, px, localTol)) &&
				(y2 <= py || isclose(y2, py, localTol)) && onLine
		}
		if y1 < y2 {
			return (x2 <= px || isclose(x2, px, localTol)) &&
				(py <= y2 || isclose(y2, py, localTol)) && onLine
		}
		return (x2 <= px || isclose(x2, px, localTol)) &&
			(y2 <= py || isclose(y2, py, localTol)) && onLine
	default:
		return onLine
	}
}

// onSegmentExact is the strict variant of OnSegment for the finite
// case: the bounding-box comparisons carry no tolerance. Only the
// collinearity test keeps the base tolerance.
func onSegmentExact(v1, v2, p Vec2) bool {
	return math.Min(v1[0], v2[0]) <= p[0] && p[0] <= math.Max(v1[0], v2[0]) &&
		math.Min(v1[1], v2[1]) <= p[1] && p[1] <= math.Max(v1[1], v2[1]) &&
		scalar.EqualWithinAbs(IsLeft(v1, v2, p), 0, tol)
}

// isclose reports equality within identical absolute and relative
// tolerances.
func isclose(a, b, t float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, t, t)
}

// Extrapolate returns a point far outside any finite geometry along
// the direction v1->v2: beyond v2 when alongV2 is set, behind v1
// otherwise. Coincident inputs yield the corresponding endpoint.
func Extrapolate(v1, v2 Vec2, alongV2 bool) Vec2 {
	mod := v1.Dist(v2)
	if scalar.EqualWithinAbs(mod, 0, tol) {
		if alongV2 {
			return v2
		}
		return v1
	}
	dir := Vec2{(v2[0] - v1[0]) / mod, (v2[1] - v1[1]) / mod}
	if alongV2 {
		return v2.Add(dir.Scale(farMult))
	}
	return v1.Sub(dir.Scale(farMult))
}

// InfIsLeft is the orientation test IsLeft(v1, v2, p2) made aware
// that p2 may be a sentinel far point: when the carrier intersection
// with the line (v1, v2) lies past p2 rather than within (p1, p2),
// the segment would have to be extended through p2 to reach the line,
// and the sign is flipped.
func InfIsLeft(v1, v2, p1, p2 Vec2) float64 {
	left := IsLeft(v1, v2, p2)
	inter, _, ok := LineIntersect(v1, v2, p1, p2)
	if ok && !OnSegment(p1, p2, inter, false, false, tol) && OnSegment(p1, p2, inter, false, true, tol) {
		return -left
	}
	return left
}
