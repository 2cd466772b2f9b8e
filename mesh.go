package polylla

import "math"

// Mesh is a vertex table plus a sequence of faces referencing it by
// index. A Mesh is read-only during kernel computation.
type Mesh struct {
	Verts []Vec2
	Polys [][]int32
}

// PolyPoints gathers the vertex ring of poly.
func (m *Mesh) PolyPoints(poly []int32) []Vec2 {
	pts := make([]Vec2, len(poly))
	for i, idx := range poly {
		pts[i] = m.Verts[idx]
	}
	return pts
}

// Area returns the unsigned area of the vertex ring pts, fanned from
// its first vertex.
func Area(pts []Vec2) float64 {
	if len(pts) == 0 {
		return 0
	}
	var total float64
	p := pts[0]
	for i := 1; i < len(pts); i++ {
		v0 := pts[i]
		v1 := pts[(i+1)%len(pts)]
		total += (v0[0]-p[0])*(v1[1]-p[1]) - (v0[1]-p[1])*(v1[0]-p[0])
	}
	return math.Abs(total / 2)
}

// PolyArea returns the unsigned area of the polygon.
func PolyArea(poly []int32, verts []Vec2) float64 {
	if len(poly) == 0 {
		return 0
	}
	var total float64
	p := verts[poly[0]]
	for i := 1; i < len(poly); i++ {
		v0 := verts[poly[i]]
		v1 := verts[poly[(i+1)%len(poly)]]
		total += (v0[0]-p[0])*(v1[1]-p[1]) - (v0[1]-p[1])*(v1[0]-p[0])
	}
	return math.Abs(total / 2)
}

// PolyPerimeter returns the perimeter of the polygon.
func PolyPerimeter(poly []int32, verts []Vec2) float64 {
	var total float64
	for i := range poly {
		v0 := verts[poly[i]]
		v1 := verts[poly[(i+1)%len(poly)]]
		total += v0.Dist(v1)
	}
	return total
}

// MinMaxAngle returns the smallest and largest interior angle of the
// polygon, in degrees.
func MinMaxAngle(poly []int32, verts []Vec2) (min, max float64) {
	min, max = 360, 0
	for i := range poly {
		p1 := verts[poly[i]]
		p2 := verts[poly[(i+1)%len(poly)]]
		p3 := verts[poly[(i+2)%len(poly)]]
		a := Angle(p1, p2, p3)
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	return min, max
}

// MinMaxEdge returns the shortest and longest edge length of the
// polygon.
func MinMaxEdge(poly []int32, verts []Vec2) (min, max float64) {
	min, max = -1, -1
	for i := range poly {
		v0 := verts[poly[i]]
		v1 := verts[poly[(i+1)%len(poly)]]
		l := v0.Dist(v1)
		if min == -1 || l < min {
			min = l
		}
		if max == -1 || l > max {
			max = l
		}
	}
	return min, max
}
