package polylla

import (
	"fmt"
	"math"
	"os"
)

// Stats aggregates the per-mesh quality statistics: interior angles,
// edge aspect ratios, kernel-to-polygon area ratios and
// area-perimeter ratios.
type Stats struct {
	EdgesPerPoly float64

	MinAngle float64
	MaxAngle float64

	MinEdgeRatio float64
	MaxEdgeRatio float64
	AvgEdgeRatio float64

	MinKernelRatio float64
	MaxKernelRatio float64
	AvgKernelRatio float64

	MinAPR float64
	MaxAPR float64
	AvgAPR float64
}

// KernelRatio returns area(kernel)/area(polygon), 0 when either the
// kernel or the polygon area vanishes.
func KernelRatio(poly []int32, verts []Vec2, b *Builder) float64 {
	kv := b.Kernel(poly, verts)
	areaPoly := PolyArea(poly, verts)
	if areaPoly == 0 {
		return 0
	}
	return Area(kv) / areaPoly
}

// APR returns the area-perimeter ratio 2*pi*A/P^2 of the polygon.
// A circle scores 1/2, degenerate shapes tend to 0.
func APR(poly []int32, verts []Vec2) float64 {
	area := PolyArea(poly, verts)
	perimeter := PolyPerimeter(poly, verts)
	return (2 * math.Pi * area) / (perimeter * perimeter)
}

// ComputeStats runs the per-polygon accumulations over every face of
// the mesh. Faces with an empty kernel contribute a zero kernel ratio
// and are reported as warnings on ctx.
func ComputeStats(m *Mesh, b *Builder, ctx *BuildContext) Stats {
	var s Stats
	if len(m.Polys) == 0 {
		return s
	}
	ctx.StartTimer(TimerStats)
	defer ctx.StopTimer(TimerStats)

	s.MinAngle, s.MaxAngle = 360, 0
	s.MinEdgeRatio, s.MaxEdgeRatio = -1, -1
	s.MinKernelRatio, s.MaxKernelRatio = -1, -1
	s.MinAPR, s.MaxAPR = -1, -1

	var edges int
	for i, poly := range m.Polys {
		edges += len(poly)

		minA, maxA := MinMaxAngle(poly, m.Verts)
		if minA < s.MinAngle {
			s.MinAngle = minA
		}
		if maxA > s.MaxAngle {
			s.MaxAngle = maxA
		}

		minE, maxE := MinMaxEdge(poly, m.Verts)
		edgeRatio := minE / maxE
		if s.MinEdgeRatio == -1 || edgeRatio < s.MinEdgeRatio {
			s.MinEdgeRatio = edgeRatio
		}
		if s.MaxEdgeRatio == -1 || edgeRatio > s.MaxEdgeRatio {
			s.MaxEdgeRatio = edgeRatio
		}
		s.AvgEdgeRatio += edgeRatio

		kernelRatio := KernelRatio(poly, m.Verts, b)
		if kernelRatio == 0 {
			ctx.Warningf("face %d: empty kernel %v", i, poly)
		}
		if s.MinKernelRatio == -1 || kernelRatio < s.MinKernelRatio {
			s.MinKernelRatio = kernelRatio
		}
		if s.MaxKernelRatio == -1 || kernelRatio > s.MaxKernelRatio {
			s.MaxKernelRatio = kernelRatio
		}
		s.AvgKernelRatio += kernelRatio

		apr := APR(poly, m.Verts)
		if s.MinAPR == -1 || apr < s.MinAPR {
			s.MinAPR = apr
		}
		if s.MaxAPR == -1 || apr > s.MaxAPR {
			s.MaxAPR = apr
		}
		s.AvgAPR += apr
	}
	n := float64(len(m.Polys))
	s.EdgesPerPoly = float64(edges) / n
	s.AvgEdgeRatio /= n
	s.AvgKernelRatio /= n
	s.AvgAPR /= n
	return s
}

// AppendStatsCSV appends a single CSV row for the named mesh to the
// file at path, creating it when absent.
func AppendStatsCSV(path, name string, s Stats) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f\n",
		name,
		s.MinAngle, s.MaxAngle,
		s.MinEdgeRatio, s.MaxEdgeRatio, s.AvgEdgeRatio,
		s.MinKernelRatio, s.MaxKernelRatio, s.AvgKernelRatio,
		s.MinAPR, s.MaxAPR, s.AvgAPR)
	return err
}
