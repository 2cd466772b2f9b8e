package polylla

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Face colors in the emitted kernel mesh. Yellow marks a convex face
// whose kernel is the face itself, red a strict-subset kernel.
const (
	colorConvex = "255 255 0"
	colorKernel = "255 0 0"
)

// WriteKernelOFF computes the kernel of every face of the mesh and
// writes the resulting kernel mesh to w in OFF format. Faces with an
// empty kernel are omitted and the face count decremented; vertex
// indices are emitted fresh per face, without dedup.
func WriteKernelOFF(w io.Writer, m *Mesh, b *Builder, ctx *BuildContext) error {
	var (
		vbuf   strings.Builder
		fbuf   strings.Builder
		nverts int
		nfaces int
		offset int
	)
	ctx.StartTimer(TimerKernel)
	for i, poly := range m.Polys {
		kv := b.Kernel(poly, m.Verts)
		color := colorKernel
		if equalRing(kv, m.PolyPoints(poly)) {
			color = colorConvex
		} else if len(kv) == 0 {
			ctx.Warningf("face %d: empty kernel %v", i, poly)
			continue
		}
		nverts += len(kv)
		nfaces++
		fmt.Fprintf(&fbuf, "%d", len(kv))
		for j, v := range kv {
			// adding +0 turns a negative zero into 0, so it prints as "0"
			fmt.Fprintf(&vbuf, "%g %g 0.0\n", v[0]+0, v[1]+0)
			fmt.Fprintf(&fbuf, " %d", offset+j)
		}
		fmt.Fprintf(&fbuf, " %s\n", color)
		offset += len(kv)
	}
	ctx.StopTimer(TimerKernel)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "OFF")
	fmt.Fprintf(bw, "%d %d 0\n", nverts, nfaces)
	bw.WriteString(vbuf.String())
	bw.WriteString(fbuf.String())
	return bw.Flush()
}

// equalRing reports whether the two vertex rings are identical,
// vertex for vertex.
func equalRing(a, b []Vec2) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
