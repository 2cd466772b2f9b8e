package polylla

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteKernelOFF(t *testing.T) {
	// one convex face (kept verbatim, yellow), one reflex face with a
	// strict-subset kernel (red), one face with an empty kernel
	// (omitted, face count decremented)
	mesh := &Mesh{
		Verts: []Vec2{
			{0, 0}, {1, 0}, {0, 1}, // triangle
			{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}, {0, 2}, // L-shape
			{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3}, // U-shape
		},
		Polys: [][]int32{
			{0, 1, 2},
			{3, 4, 5, 6, 7, 8},
			{9, 10, 11, 12, 13, 14, 15, 16},
		},
	}
	var sb strings.Builder
	ctx := &BuildContext{}
	err := WriteKernelOFF(&sb, mesh, NewBuilder(NewSettings()), ctx)
	require.NoError(t, err)

	want := `OFF
7 2 0
0 0 0.0
1 0 0.0
0 1 0.0
1 1 0.0
1 2 0.0
0 2 0.0
0 1 0.0
3 0 1 2 255 255 0
4 3 4 5 6 255 0 0
`
	require.Equal(t, want, sb.String())
	require.Equal(t, 1, ctx.LogCount(), "one warning for the empty kernel face")
}
