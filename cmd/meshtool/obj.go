package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/wavesurface/internal/engine/wireframe"
)

// writeOBJ writes every segment as two "v" records and one "l" record.
// Rings and meridians go into separate groups. OBJ indices are 1-based and
// global across groups.
func writeOBJ(w io.Writer, mesh *wireframe.Mesh) error {
	bw := bufio.NewWriter(w)

	p := mesh.Params()
	fmt.Fprintf(bw, "# wave surface a=%g n=%g m=%g b=%g phi=%g\n", p.A, p.N, p.M, p.B, p.Phi)

	next := 1
	next = writeGroup(bw, "rings", mesh.Rings, next)
	writeGroup(bw, "meridians", mesh.Meridians, next)

	return bw.Flush()
}

func writeGroup(w *bufio.Writer, name string, data []float32, first int) int {
	fmt.Fprintf(w, "g %s\n", name)
	for i := 0; i+2 < len(data); i += 3 {
		fmt.Fprintf(w, "v %g %g %g\n", data[i], data[i+1], data[i+2])
	}

	vertices := len(data) / 3
	for i := 0; i+1 < vertices; i += 2 {
		fmt.Fprintf(w, "l %d %d\n", first+i, first+i+1)
	}
	return first + vertices
}
