package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/Faultbox/wavesurface/internal/engine/wireframe"
	"github.com/Faultbox/wavesurface/pkg/surface"
)

func buildTestMesh(t *testing.T, rLines, uLines int) *wireframe.Mesh {
	t.Helper()
	p := surface.DefaultParams()
	p.Nu, p.Nr = 4, 3
	p.RLines, p.ULines = rLines, uLines

	mesh, err := wireframe.Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return mesh
}

func countPrefix(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func TestWriteOBJCounts(t *testing.T) {
	mesh := buildTestMesh(t, 2, 3)

	var buf bytes.Buffer
	if err := writeOBJ(&buf, mesh); err != nil {
		t.Fatalf("writeOBJ: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	// 2 rings x 3 segments + 3 meridians x 2 segments
	segments := 2*3 + 3*2
	if got := countPrefix(lines, "v "); got != 2*segments {
		t.Errorf("vertex records = %d, want %d", got, 2*segments)
	}
	if got := countPrefix(lines, "l "); got != segments {
		t.Errorf("line records = %d, want %d", got, segments)
	}
	if got := countPrefix(lines, "g "); got != 2 {
		t.Errorf("groups = %d, want 2", got)
	}
}

func TestWriteOBJIndices(t *testing.T) {
	mesh := buildTestMesh(t, 1, 1)

	var buf bytes.Buffer
	if err := writeOBJ(&buf, mesh); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// One ring of 3 segments uses vertices 1..6, so the first meridian
	// segment starts at 7.
	if !strings.Contains(out, "g rings\n") || !strings.Contains(out, "g meridians\n") {
		t.Fatalf("missing groups:\n%s", out)
	}
	if !strings.Contains(out, "l 1 2\n") || !strings.Contains(out, "l 5 6\n") {
		t.Errorf("ring indices wrong:\n%s", out)
	}
	if !strings.Contains(out, "l 7 8\n") {
		t.Errorf("meridian indices should continue after rings:\n%s", out)
	}
	if strings.Contains(out, "l 6 7\n") {
		t.Errorf("segments must not be joined across pairs:\n%s", out)
	}
}

func TestWriteOBJEmptyFamilies(t *testing.T) {
	mesh := buildTestMesh(t, 0, 0)

	var buf bytes.Buffer
	if err := writeOBJ(&buf, mesh); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if countPrefix(lines, "v ") != 0 || countPrefix(lines, "l ") != 0 {
		t.Errorf("expected no geometry:\n%s", buf.String())
	}
	if countPrefix(lines, "g ") != 2 {
		t.Errorf("groups should still be written:\n%s", buf.String())
	}
}

func TestZRange(t *testing.T) {
	mesh := buildTestMesh(t, 5, 4)
	zmin, zmax := zRange(mesh)

	a := surface.DefaultParams().A
	if zmin < -a-1e-6 || zmax > a+1e-6 {
		t.Errorf("z range [%v, %v] exceeds amplitude %v", zmin, zmax, a)
	}
	if zmin > zmax {
		t.Errorf("zmin %v > zmax %v", zmin, zmax)
	}
	if math.IsInf(zmin, 0) || math.IsInf(zmax, 0) {
		t.Error("range should be finite for a non-empty mesh")
	}
}
