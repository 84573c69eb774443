// Package wireframe tessellates the wave surface into line segments and
// draws them through an injected rendering context.
package wireframe

import (
	"math"
	"strconv"

	"github.com/Faultbox/wavesurface/pkg/surface"
)

// floatsPerVertex is the size of one position attribute (x, y, z).
const floatsPerVertex = 3

// Mesh holds two families of disjoint line segments, two vertices each.
// Vertices shared by consecutive segments are duplicated.
type Mesh struct {
	Rings     []float32 // Constant r, sweeping u
	Meridians []float32 // Constant u, sweeping r

	params surface.Params
}

// RingCount returns the number of ring vertices.
func (m *Mesh) RingCount() int {
	return len(m.Rings) / floatsPerVertex
}

// MeridianCount returns the number of meridian vertices.
func (m *Mesh) MeridianCount() int {
	return len(m.Meridians) / floatsPerVertex
}

// Params returns the parameter snapshot the mesh was built from.
func (m *Mesh) Params() surface.Params {
	return m.params
}

// Build tessellates the surface over r in [0, b] and u in [0, 2π].
//
// Each ring samples Nu angles including both 0 and 2π and emits Nu-1
// segments. The ring is not closed back from the last sample to the first.
// Meridians are built the same way with Nr radii.
func Build(p surface.Params) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	nu, nr := p.Effective()
	rMax := p.B
	uMax := 2 * math.Pi

	m := &Mesh{
		Rings:     make([]float32, 0, 2*floatsPerVertex*p.RLines*(nu-1)),
		Meridians: make([]float32, 0, 2*floatsPerVertex*p.ULines*(nr-1)),
		params:    p,
	}

	for i := 0; i < p.RLines; i++ {
		r := linePosition(i, p.RLines) * rMax

		prev, err := vertex(r, 0, p)
		if err != nil {
			return nil, err
		}
		for j := 1; j < nu; j++ {
			u := float64(j) / float64(nu-1) * uMax
			cur, err := vertex(r, u, p)
			if err != nil {
				return nil, err
			}
			m.Rings = appendSegment(m.Rings, prev, cur)
			prev = cur
		}
	}

	for j := 0; j < p.ULines; j++ {
		u := linePosition(j, p.ULines) * uMax

		prev, err := vertex(0, u, p)
		if err != nil {
			return nil, err
		}
		for i := 1; i < nr; i++ {
			r := float64(i) / float64(nr-1) * rMax
			cur, err := vertex(r, u, p)
			if err != nil {
				return nil, err
			}
			m.Meridians = appendSegment(m.Meridians, prev, cur)
			prev = cur
		}
	}

	return m, nil
}

// linePosition spreads count lines uniformly over [0, 1].
// A single line sits at 0.
func linePosition(i, count int) float64 {
	if count == 1 {
		return 0
	}
	return float64(i) / float64(count-1)
}

// vertex evaluates the surface at (r, u) and narrows it to float32.
// Finite parameters can still overflow: exp(-n r) for large negative n, or
// the float32 range for huge a or b. Those are reported as a DomainError on
// the parameter responsible.
func vertex(r, u float64, p surface.Params) ([3]float32, error) {
	pt := surface.Eval(r, u, p)
	v := [3]float32{float32(pt.X), float32(pt.Y), float32(pt.Z)}
	if finite32(v[0]) && finite32(v[1]) && finite32(v[2]) {
		return v, nil
	}

	switch {
	case !finite32(v[0]) || !finite32(v[1]):
		return v, &surface.DomainError{Field: "b", Value: p.B, Reason: "radius overflows vertex precision"}
	case !finite32(float32(math.Exp(-p.N * r))):
		return v, &surface.DomainError{Field: "n", Value: p.N, Reason: "damping overflows at radius " + strconv.FormatFloat(r, 'g', -1, 64)}
	default:
		return v, &surface.DomainError{Field: "a", Value: p.A, Reason: "height overflows vertex precision"}
	}
}

func finite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func appendSegment(dst []float32, a, b [3]float32) []float32 {
	return append(dst, a[0], a[1], a[2], b[0], b[1], b[2])
}
