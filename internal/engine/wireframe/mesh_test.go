package wireframe

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/Faultbox/wavesurface/pkg/surface"
)

func smallParams() surface.Params {
	return surface.Params{A: 4, N: 0.5, M: 6, B: 6, Phi: 0, Nu: 4, Nr: 2, RLines: 1, ULines: 1}
}

func TestBuildSingleLines(t *testing.T) {
	m, err := Build(smallParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(m.Rings) != 18 {
		t.Fatalf("ring floats: got %d, want 18", len(m.Rings))
	}
	// One ring at r=0: every sample sits on the axis at z = 4 sin(0).
	for i, v := range m.Rings {
		if v != 0 {
			t.Errorf("ring float %d: got %v, want 0", i, v)
		}
	}

	if len(m.Meridians) != 6 {
		t.Fatalf("meridian floats: got %d, want 6", len(m.Meridians))
	}
	// One meridian at u=0 from r=0 to r=b.
	start := m.Meridians[0:3]
	end := m.Meridians[3:6]
	if start[0] != 0 || start[1] != 0 || start[2] != 0 {
		t.Errorf("meridian start: got %v, want origin", start)
	}
	if end[0] != 6 || end[1] != 0 {
		t.Errorf("meridian end: got %v, want (6, 0, z)", end)
	}
	// sin(π r) vanishes at r=6.
	if math.Abs(float64(end[2])) > 1e-5 {
		t.Errorf("meridian end z: got %v, want ~0", end[2])
	}

	if m.RingCount() != 6 || m.MeridianCount() != 2 {
		t.Errorf("vertex counts: got (%d, %d), want (6, 2)", m.RingCount(), m.MeridianCount())
	}
}

func TestBuildArrayLengths(t *testing.T) {
	tests := []struct {
		name           string
		nu, nr         int
		rLines, uLines int
	}{
		{"defaults", 120, 120, 40, 40},
		{"minimum counts", 3, 2, 2, 2},
		{"clamped counts", 1, 0, 3, 5},
		{"negative counts", -4, -9, 2, 1},
		{"no rings", 10, 10, 0, 7},
		{"no meridians", 10, 10, 7, 0},
		{"nothing", 10, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := surface.DefaultParams()
			p.Nu, p.Nr = tt.nu, tt.nr
			p.RLines, p.ULines = tt.rLines, tt.uLines

			m, err := Build(p)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}

			nu := max(3, tt.nu)
			nr := max(2, tt.nr)
			if want := 2 * 3 * tt.rLines * (nu - 1); len(m.Rings) != want {
				t.Errorf("ring floats: got %d, want %d", len(m.Rings), want)
			}
			if want := 2 * 3 * tt.uLines * (nr - 1); len(m.Meridians) != want {
				t.Errorf("meridian floats: got %d, want %d", len(m.Meridians), want)
			}
			if m.RingCount()*3 != len(m.Rings) || m.MeridianCount()*3 != len(m.Meridians) {
				t.Errorf("vertex counts do not match float counts")
			}
		})
	}
}

func TestBuildRingRadii(t *testing.T) {
	p := surface.DefaultParams()
	p.Nu = 8
	p.RLines = 4
	p.ULines = 0

	m, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}

	floatsPerRing := 2 * 3 * (p.Nu - 1)
	for i := 0; i < p.RLines; i++ {
		wantR := p.B * float64(i) / float64(p.RLines-1)
		ring := m.Rings[i*floatsPerRing : (i+1)*floatsPerRing]
		for v := 0; v < len(ring); v += 3 {
			r := math.Hypot(float64(ring[v]), float64(ring[v+1]))
			if math.Abs(r-wantR) > 1e-4 {
				t.Errorf("ring %d vertex %d: radius %v, want %v", i, v/3, r, wantR)
			}
		}
	}
}

func TestBuildRingSeam(t *testing.T) {
	p := surface.DefaultParams()
	p.Nu = 5
	p.RLines = 2
	p.ULines = 0

	m, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}

	// Second ring at r=b: consecutive segments share endpoints exactly.
	segs := p.Nu - 1
	ring := m.Rings[6*segs:]
	for s := 0; s < segs-1; s++ {
		end := ring[s*6+3 : s*6+6]
		next := ring[(s+1)*6 : (s+1)*6+3]
		if !reflect.DeepEqual(end, next) {
			t.Errorf("segment %d end %v != segment %d start %v", s, end, s+1, next)
		}
	}

	// First sample at u=0, last at u=2π: geometrically the same point,
	// and there is no extra segment joining them.
	first := ring[0:3]
	last := ring[len(ring)-3:]
	for k := 0; k < 3; k++ {
		if math.Abs(float64(first[k]-last[k])) > 1e-4 {
			t.Errorf("seam coordinate %d: first %v, last %v", k, first[k], last[k])
		}
	}
	if len(ring) != 6*segs {
		t.Errorf("ring floats: got %d, want %d (no closing segment)", len(ring), 6*segs)
	}
}

func TestBuildMeridianAngles(t *testing.T) {
	p := surface.DefaultParams()
	p.Nr = 6
	p.RLines = 0
	p.ULines = 5

	m, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}

	floatsPerLine := 2 * 3 * (p.Nr - 1)
	for j := 0; j < p.ULines; j++ {
		u := 2 * math.Pi * float64(j) / float64(p.ULines-1)
		line := m.Meridians[j*floatsPerLine : (j+1)*floatsPerLine]

		// Outermost vertex is at r=b along angle u.
		tail := line[len(line)-3:]
		if math.Abs(float64(tail[0])-p.B*math.Cos(u)) > 1e-4 ||
			math.Abs(float64(tail[1])-p.B*math.Sin(u)) > 1e-4 {
			t.Errorf("meridian %d tail: got (%v, %v), want angle %v", j, tail[0], tail[1], u)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	p := surface.DefaultParams()

	a, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a.Rings, b.Rings) {
		t.Error("ring arrays differ between identical builds")
	}
	if !reflect.DeepEqual(a.Meridians, b.Meridians) {
		t.Error("meridian arrays differ between identical builds")
	}
}

func TestBuildSnapshot(t *testing.T) {
	p := smallParams()
	m, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}
	rings := append([]float32(nil), m.Rings...)

	p.A = 100
	p.RLines = 9

	if m.Params().A != 4 || m.Params().RLines != 1 {
		t.Errorf("mesh params changed with caller copy: %+v", m.Params())
	}
	if !reflect.DeepEqual(rings, m.Rings) {
		t.Error("mesh contents changed with caller copy")
	}
}

func TestBuildDomainError(t *testing.T) {
	p := surface.DefaultParams()
	p.B = 0

	m, err := Build(p)
	if !errors.Is(err, surface.ErrDomain) {
		t.Fatalf("expected ErrDomain, got %v", err)
	}
	if m != nil {
		t.Error("expected no mesh on domain error")
	}

	p = surface.DefaultParams()
	p.M = math.NaN()
	if _, err := Build(p); !errors.Is(err, surface.ErrDomain) {
		t.Errorf("NaN m: expected ErrDomain, got %v", err)
	}
}

func TestBuildFinite(t *testing.T) {
	p := surface.DefaultParams()
	p.B = -3 // Radius sweeps toward negative values; still well defined.

	m, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, arr := range [][]float32{m.Rings, m.Meridians} {
		for i, v := range arr {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Fatalf("float %d is not finite: %v", i, v)
			}
		}
	}
}

func TestBuildOverflow(t *testing.T) {
	base := surface.Params{A: 4, N: 0.5, M: 6, B: 6, Phi: 1, Nu: 4, Nr: 4, RLines: 2, ULines: 2}

	tests := []struct {
		name  string
		edit  func(*surface.Params)
		field string
	}{
		{"growing damping", func(p *surface.Params) { p.N = -1000 }, "n"},
		{"huge amplitude", func(p *surface.Params) { p.A = 1e300 }, "a"},
		{"huge radius", func(p *surface.Params) { p.B = 1e300 }, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.edit(&p)

			m, err := Build(p)
			if m != nil {
				t.Errorf("expected no mesh, got %d ring floats", len(m.Rings))
			}
			if !errors.Is(err, surface.ErrDomain) {
				t.Fatalf("expected ErrDomain, got %v", err)
			}
			var de *surface.DomainError
			if !errors.As(err, &de) || de.Field != tt.field {
				t.Errorf("error field = %v, want %q", err, tt.field)
			}
		})
	}
}
