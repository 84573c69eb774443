package controls

import (
	"math"
	"testing"

	"github.com/Faultbox/wavesurface/pkg/surface"
)

func TestNewPanelKeepsDefaults(t *testing.T) {
	p := NewPanel(surface.DefaultParams())
	if got := p.Snapshot(); got != surface.DefaultParams() {
		t.Errorf("defaults changed by snapping:\n got %+v\nwant %+v", got, surface.DefaultParams())
	}
	if !p.TakeChanged() {
		t.Error("new panel should report a change so the first frame builds")
	}
	if p.TakeChanged() {
		t.Error("TakeChanged should clear the flag")
	}
}

func TestSlidersCoverAllParams(t *testing.T) {
	want := []Key{KeyA, KeyN, KeyM, KeyB, KeyPhi, KeyNu, KeyNr, KeyRLines, KeyULines}
	sliders := Sliders()
	if len(sliders) != len(want) {
		t.Fatalf("expected %d sliders, got %d", len(want), len(sliders))
	}
	for i, s := range sliders {
		if s.Key != want[i] {
			t.Errorf("slider %d: key %q, want %q", i, s.Key, want[i])
		}
		if s.Min >= s.Max || s.Step <= 0 {
			t.Errorf("slider %q has bad range [%v, %v] step %v", s.Key, s.Min, s.Max, s.Step)
		}
	}
}

func TestSetClampsToDomain(t *testing.T) {
	tests := []struct {
		key  Key
		in   float64
		want float64
	}{
		{KeyB, 0, 0.5},
		{KeyB, -4, 0.5},
		{KeyB, 100, 12},
		{KeyNu, 1, surface.MinAngularSamples},
		{KeyNr, 0, surface.MinRadialSamples},
		{KeyRLines, -3, 0},
		{KeyULines, 12.6, 13},
		{KeyN, 0.123, 0.12},
		{KeyA, 3.14, 3.1},
		{KeyPhi, 7, 6.28},
	}

	for _, tt := range tests {
		p := NewPanel(surface.DefaultParams())
		p.Set(tt.key, tt.in)
		if got := p.Value(tt.key); got != tt.want {
			t.Errorf("Set(%s, %v): got %v, want %v", tt.key, tt.in, got, tt.want)
		}
	}
}

func TestSetReportsChange(t *testing.T) {
	p := NewPanel(surface.DefaultParams())
	p.TakeChanged()

	if p.Set(KeyA, 4) {
		t.Error("setting the same value should not report a change")
	}
	if p.TakeChanged() {
		t.Error("unchanged value should not mark the panel dirty")
	}

	if !p.Set(KeyA, 5) {
		t.Error("new value should report a change")
	}
	if !p.TakeChanged() {
		t.Error("new value should mark the panel dirty")
	}

	if p.Set(KeyA, math.NaN()) {
		t.Error("NaN should be ignored")
	}
	if p.Set(Key("bogus"), 1) {
		t.Error("unknown key should be ignored")
	}
}

func TestNudge(t *testing.T) {
	p := NewPanel(surface.DefaultParams())

	p.Nudge(KeyRLines, 3)
	if got := p.Snapshot().RLines; got != 43 {
		t.Errorf("RLines after +3: got %d, want 43", got)
	}

	p.Nudge(KeyB, -2)
	if got := p.Snapshot().B; got != 5.98 {
		t.Errorf("B after -2 steps: got %v, want 5.98", got)
	}

	for i := 0; i < 1000; i++ {
		p.Nudge(KeyNu, -1)
	}
	if got := p.Snapshot().Nu; got != surface.MinAngularSamples {
		t.Errorf("Nu floor: got %d, want %d", got, surface.MinAngularSamples)
	}
}

func TestSnapshotIsolated(t *testing.T) {
	p := NewPanel(surface.DefaultParams())
	snap := p.Snapshot()

	p.Set(KeyM, 9)
	if snap.M != 6 {
		t.Errorf("snapshot changed after Set: m=%v", snap.M)
	}
}

func TestResetClampsInput(t *testing.T) {
	in := surface.DefaultParams()
	in.B = 0
	in.Nu = 1
	in.A = math.NaN()

	p := NewPanel(in)
	got := p.Snapshot()
	if got.B != 0.5 || got.Nu != surface.MinAngularSamples || got.A != -10 {
		t.Errorf("Reset did not clamp: %+v", got)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("panel values should always validate: %v", err)
	}
}

func TestSelection(t *testing.T) {
	p := NewPanel(surface.DefaultParams())
	if p.Selected().Key != KeyA {
		t.Fatalf("initial selection: got %q, want %q", p.Selected().Key, KeyA)
	}

	p.Prev()
	if p.Selected().Key != KeyULines {
		t.Errorf("Prev from first should wrap to last, got %q", p.Selected().Key)
	}
	p.Next()
	p.Next()
	if p.Selected().Key != KeyN {
		t.Errorf("selection after wrap: got %q, want %q", p.Selected().Key, KeyN)
	}
}

func TestFormat(t *testing.T) {
	p := NewPanel(surface.DefaultParams())

	tests := map[Key]string{
		KeyA:      "4",
		KeyN:      "0.50",
		KeyB:      "6.00",
		KeyPhi:    "0.00",
		KeyNu:     "120",
		KeyRLines: "40",
	}
	for key, want := range tests {
		if got := p.Format(key); got != want {
			t.Errorf("Format(%s): got %q, want %q", key, got, want)
		}
	}
	if got := p.Summary(); got != "Amplitude a: 4" {
		t.Errorf("Summary: got %q", got)
	}
}
