// Package controls models the parameter sliders that drive the surface.
//
// A Panel holds the live parameter set. Edits are snapped to the slider step
// and clamped to its range, so every value that leaves the panel is inside
// the surface domain.
package controls

import (
	"fmt"
	"math"

	"github.com/Faultbox/wavesurface/pkg/surface"
)

// Key names a parameter. Keys match the YAML field names.
type Key string

const (
	KeyA      Key = "a"
	KeyN      Key = "n"
	KeyM      Key = "m"
	KeyB      Key = "b"
	KeyPhi    Key = "phi"
	KeyNu     Key = "nu"
	KeyNr     Key = "nr"
	KeyRLines Key = "r_lines"
	KeyULines Key = "u_lines"
)

// Slider describes one adjustable parameter.
type Slider struct {
	Key     Key
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Integer bool
	Format  string // fmt verb for the displayed value

	get func(*surface.Params) float64
	set func(*surface.Params, float64)
}

// Sliders returns the descriptors in display order.
func Sliders() []Slider {
	return []Slider{
		{
			Key: KeyA, Label: "Amplitude a", Min: -10, Max: 10, Step: 0.1, Format: "%g",
			get: func(p *surface.Params) float64 { return p.A },
			set: func(p *surface.Params, v float64) { p.A = v },
		},
		{
			Key: KeyN, Label: "Damping n", Min: 0, Max: 2, Step: 0.01, Format: "%.2f",
			get: func(p *surface.Params) float64 { return p.N },
			set: func(p *surface.Params, v float64) { p.N = v },
		},
		{
			Key: KeyM, Label: "Waves m", Min: 0, Max: 20, Step: 1, Format: "%g",
			get: func(p *surface.Params) float64 { return p.M },
			set: func(p *surface.Params, v float64) { p.M = v },
		},
		{
			// b bounds the radius domain; zero would leave it empty.
			Key: KeyB, Label: "Radius b", Min: 0.5, Max: 12, Step: 0.01, Format: "%.2f",
			get: func(p *surface.Params) float64 { return p.B },
			set: func(p *surface.Params, v float64) { p.B = v },
		},
		{
			Key: KeyPhi, Label: "Phase phi", Min: 0, Max: 6.28, Step: 0.01, Format: "%.2f",
			get: func(p *surface.Params) float64 { return p.Phi },
			set: func(p *surface.Params, v float64) { p.Phi = v },
		},
		{
			Key: KeyNu, Label: "Samples Nu", Min: surface.MinAngularSamples, Max: 400, Step: 1, Integer: true, Format: "%.0f",
			get: func(p *surface.Params) float64 { return float64(p.Nu) },
			set: func(p *surface.Params, v float64) { p.Nu = int(v) },
		},
		{
			Key: KeyNr, Label: "Samples Nr", Min: surface.MinRadialSamples, Max: 400, Step: 1, Integer: true, Format: "%.0f",
			get: func(p *surface.Params) float64 { return float64(p.Nr) },
			set: func(p *surface.Params, v float64) { p.Nr = int(v) },
		},
		{
			Key: KeyRLines, Label: "Rings", Min: 0, Max: 200, Step: 1, Integer: true, Format: "%.0f",
			get: func(p *surface.Params) float64 { return float64(p.RLines) },
			set: func(p *surface.Params, v float64) { p.RLines = int(v) },
		},
		{
			Key: KeyULines, Label: "Meridians", Min: 0, Max: 200, Step: 1, Integer: true, Format: "%.0f",
			get: func(p *surface.Params) float64 { return float64(p.ULines) },
			set: func(p *surface.Params, v float64) { p.ULines = int(v) },
		},
	}
}

// Snap rounds v to the slider step and clamps it to the range.
func (s Slider) Snap(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		scale := math.Pow10(decimals(s.Step))
		v = math.Round(v*scale) / scale
	}
	if s.Integer {
		v = math.Round(v)
	}
	return math.Min(s.Max, math.Max(s.Min, v))
}

// decimals returns the number of fractional digits in a step like 0.01.
func decimals(step float64) int {
	d := 0
	for s := step; s < 1 && d < 9; s *= 10 {
		d++
	}
	return d
}

// Panel is the live parameter set behind the sliders.
type Panel struct {
	sliders  []Slider
	index    map[Key]int
	params   surface.Params
	selected int
	changed  bool
}

// NewPanel creates a panel starting from p, clamped into the slider ranges.
func NewPanel(p surface.Params) *Panel {
	sliders := Sliders()
	index := make(map[Key]int, len(sliders))
	for i, s := range sliders {
		index[s.Key] = i
	}

	panel := &Panel{sliders: sliders, index: index}
	panel.Reset(p)
	return panel
}

// Reset replaces every value and marks the panel changed.
func (p *Panel) Reset(params surface.Params) {
	p.params = params
	for _, s := range p.sliders {
		v := s.get(&p.params)
		if math.IsNaN(v) {
			v = s.Min
		}
		s.set(&p.params, s.Snap(v))
	}
	p.changed = true
}

// Sliders returns the panel's slider descriptors.
func (p *Panel) Sliders() []Slider {
	return p.sliders
}

// Value returns the current value for key.
func (p *Panel) Value(key Key) float64 {
	s, ok := p.slider(key)
	if !ok {
		return 0
	}
	return s.get(&p.params)
}

// Set assigns a value and reports whether the parameter changed.
// Unknown keys and NaN are ignored.
func (p *Panel) Set(key Key, v float64) bool {
	s, ok := p.slider(key)
	if !ok || math.IsNaN(v) {
		return false
	}

	v = s.Snap(v)
	if v == s.get(&p.params) {
		return false
	}
	s.set(&p.params, v)
	p.changed = true
	return true
}

// Nudge moves a value by whole steps.
func (p *Panel) Nudge(key Key, steps int) bool {
	s, ok := p.slider(key)
	if !ok {
		return false
	}
	return p.Set(key, s.get(&p.params)+float64(steps)*s.Step)
}

// Snapshot returns a copy of the current parameters.
func (p *Panel) Snapshot() surface.Params {
	return p.params
}

// TakeChanged reports whether anything changed since the last call and
// clears the flag.
func (p *Panel) TakeChanged() bool {
	changed := p.changed
	p.changed = false
	return changed
}

// Format returns the display string for key's current value.
func (p *Panel) Format(key Key) string {
	s, ok := p.slider(key)
	if !ok {
		return ""
	}
	return fmt.Sprintf(s.Format, s.get(&p.params))
}

// Selected returns the slider with keyboard focus.
func (p *Panel) Selected() Slider {
	return p.sliders[p.selected]
}

// Next moves keyboard focus down, wrapping around.
func (p *Panel) Next() {
	p.selected = (p.selected + 1) % len(p.sliders)
}

// Prev moves keyboard focus up, wrapping around.
func (p *Panel) Prev() {
	p.selected = (p.selected + len(p.sliders) - 1) % len(p.sliders)
}

// Summary returns "label: value" for the selected slider.
func (p *Panel) Summary() string {
	s := p.Selected()
	return fmt.Sprintf("%s: %s", s.Label, p.Format(s.Key))
}

func (p *Panel) slider(key Key) (Slider, bool) {
	i, ok := p.index[key]
	if !ok {
		return Slider{}, false
	}
	return p.sliders[i], true
}
