// Package surface defines the damped circular wave surface of revolution
//
//	x = r cos u, y = r sin u, z = a e^(-n r) sin((m π / b) r + φ)
//
// and the parameter set that shapes it.
package surface

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Sample count floors. Fewer radius samples cannot describe a sweep and fewer
// angle samples cannot describe a ring.
const (
	MinRadialSamples  = 2
	MinAngularSamples = 3
)

// ErrDomain is matched by every DomainError.
var ErrDomain = errors.New("surface: parameter outside domain")

// DomainError reports a parameter the surface is undefined for.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("surface: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrDomain) succeed.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// Params holds the surface shape and the tessellation resolution.
type Params struct {
	A   float64 `yaml:"a"`   // Amplitude
	N   float64 `yaml:"n"`   // Damping rate
	M   float64 `yaml:"m"`   // Wave frequency numerator
	B   float64 `yaml:"b"`   // Wave frequency denominator and max radius
	Phi float64 `yaml:"phi"` // Phase offset, radians

	Nu     int `yaml:"nu"`      // Samples along u per ring
	Nr     int `yaml:"nr"`      // Samples along r per meridian
	RLines int `yaml:"r_lines"` // Number of rings (constant r)
	ULines int `yaml:"u_lines"` // Number of meridians (constant u)
}

// DefaultParams returns the initial viewer parameters.
func DefaultParams() Params {
	return Params{
		A:      4,
		N:      0.5,
		M:      6,
		B:      6,
		Phi:    0,
		Nu:     120,
		Nr:     120,
		RLines: 40,
		ULines: 40,
	}
}

// Validate reports every parameter the surface cannot be evaluated for.
// Each reported error matches ErrDomain; use multierr.Errors to list them.
func (p Params) Validate() error {
	var err error

	reals := []struct {
		name  string
		value float64
	}{
		{"a", p.A},
		{"n", p.N},
		{"m", p.M},
		{"b", p.B},
		{"phi", p.Phi},
	}
	for _, f := range reals {
		if !finite(f.value) {
			err = multierr.Append(err, &DomainError{Field: f.name, Value: f.value, Reason: "not a finite number"})
		}
	}

	if p.B == 0 {
		err = multierr.Append(err, &DomainError{Field: "b", Value: p.B, Reason: "wave frequency undefined and radius domain empty"})
	}
	if p.RLines < 0 {
		err = multierr.Append(err, &DomainError{Field: "r_lines", Value: float64(p.RLines), Reason: "negative line count"})
	}
	if p.ULines < 0 {
		err = multierr.Append(err, &DomainError{Field: "u_lines", Value: float64(p.ULines), Reason: "negative line count"})
	}

	return err
}

// Effective returns the sample counts actually used for tessellation.
func (p Params) Effective() (nu, nr int) {
	return max(MinAngularSamples, p.Nu), max(MinRadialSamples, p.Nr)
}

// WaveNumber returns m π / b. The result is ±Inf or NaN when b is zero.
func (p Params) WaveNumber() float64 {
	return p.M * math.Pi / p.B
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
