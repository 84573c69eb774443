package surface

import "math"

// Point3 is a point on the surface.
type Point3 struct {
	X, Y, Z float64
}

// Point evaluates the surface at radius r and angle u.
func Point(r, u float64, p Params) (Point3, error) {
	if p.B == 0 || !finite(p.B) {
		return Point3{}, &DomainError{Field: "b", Value: p.B, Reason: "wave frequency undefined and radius domain empty"}
	}
	if !finite(r) {
		return Point3{}, &DomainError{Field: "r", Value: r, Reason: "not a finite number"}
	}
	if !finite(u) {
		return Point3{}, &DomainError{Field: "u", Value: u, Reason: "not a finite number"}
	}
	return Eval(r, u, p), nil
}

// Eval is Point without domain checks. The caller must have validated p.
func Eval(r, u float64, p Params) Point3 {
	w := p.WaveNumber()
	return Point3{
		X: r * math.Cos(u),
		Y: r * math.Sin(u),
		Z: p.A * math.Exp(-p.N*r) * math.Sin(w*r+p.Phi),
	}
}
