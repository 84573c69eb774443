// Package camera provides the trackball rotation and projection for the
// surface viewport.
package camera

import (
	gomath "math"

	"github.com/Faultbox/wavesurface/pkg/math"
)

// Scene placement applied between the trackball and the projection.
var (
	sceneTilt     = math.Vec3{X: 0.707, Y: 0.707, Z: 0}
	sceneTiltRad  = float32(0.7)
	sceneDistance = float32(10)
)

// Projection holds perspective settings.
type Projection struct {
	FovY float32 // Radians
	Near float32
	Far  float32
}

// DefaultProjection returns a narrow lens wide enough for the default surface.
func DefaultProjection() Projection {
	return Projection{
		FovY: gomath.Pi / 8,
		Near: 0.1,
		Far:  100,
	}
}

// Matrix returns the projection matrix for the given aspect ratio.
func (p Projection) Matrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(p.FovY, aspect, p.Near, p.Far)
}

// Trackball rotates the scene around its origin from mouse drags.
type Trackball struct {
	rotation math.Quat

	// Radians per pixel of drag
	Sensitivity float32
}

// NewTrackball creates a trackball with no rotation.
func NewTrackball() *Trackball {
	return &Trackball{
		rotation:    math.QuatIdentity(),
		Sensitivity: 0.01,
	}
}

// HandleDrag rotates around the screen-space axis perpendicular to the drag.
func (t *Trackball) HandleDrag(deltaX, deltaY float32) {
	axis := math.Vec3{X: deltaY, Y: deltaX, Z: 0}
	length := axis.Length()
	if length == 0 {
		return
	}
	turn := math.QuatFromAxisAngle(axis.Scale(1/length), length*t.Sensitivity)
	t.rotation = turn.Mul(t.rotation).Normalize()
}

// Reset clears the accumulated rotation.
func (t *Trackball) Reset() {
	t.rotation = math.QuatIdentity()
}

// ViewMatrix returns the accumulated rotation.
func (t *Trackball) ViewMatrix() math.Mat4 {
	return t.rotation.ToMat4()
}

// ModelViewProjection combines the trackball view with the fixed scene
// placement and the projection.
func ModelViewProjection(proj Projection, view math.Mat4, aspect float32) math.Mat4 {
	tilt := math.RotateAxis(sceneTilt, sceneTiltRad)
	push := math.Translate(0, 0, -sceneDistance)

	modelView := push.Mul(tilt.Mul(view))
	return proj.Matrix(aspect).Mul(modelView)
}
