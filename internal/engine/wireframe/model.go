package wireframe

import (
	"errors"
	"fmt"

	"github.com/Faultbox/wavesurface/pkg/surface"
)

var (
	// ErrNotBuilt is returned by Upload before the first successful Build.
	ErrNotBuilt = errors.New("wireframe: mesh not built")
	// ErrNotUploaded is returned by Draw when the current mesh is not on the GPU.
	ErrNotUploaded = errors.New("wireframe: mesh not uploaded")
	// ErrReleased is returned once the model's buffers have been released.
	ErrReleased = errors.New("wireframe: model released")
)

// ResourceError wraps a rendering context failure. It is fatal at init.
type ResourceError struct {
	Op  string
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("wireframe: %s: %v", e.Op, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// Color is an RGBA colour uniform.
type Color [4]float32

// Line family colours.
var (
	RingColor     = Color{1, 1, 1, 1}
	MeridianColor = Color{0.7, 0.9, 1, 1}
)

// Context is the subset of a rendering API the model draws with.
type Context interface {
	CreateBuffer() (uint32, error)
	BufferData(buf uint32, data []float32)
	DeleteBuffer(buf uint32)

	UseProgram(program uint32)
	EnableVertexAttrib(loc uint32)
	// BindVertexBuffer binds buf and points attribute loc at tightly packed
	// float vectors of the given size.
	BindVertexBuffer(buf uint32, loc uint32, size int32)
	Uniform4f(loc int32, c Color)
	// DrawLines draws count vertices as independent line segments.
	DrawLines(count int32)
}

// Bindings are the shader locations Draw writes to.
type Bindings struct {
	Position uint32 // Vertex position attribute
	Color    int32  // Colour uniform, negative when absent
}

// Model owns the current mesh and the GPU buffers it is uploaded to.
// Buffers are created on the first Upload and reused afterwards.
type Model struct {
	mesh *Mesh

	ringBuf     uint32
	meridianBuf uint32
	hasBuffers  bool
	uploaded    bool
	released    bool
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{}
}

// Build replaces the mesh with a full rebuild from p.
// On error the previous mesh stays current.
func (m *Model) Build(p surface.Params) error {
	mesh, err := Build(p)
	if err != nil {
		return err
	}
	m.mesh = mesh
	m.uploaded = false
	return nil
}

// Mesh returns the current mesh, or nil before the first Build.
func (m *Model) Mesh() *Mesh {
	return m.mesh
}

// Uploaded reports whether the GPU buffers hold the current mesh.
func (m *Model) Uploaded() bool {
	return m.uploaded
}

// Upload replaces the GPU buffer contents with the current mesh.
func (m *Model) Upload(ctx Context) error {
	if m.released {
		return ErrReleased
	}
	if m.mesh == nil {
		return ErrNotBuilt
	}

	if !m.hasBuffers {
		ring, err := ctx.CreateBuffer()
		if err != nil {
			return &ResourceError{Op: "create ring buffer", Err: err}
		}
		meridian, err := ctx.CreateBuffer()
		if err != nil {
			ctx.DeleteBuffer(ring)
			return &ResourceError{Op: "create meridian buffer", Err: err}
		}
		m.ringBuf = ring
		m.meridianBuf = meridian
		m.hasBuffers = true
	}

	ctx.BufferData(m.ringBuf, m.mesh.Rings)
	ctx.BufferData(m.meridianBuf, m.mesh.Meridians)
	m.uploaded = true
	return nil
}

// Draw issues one line draw per family. The caller sets the transform
// uniform on program beforehand.
func (m *Model) Draw(ctx Context, program uint32, b Bindings) error {
	if m.released {
		return ErrReleased
	}
	if !m.uploaded {
		return ErrNotUploaded
	}

	ctx.UseProgram(program)
	ctx.EnableVertexAttrib(b.Position)

	m.drawFamily(ctx, b, m.ringBuf, RingColor, m.mesh.RingCount())
	m.drawFamily(ctx, b, m.meridianBuf, MeridianColor, m.mesh.MeridianCount())
	return nil
}

func (m *Model) drawFamily(ctx Context, b Bindings, buf uint32, c Color, count int) {
	ctx.BindVertexBuffer(buf, b.Position, floatsPerVertex)
	if b.Color >= 0 {
		ctx.Uniform4f(b.Color, c)
	}
	ctx.DrawLines(int32(count))
}

// Release deletes the GPU buffers. It is safe to call more than once.
func (m *Model) Release(ctx Context) {
	if m.hasBuffers {
		ctx.DeleteBuffer(m.ringBuf)
		ctx.DeleteBuffer(m.meridianBuf)
		m.ringBuf, m.meridianBuf = 0, 0
		m.hasBuffers = false
	}
	m.uploaded = false
	m.released = true
}
