package renderer

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wavesurface/internal/engine/wireframe"
)

var errNoBuffer = errors.New("glGenBuffers returned no name")

// GLContext implements wireframe.Context on the current GL context.
// Core profile needs a bound vertex array for attribute pointers, so the
// context owns one for its lifetime.
type GLContext struct {
	vao uint32
}

var _ wireframe.Context = (*GLContext)(nil)

// NewGLContext creates the context's vertex array object.
func NewGLContext() *GLContext {
	c := &GLContext{}
	gl.GenVertexArrays(1, &c.vao)
	return c
}

// CreateBuffer generates a vertex buffer name.
func (c *GLContext) CreateBuffer() (uint32, error) {
	var buf uint32
	gl.GenBuffers(1, &buf)
	if buf == 0 {
		if code := gl.GetError(); code != gl.NO_ERROR {
			return 0, &glError{op: "glGenBuffers", code: code}
		}
		return 0, errNoBuffer
	}
	return buf, nil
}

// BufferData replaces the buffer store with data.
func (c *GLContext) BufferData(buf uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// DeleteBuffer frees a buffer name.
func (c *GLContext) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

// UseProgram makes program current and binds the context's vertex array.
func (c *GLContext) UseProgram(program uint32) {
	gl.UseProgram(program)
	gl.BindVertexArray(c.vao)
}

// EnableVertexAttrib enables attribute loc on the vertex array.
func (c *GLContext) EnableVertexAttrib(loc uint32) {
	gl.EnableVertexAttribArray(loc)
}

// BindVertexBuffer points attribute loc at buf.
func (c *GLContext) BindVertexBuffer(buf uint32, loc uint32, size int32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, 0, 0)
}

// Uniform4f sets a vec4 uniform on the current program.
func (c *GLContext) Uniform4f(loc int32, col wireframe.Color) {
	gl.Uniform4f(loc, col[0], col[1], col[2], col[3])
}

// DrawLines draws count vertices as GL_LINES.
func (c *GLContext) DrawLines(count int32) {
	if count == 0 {
		return
	}
	gl.DrawArrays(gl.LINES, 0, count)
}

// Destroy deletes the vertex array.
func (c *GLContext) Destroy() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}

type glError struct {
	op   string
	code uint32
}

func (e *glError) Error() string {
	return e.op + ": " + glErrorName(e.code)
}

func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "unknown GL error"
	}
}
