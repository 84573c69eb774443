package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wavesurface/internal/engine/shader"
	"github.com/Faultbox/wavesurface/internal/engine/wireframe"
	"github.com/Faultbox/wavesurface/pkg/math"
)

// Shader variable names.
const (
	AttribVertex = "vertex"
	UniformMVP   = "ModelViewProjectionMatrix"
	UniformColor = "color"
)

const lineVertexShader = `#version 410 core

in vec3 vertex;
uniform mat4 ModelViewProjectionMatrix;

void main() {
	gl_Position = ModelViewProjectionMatrix * vec4(vertex, 1.0);
}
`

const lineFragmentShader = `#version 410 core

uniform vec4 color;
out vec4 fragColor;

void main() {
	fragColor = color;
}
`

// LineProgram is the flat-colour line shader.
type LineProgram struct {
	id       uint32
	bindings wireframe.Bindings
	mvpLoc   int32
}

// NewLineProgram compiles and links the line shader.
func NewLineProgram() (*LineProgram, error) {
	id, err := shader.CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, &wireframe.ResourceError{Op: "compile line shader", Err: err}
	}

	pos, err := shader.GetAttrib(id, AttribVertex)
	if err != nil {
		gl.DeleteProgram(id)
		return nil, &wireframe.ResourceError{Op: "line shader", Err: err}
	}

	return &LineProgram{
		id: id,
		bindings: wireframe.Bindings{
			Position: pos,
			Color:    shader.GetUniform(id, UniformColor),
		},
		mvpLoc: shader.GetUniform(id, UniformMVP),
	}, nil
}

// ID returns the GL program name.
func (p *LineProgram) ID() uint32 {
	return p.id
}

// Bindings returns the locations the model draws with.
func (p *LineProgram) Bindings() wireframe.Bindings {
	return p.bindings
}

// SetMVP uploads the model-view-projection matrix.
func (p *LineProgram) SetMVP(m math.Mat4) {
	if p.mvpLoc < 0 {
		return
	}
	gl.ProgramUniformMatrix4fv(p.id, p.mvpLoc, 1, false, m.Ptr())
}

// Destroy deletes the program.
func (p *LineProgram) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
