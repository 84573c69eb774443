package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wavesurface/internal/engine/framebuffer"
	"github.com/Faultbox/wavesurface/internal/engine/wireframe"
	"github.com/Faultbox/wavesurface/internal/logger"
	"github.com/Faultbox/wavesurface/pkg/math"
	"github.com/Faultbox/wavesurface/pkg/surface"
)

// Scene renders the wireframe model into an offscreen framebuffer.
type Scene struct {
	ctx     *GLContext
	program *LineProgram
	model   *wireframe.Model
	fb      *framebuffer.Framebuffer
	log     *zap.Logger
}

// NewScene allocates the GL resources for a width x height viewport.
func NewScene(width, height int32) (*Scene, error) {
	program, err := NewLineProgram()
	if err != nil {
		return nil, err
	}

	fb, err := framebuffer.New(width, height)
	if err != nil {
		program.Destroy()
		return nil, &wireframe.ResourceError{Op: "create viewport", Err: err}
	}

	return &Scene{
		ctx:     NewGLContext(),
		program: program,
		model:   wireframe.NewModel(),
		fb:      fb,
		log:     logger.Named("scene"),
	}, nil
}

// Rebuild tessellates p and uploads the result. On a domain error the
// previous mesh keeps being drawn.
func (s *Scene) Rebuild(p surface.Params) error {
	if err := s.model.Build(p); err != nil {
		return err
	}
	if err := s.model.Upload(s.ctx); err != nil {
		return fmt.Errorf("upload mesh: %w", err)
	}

	mesh := s.model.Mesh()
	nu, nr := p.Effective()
	s.log.Debug("mesh rebuilt",
		zap.Int("nu", nu),
		zap.Int("nr", nr),
		zap.Int("ring_vertices", mesh.RingCount()),
		zap.Int("meridian_vertices", mesh.MeridianCount()),
	)
	return nil
}

// Mesh returns the mesh currently on the GPU.
func (s *Scene) Mesh() *wireframe.Mesh {
	return s.model.Mesh()
}

// Resize changes the viewport size.
func (s *Scene) Resize(width, height int32) {
	s.fb.Resize(width, height)
}

// Size returns the viewport size.
func (s *Scene) Size() (width, height int32) {
	return s.fb.Size()
}

// Aspect returns the viewport aspect ratio.
func (s *Scene) Aspect() float32 {
	return float32(s.fb.Aspect())
}

// Render draws the model with mvp and returns the colour texture.
func (s *Scene) Render(mvp math.Mat4) (uint32, error) {
	restore := s.fb.Begin()
	defer restore()

	s.fb.Clear(0, 0, 0, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	s.program.SetMVP(mvp)
	if err := s.model.Draw(s.ctx, s.program.ID(), s.program.Bindings()); err != nil {
		return 0, err
	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	return s.fb.ColorTexture(), nil
}

// Present copies the last frame onto the window's default framebuffer,
// stretched to width x height.
func (s *Scene) Present(width, height int32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	s.fb.BlitToScreen(0, 0, width, height)
}

// ReadPixels reads back the last rendered frame.
func (s *Scene) ReadPixels() framebuffer.Pixels {
	return s.fb.ReadPixels()
}

// Close releases every GL resource the scene owns.
func (s *Scene) Close() {
	s.log.Debug("closing scene")
	s.model.Release(s.ctx)
	s.ctx.Destroy()
	s.program.Destroy()
	s.fb.Destroy()
}
