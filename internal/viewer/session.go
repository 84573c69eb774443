// Package viewer wires the parameter panel, camera, renderer and exporter
// into the two interactive front ends: App (Dear ImGui) and Lite (bare SDL).
package viewer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/config"
	"github.com/Faultbox/wavesurface/internal/controls"
	"github.com/Faultbox/wavesurface/internal/engine/camera"
	"github.com/Faultbox/wavesurface/internal/engine/framebuffer"
	"github.com/Faultbox/wavesurface/internal/engine/wireframe"
	"github.com/Faultbox/wavesurface/internal/export"
	"github.com/Faultbox/wavesurface/internal/logger"
	"github.com/Faultbox/wavesurface/pkg/math"
	"github.com/Faultbox/wavesurface/pkg/surface"
)

// scene is what the session needs from renderer.Scene.
type scene interface {
	Rebuild(p surface.Params) error
	Mesh() *wireframe.Mesh
	Render(mvp math.Mat4) (uint32, error)
	ReadPixels() framebuffer.Pixels
	Aspect() float32
	Close()
}

// session is the state shared by both front ends.
type session struct {
	panel   *controls.Panel
	ball    *camera.Trackball
	proj    camera.Projection
	capture *export.Capture
	scene   scene
	log     *zap.Logger

	buildErr error // last rejected parameter set, nil once a build succeeds
}

func newSession(cfg *config.Config, sc scene) *session {
	return &session{
		panel:   controls.NewPanel(cfg.Surface),
		ball:    camera.NewTrackball(),
		proj:    camera.DefaultProjection(),
		capture: export.New(cfg.Export.Dir, cfg.Export.Prefix),
		scene:   sc,
		log:     logger.Named("viewer"),
	}
}

// sync rebuilds the mesh when the panel changed since the last frame.
// A rejected parameter set leaves the previous mesh on screen.
func (s *session) sync() {
	if !s.panel.TakeChanged() {
		return
	}

	err := s.scene.Rebuild(s.panel.Snapshot())
	switch {
	case err == nil:
		s.buildErr = nil
	case errors.Is(err, surface.ErrDomain):
		s.buildErr = err
		s.log.Warn("parameters rejected", zap.Error(err))
	default:
		s.buildErr = err
		s.log.Error("rebuild failed", zap.Error(err))
	}
}

// frame syncs and renders one frame, returning the colour texture.
func (s *session) frame() (uint32, error) {
	s.sync()
	mvp := camera.ModelViewProjection(s.proj, s.ball.ViewMatrix(), s.scene.Aspect())
	return s.scene.Render(mvp)
}

// quickSave writes the last frame to a timestamped file.
func (s *session) quickSave() (string, error) {
	px := s.scene.ReadPixels()
	path, err := s.capture.SavePixels(px.Data, px.Width, px.Height)
	if err != nil {
		return "", fmt.Errorf("save frame: %w", err)
	}
	s.log.Info("frame saved", zap.String("path", path))
	return path, nil
}

// saveTo writes the last frame to path.
func (s *session) saveTo(path string) error {
	px := s.scene.ReadPixels()
	if err := s.capture.SaveTo(path, px.Data, px.Width, px.Height); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}
	s.log.Info("frame saved", zap.String("path", path))
	return nil
}

// counts describes the current mesh for display.
func (s *session) counts() string {
	mesh := s.scene.Mesh()
	if mesh == nil {
		return "no mesh"
	}
	nu, nr := mesh.Params().Effective()
	return fmt.Sprintf("rings: %d vertices, meridians: %d vertices (Nu=%d, Nr=%d)",
		mesh.RingCount(), mesh.MeridianCount(), nu, nr)
}

// windowTitle joins the base title, an optional detail and a marker for a
// rejected parameter set.
func windowTitle(base, detail string, buildErr error) string {
	title := base
	if detail != "" {
		title += " - " + detail
	}
	if buildErr != nil {
		title += " (rejected)"
	}
	return title
}
