// Package renderer draws the wireframe with OpenGL 4.1 core.
//
// Every function here needs a current GL context on the calling thread.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// InitGL loads the GL function pointers for the current context.
// IMPORTANT: Must be called AFTER the window has created its context.
func InitGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	return nil
}
