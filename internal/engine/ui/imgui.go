// Package ui draws the viewer's Dear ImGui widgets on the cimgui-go SDL
// backend.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/wavesurface/internal/engine/renderer"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window and GL context and loads GL.
func NewBackend(title string, width, height int) (*Backend, error) {
	be, err := backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	be.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	be.CreateWindow(title, width, height)

	if err := renderer.InitGL(); err != nil {
		return nil, err
	}
	return &Backend{backend: be}, nil
}

// Run starts the main render loop. It returns when the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Close asks the render loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// WorkArea returns the main viewport work area.
func WorkArea() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}

// Destroy tears the window down without entering the render loop. The
// backend releases its context and window when Run returns, so an
// already-closed loop is run once.
func (b *Backend) Destroy() {
	b.backend.SetShouldClose(true)
	b.backend.Run(func() {})
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
