package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/config"
	"github.com/Faultbox/wavesurface/internal/engine/input"
	"github.com/Faultbox/wavesurface/internal/engine/renderer"
	"github.com/Faultbox/wavesurface/internal/engine/window"
)

const liteTitle = "Wave Surface"

// action is a keyboard command of the Lite viewer.
type action int

const (
	actNone action = iota
	actQuit
	actNextParam
	actPrevParam
	actIncrease
	actDecrease
	actResetView
	actResetParams
	actSave
)

// keyAction maps a key press to a command.
func keyAction(key sdl.Keycode, shift bool) action {
	switch key {
	case sdl.K_ESCAPE:
		return actQuit
	case sdl.K_TAB:
		if shift {
			return actPrevParam
		}
		return actNextParam
	case sdl.K_DOWN:
		return actNextParam
	case sdl.K_UP:
		return actPrevParam
	case sdl.K_RIGHT:
		return actIncrease
	case sdl.K_LEFT:
		return actDecrease
	case sdl.K_r:
		if shift {
			return actResetParams
		}
		return actResetView
	case sdl.K_F12:
		return actSave
	}
	return actNone
}

// Lite is the keyboard-driven viewer on a bare SDL window.
type Lite struct {
	*session

	cfg     *config.Config
	window  *window.Window
	input   *input.Input
	target  *renderer.Scene
	running bool
	title   string
}

// NewLite opens the window and allocates GL resources.
func NewLite(cfg *config.Config) (*Lite, error) {
	win, err := window.New(window.Config{
		Title:      liteTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := renderer.InitGL(); err != nil {
		win.Close()
		return nil, err
	}

	w, h := win.DrawableSize()
	sc, err := renderer.NewScene(w, h)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	return &Lite{
		session: newSession(cfg, sc),
		cfg:     cfg,
		window:  win,
		input:   input.New(),
		target:  sc,
	}, nil
}

// Run processes input and renders until the window closes or Esc is pressed.
func (l *Lite) Run() error {
	l.running = true
	l.log.Info("starting render loop", zap.String("keys", "Tab/Shift-Tab select, Left/Right adjust, R reset view, F12 save, Esc quit"))

	frameCount := 0
	fpsTimer := time.Now()

	for l.running {
		if l.input.Update() {
			l.running = false
		}
		for _, ev := range l.input.Events() {
			l.handle(ev)
		}

		if _, err := l.frame(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		w, h := l.window.DrawableSize()
		l.target.Present(w, h)
		l.window.SwapBuffers()
		l.updateTitle()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			l.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (l *Lite) handle(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		l.running = false
	case input.EventWindowResize:
		w, h := l.window.DrawableSize()
		l.target.Resize(w, h)
	case input.EventMouseDrag:
		l.ball.HandleDrag(float32(ev.DX), float32(ev.DY))
	case input.EventKeyDown:
		l.apply(keyAction(ev.Key, ev.Shift))
	}
}

// apply runs a command against the session.
func (l *Lite) apply(a action) {
	switch a {
	case actQuit:
		l.running = false
	case actNextParam:
		l.panel.Next()
	case actPrevParam:
		l.panel.Prev()
	case actIncrease:
		l.panel.Nudge(l.panel.Selected().Key, 1)
	case actDecrease:
		l.panel.Nudge(l.panel.Selected().Key, -1)
	case actResetView:
		l.ball.Reset()
	case actResetParams:
		l.panel.Reset(l.cfg.Surface)
	case actSave:
		if _, err := l.quickSave(); err != nil {
			l.log.Error("save failed", zap.Error(err))
		}
	}
}

func (l *Lite) updateTitle() {
	title := windowTitle(liteTitle, l.panel.Summary(), l.buildErr)
	if title != l.title {
		l.window.SetTitle(title)
		l.title = title
	}
}

// Close releases GL resources and the window.
func (l *Lite) Close() {
	l.log.Info("closing viewer")
	if l.target != nil {
		l.target.Close()
	}
	if l.window != nil {
		l.window.Close()
	}
}
