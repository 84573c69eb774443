package viewer

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/config"
	"github.com/Faultbox/wavesurface/internal/engine/renderer"
	"github.com/Faultbox/wavesurface/internal/engine/ui"
)

const (
	appTitle        = "Wave Surface"
	panelWidth      = float32(340)
	statusBarHeight = float32(28)
)

// saveResult is what the save-as dialog goroutine hands back.
// An empty path means the dialog was cancelled.
type saveResult struct {
	path string
	err  error
}

// appBackend is the part of ui.Backend the App drives.
type appBackend interface {
	Run(renderFunc func())
	SetWindowTitle(title string)
	Close()
	Destroy()
}

// Constructors replaced in tests.
var (
	newBackend = func(title string, width, height int) (appBackend, error) {
		be, err := ui.NewBackend(title, width, height)
		if err != nil {
			return nil, err
		}
		return be, nil
	}
	newScene = renderer.NewScene
)

// App is the Dear ImGui viewer: sliders on the left, the rendered
// viewport on the right.
type App struct {
	*session

	cfg      *config.Config
	backend  appBackend
	target   *renderer.Scene
	viewport ui.Viewport
	title    string

	// Save-as dialog runs off the main thread; results are applied in render()
	pendingSave chan saveResult
	dialogOpen  bool
	status      string
}

// NewApp creates the window, GL context and scene.
func NewApp(cfg *config.Config) (*App, error) {
	be, err := newBackend(appTitle, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}

	sc, err := newScene(int32(cfg.Graphics.ViewportWidth), int32(cfg.Graphics.ViewportHeight))
	if err != nil {
		be.Destroy()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	return &App{
		session:     newSession(cfg, sc),
		cfg:         cfg,
		backend:     be,
		target:      sc,
		pendingSave: make(chan saveResult, 1),
		title:       appTitle,
	}, nil
}

// Run starts the main loop. It returns when the window closes.
func (a *App) Run() {
	a.log.Info("starting render loop")
	a.backend.Run(a.render)
}

// Close releases GL resources.
func (a *App) Close() {
	a.log.Info("closing viewer")
	if a.target != nil {
		a.target.Close()
		a.target = nil
	}
}

// render is called each frame by the backend.
func (a *App) render() {
	a.drainSave()

	if ui.IsKeyPressed(imgui.KeyEscape) {
		a.backend.Close()
	}
	saveNow := ui.IsKeyPressed(imgui.KeyF12)

	texture, err := a.frame()
	if err != nil {
		a.log.Error("render failed", zap.Error(err))
		a.backend.Close()
		return
	}
	if saveNow {
		a.quickSaveStatus()
	}
	if title := windowTitle(appTitle, "", a.buildErr); title != a.title {
		a.backend.SetWindowTitle(title)
		a.title = title
	}

	pos, size := ui.WorkArea()
	contentHeight := size.Y - statusBarHeight
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, contentHeight))
	if imgui.BeginV("Parameters", nil, flags) {
		a.renderPanel()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+panelWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-panelWidth, contentHeight))
	if imgui.BeginV("Viewport", nil, flags) {
		if dx, dy := a.viewport.Draw(texture, a.target.Aspect()); dx != 0 || dy != 0 {
			a.ball.HandleDrag(dx, dy)
		}
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X, pos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X, statusBarHeight))
	if imgui.BeginV("Status", nil, flags|imgui.WindowFlagsNoTitleBar) {
		imgui.Text(a.counts())
		if a.status != "" {
			imgui.SameLine()
			imgui.TextDisabled("| " + a.status)
		}
	}
	imgui.End()
}

func (a *App) renderPanel() {
	ui.DrawPanel(a.panel)

	if a.buildErr != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), "Rejected: "+a.buildErr.Error())
	}

	imgui.Separator()
	if imgui.Button("Reset Parameters") {
		a.panel.Reset(a.cfg.Surface)
	}
	imgui.SameLine()
	if imgui.Button("Reset View") {
		a.ball.Reset()
	}

	imgui.Separator()
	if imgui.Button("Save PNG...") && !a.dialogOpen {
		a.openSaveDialog()
	}
	imgui.SameLine()
	imgui.TextDisabled("(F12 quick save)")
	imgui.TextDisabled("Drag the viewport to rotate")
}

// openSaveDialog asks for a file name on a separate goroutine.
func (a *App) openSaveDialog() {
	a.dialogOpen = true
	start := a.capture.DefaultPath()
	go func() {
		path, err := dialog.File().
			Filter("PNG image", "png").
			Title("Save Wireframe").
			SetStartFile(start).
			Save()
		if err == dialog.ErrCancelled {
			err = nil
		}
		a.pendingSave <- saveResult{path: path, err: err}
	}()
}

// drainSave applies a finished dialog on the main thread, where the
// framebuffer can be read.
func (a *App) drainSave() {
	select {
	case res := <-a.pendingSave:
		a.dialogOpen = false
		switch {
		case res.err != nil:
			a.log.Error("file dialog error", zap.Error(res.err))
			a.status = "dialog failed"
		case res.path != "":
			if err := a.saveTo(res.path); err != nil {
				a.log.Error("save failed", zap.Error(err))
				a.status = "save failed"
				return
			}
			a.status = "saved " + res.path
		}
	default:
	}
}

func (a *App) quickSaveStatus() {
	path, err := a.quickSave()
	if err != nil {
		a.log.Error("save failed", zap.Error(err))
		a.status = "save failed"
		return
	}
	a.status = "saved " + path
}
