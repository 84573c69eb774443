package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/wavesurface/internal/controls"
)

// DrawPanel draws one slider per parameter. Values are written back through
// the panel so they are snapped and clamped; the render loop picks edits up
// with Panel.TakeChanged.
func DrawPanel(panel *controls.Panel) {
	for _, s := range panel.Sliders() {
		drawSlider(panel, s)
	}
}

func drawSlider(panel *controls.Panel, s controls.Slider) {
	label := s.Label + "##" + string(s.Key)
	if s.Integer {
		v := int32(panel.Value(s.Key))
		if imgui.SliderIntV(label, &v, int32(s.Min), int32(s.Max), "%d", imgui.SliderFlagsAlwaysClamp) {
			panel.Set(s.Key, float64(v))
		}
		return
	}

	v := float32(panel.Value(s.Key))
	if imgui.SliderFloatV(label, &v, float32(s.Min), float32(s.Max), s.Format, imgui.SliderFlagsAlwaysClamp) {
		panel.Set(s.Key, float64(v))
	}
}

// Viewport shows a rendered texture and reports drags over it.
type Viewport struct {
	lastMouse imgui.Vec2
}

// Draw shows texture scaled to fit the available region, keeping aspect.
// It returns the mouse drag delta while the left button drags over the image.
func (v *Viewport) Draw(texture uint32, aspect float32) (dx, dy float32) {
	avail := imgui.ContentRegionAvail()
	w, h := FitAspect(avail.X, avail.Y, aspect)

	if w < avail.X {
		imgui.SetCursorPosX(imgui.CursorPosX() + (avail.X-w)/2)
	}

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(w, h),
		imgui.NewVec2(0, 1), // GL textures are bottom-up
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)

	mouse := imgui.MousePos()
	if imgui.IsItemHovered() && imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		dx, dy = mouse.X-v.lastMouse.X, mouse.Y-v.lastMouse.Y
	}
	v.lastMouse = mouse
	return dx, dy
}

// FitAspect returns the largest size with the given aspect inside w x h.
func FitAspect(w, h, aspect float32) (float32, float32) {
	if w <= 0 || h <= 0 || aspect <= 0 {
		return max(w, 0), max(h, 0)
	}
	if w/h > aspect {
		return h * aspect, h
	}
	return w, w / aspect
}
