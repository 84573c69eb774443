// Package input collects SDL2 events into a per-frame list.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDrag
	EventMouseDown
	EventMouseUp
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Shift  bool
	Width  int
	Height int
	DX, DY int // Relative motion while a button is held
	Button uint8
}

// Input polls SDL for events.
type Input struct {
	events   []Event
	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{events: make([]Event, 0, 16)}
}

// Update polls pending SDL events. It returns true once the window has
// been asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := i.translate(event); ok {
			i.events = append(i.events, ev)
			if ev.Type == EventQuit {
				quit = true
			}
		}
	}
	return quit
}

func (i *Input) translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return Event{
				Type:  EventKeyDown,
				Key:   e.Keysym.Sym,
				Shift: e.Keysym.Mod&uint16(sdl.KMOD_SHIFT) != 0,
			}, true
		}

	case *sdl.MouseMotionEvent:
		if i.dragging && e.State&sdl.ButtonLMask() != 0 {
			return Event{Type: EventMouseDrag, DX: int(e.XRel), DY: int(e.YRel)}, true
		}

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return Event{}, false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.dragging = true
			return Event{Type: EventMouseDown, Button: e.Button}, true
		}
		i.dragging = false
		return Event{Type: EventMouseUp, Button: e.Button}, true
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
