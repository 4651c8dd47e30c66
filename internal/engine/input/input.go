// Package input turns SDL2 events into movement flags and pointer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a discrete input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventPointerDown
	EventDrag
	EventWheel
)

// Event represents a processed discrete input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int

	Pointer PointerEvent
	DeltaX  int // Drag delta (pixels)
	DeltaY  int
	Wheel   float32
}

// Flags is the live snapshot of held movement keys.
type Flags struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// PointerEvent is a left-button press in window pixels.
type PointerEvent struct {
	X, Y        int
	Modifier    bool // Ctrl held
	DoubleClick bool
}

// Input handles all input processing.
type Input struct {
	events []Event
	flags  Flags
	ctrl   bool

	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			return true
		}
	}
	return false
}

// handle folds one SDL event into the input state.
func (i *Input) handle(event sdl.Event) (quit bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		down := e.Type == sdl.KEYDOWN
		i.setKey(e.Keysym.Scancode, down)
		if down && e.Repeat == 0 {
			i.events = append(i.events, Event{
				Type: EventKeyDown,
				Key:  e.Keysym.Scancode,
			})
		}

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.dragging = true
			i.events = append(i.events, Event{
				Type: EventPointerDown,
				Pointer: PointerEvent{
					X:           int(e.X),
					Y:           int(e.Y),
					Modifier:    i.ctrl,
					DoubleClick: e.Clicks >= 2,
				},
			})
		} else if e.Type == sdl.MOUSEBUTTONUP {
			i.dragging = false
		}

	case *sdl.MouseMotionEvent:
		if i.dragging && !i.ctrl && (e.XRel != 0 || e.YRel != 0) {
			i.events = append(i.events, Event{
				Type:   EventDrag,
				DeltaX: int(e.XRel),
				DeltaY: int(e.YRel),
			})
		}

	case *sdl.MouseWheelEvent:
		if e.Y != 0 {
			i.events = append(i.events, Event{Type: EventWheel, Wheel: float32(e.Y)})
		}
	}

	return false
}

func (i *Input) setKey(code sdl.Scancode, down bool) {
	switch code {
	case sdl.SCANCODE_W, sdl.SCANCODE_UP:
		i.flags.Forward = down
	case sdl.SCANCODE_S, sdl.SCANCODE_DOWN:
		i.flags.Backward = down
	case sdl.SCANCODE_A, sdl.SCANCODE_LEFT:
		i.flags.Left = down
	case sdl.SCANCODE_D, sdl.SCANCODE_RIGHT:
		i.flags.Right = down
	case sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL:
		i.ctrl = down
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Flags returns the movement keys currently held.
func (i *Input) Flags() Flags {
	return i.flags
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
