// Package input turns raw window events into per-frame input snapshots.
package input

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrNonFiniteInput is returned for a frame whose motion or elapsed time is
// NaN or infinite.
var ErrNonFiniteInput = errors.New("non-finite frame input")

// Button is a pointer button.
type Button int

const (
	ButtonPrimary   Button = iota // left
	ButtonSecondary               // middle
	ButtonTertiary                // right
	buttonCount
)

// Key is a keyboard key the viewer reacts to.
type Key int

const (
	KeyNone     Key = iota
	KeyModifier     // space: turns a primary drag into a pan
	KeyTab
	KeyEscape
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
)

// Digit returns 1..9 for digit keys and 0 otherwise.
func (k Key) Digit() int {
	if k < KeyDigit1 || k > KeyDigit9 {
		return 0
	}
	return int(k-KeyDigit1) + 1
}

// Event types
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event is a window-system independent input event.
type Event struct {
	Type   EventType
	Key    Key
	Button Button
	DX, DY float32 // relative motion for EventMouseMove
	Width  int
	Height int
}

// Frame is the input state for one rendered frame.
type Frame struct {
	Primary   bool
	Secondary bool
	Tertiary  bool
	Modifier  bool

	// Pointer motion accumulated since the previous frame.
	DX, DY float32
}

// Zoom reports whether the zoom/scale interaction is active.
func (f Frame) Zoom() bool {
	return f.Tertiary
}

// Rotate reports whether the orbit/rotate interaction is active.
func (f Frame) Rotate() bool {
	return f.Primary && !f.Modifier
}

// Pan reports whether the pan/translate interaction is active.
func (f Frame) Pan() bool {
	return f.Secondary || (f.Primary && f.Modifier)
}

// Check reports ErrNonFiniteInput when the frame's motion or dt is NaN or
// infinite.
func (f Frame) Check(dt float32) error {
	for _, v := range [3]float32{f.DX, f.DY, dt} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("%w: dx=%v dy=%v dt=%v", ErrNonFiniteInput, f.DX, f.DY, dt)
		}
	}
	return nil
}

// Idle reports whether no interaction is active.
func (f Frame) Idle() bool {
	return !f.Zoom() && !f.Rotate() && !f.Pan()
}

// Tracker accumulates events between frames.
type Tracker struct {
	buttons  [buttonCount]bool
	modifier bool
	dx, dy   float32
	events   []Event
}

// NewTracker creates a new input tracker.
func NewTracker() *Tracker {
	return &Tracker{
		events: make([]Event, 0, 16),
	}
}

// Begin starts a new frame, dropping last frame's events and motion.
// Held buttons and keys carry over.
func (t *Tracker) Begin() {
	t.events = t.events[:0]
	t.dx, t.dy = 0, 0
}

// Handle records one event.
func (t *Tracker) Handle(e Event) {
	t.events = append(t.events, e)

	switch e.Type {
	case EventMouseMove:
		t.dx += e.DX
		t.dy += e.DY
	case EventMouseDown:
		if e.Button >= 0 && e.Button < buttonCount {
			t.buttons[e.Button] = true
		}
	case EventMouseUp:
		if e.Button >= 0 && e.Button < buttonCount {
			t.buttons[e.Button] = false
		}
	case EventKeyDown:
		if e.Key == KeyModifier {
			t.modifier = true
		}
	case EventKeyUp:
		if e.Key == KeyModifier {
			t.modifier = false
		}
	}
}

// Frame returns the snapshot for the current frame.
func (t *Tracker) Frame() Frame {
	return Frame{
		Primary:   t.buttons[ButtonPrimary],
		Secondary: t.buttons[ButtonSecondary],
		Tertiary:  t.buttons[ButtonTertiary],
		Modifier:  t.modifier,
		DX:        t.dx,
		DY:        t.dy,
	}
}

// Events returns the events recorded since Begin.
func (t *Tracker) Events() []Event {
	return t.events
}
