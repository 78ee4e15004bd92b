package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/volview/internal/engine/input"
)

var buttonMap = map[uint8]input.Button{
	sdl.BUTTON_LEFT:   input.ButtonPrimary,
	sdl.BUTTON_MIDDLE: input.ButtonSecondary,
	sdl.BUTTON_RIGHT:  input.ButtonTertiary,
}

var keyMap = map[sdl.Scancode]input.Key{
	sdl.Scancode(sdl.SCANCODE_SPACE):  input.KeyModifier,
	sdl.Scancode(sdl.SCANCODE_TAB):    input.KeyTab,
	sdl.Scancode(sdl.SCANCODE_ESCAPE): input.KeyEscape,
	sdl.Scancode(sdl.SCANCODE_1):      input.KeyDigit1,
	sdl.Scancode(sdl.SCANCODE_2):      input.KeyDigit2,
	sdl.Scancode(sdl.SCANCODE_3):      input.KeyDigit3,
	sdl.Scancode(sdl.SCANCODE_4):      input.KeyDigit4,
	sdl.Scancode(sdl.SCANCODE_5):      input.KeyDigit5,
	sdl.Scancode(sdl.SCANCODE_6):      input.KeyDigit6,
	sdl.Scancode(sdl.SCANCODE_7):      input.KeyDigit7,
	sdl.Scancode(sdl.SCANCODE_8):      input.KeyDigit8,
	sdl.Scancode(sdl.SCANCODE_9):      input.KeyDigit9,
}

// Poll drains pending SDL events into the tracker for a new frame.
// Returns true if a quit was requested.
func (w *Window) Poll(t *input.Tracker) bool {
	t.Begin()
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
			t.Handle(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				t.Handle(input.Event{
					Type:   input.EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			key, ok := keyMap[e.Keysym.Scancode]
			if !ok {
				continue
			}
			switch {
			case e.Type == sdl.KEYDOWN && e.Repeat == 0:
				t.Handle(input.Event{Type: input.EventKeyDown, Key: key})
			case e.Type == sdl.KEYUP:
				t.Handle(input.Event{Type: input.EventKeyUp, Key: key})
			}

		case *sdl.MouseMotionEvent:
			t.Handle(input.Event{
				Type: input.EventMouseMove,
				DX:   float32(e.XRel),
				DY:   float32(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			button, ok := buttonMap[e.Button]
			if !ok {
				continue
			}
			typ := input.EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				typ = input.EventMouseDown
			}
			t.Handle(input.Event{Type: typ, Button: button})
		}
	}

	return quit
}
