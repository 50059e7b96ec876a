// Package loop drives the paint program one frame at a time: it drains input
// events, samples the mouse, updates the surface and presents the result.
package loop

import (
	"fmt"
	"log"

	"LocalPaint/internal/state"
	"LocalPaint/internal/surface"
)

// EventKind tells input events apart.
type EventKind int

const (
	Quit EventKind = iota
	KeyDown
)

// Event is a discrete input event. Key is only set for KeyDown.
type Event struct {
	Kind EventKind
	Key  string
}

// MouseState is an instantaneous sample of the mouse.
type MouseState struct {
	Left, Middle, Right bool
	Pos                 state.Point
}

// Input is the event and mouse source of the window.
type Input interface {
	// PollEvents returns the events queued since the last call, oldest
	// first. It never blocks.
	PollEvents() []Event
	MouseState() MouseState
}

// Display is a render target that can show the finished frame.
type Display interface {
	surface.Target
	Present() error
}

// State is carried from one frame to the next.
type State struct {
	Last state.Point // Mouse position sampled in the previous frame
}

// Loop applies input to a surface.
type Loop struct {
	surface  *surface.Surface
	clearKey string
}

// New returns a loop that clears the surface when clearKey is pressed.
func New(s *surface.Surface, clearKey string) *Loop {
	return &Loop{surface: s, clearKey: clearKey}
}

// Update applies one frame of input and returns the state for the next
// frame. The second result is true once a Quit event has been seen; events
// after it and the mouse sample are then ignored.
func (l *Loop) Update(st State, events []Event, m MouseState) (State, bool) {
	for _, ev := range events {
		switch ev.Kind {
		case Quit:
			return st, true
		case KeyDown:
			if ev.Key == l.clearKey {
				l.surface.ClearStrokes()
			}
		}
	}

	if m.Left {
		if l.surface.InPaletteStrip(m.Pos) {
			l.surface.SelectAt(m.Pos)
		}
		// The segment starts wherever the mouse was last frame, pressed or not.
		l.surface.AddStroke(st.Last, m.Pos)
	}
	return State{Last: m.Pos}, false
}

// Frame renders the surface and presents it.
func (l *Loop) Frame(out Display) error {
	if err := l.surface.Render(out); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := out.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Run loops until a Quit event arrives. Any render or present error ends the
// loop and is returned.
func (l *Loop) Run(in Input, out Display) error {
	log.Printf("[LOOP] Starting session %s", l.surface.Session())
	var st State
	frames := 0
	for {
		next, quit := l.Update(st, in.PollEvents(), in.MouseState())
		if quit {
			log.Printf("[LOOP] Quit after %d frames", frames)
			return nil
		}
		st = next
		if err := l.Frame(out); err != nil {
			return err
		}
		frames++
	}
}
