package ui

import (
	"math"
	"sync"

	"LocalPaint/internal/loop"
	"LocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// inputQueue collects fyne callbacks until the paint loop polls them.
type inputQueue struct {
	mu     sync.Mutex
	events []loop.Event
	mouse  loop.MouseState
}

var _ loop.Input = (*inputQueue)(nil)

func newInputQueue() *inputQueue {
	return &inputQueue{}
}

func (q *inputQueue) push(ev loop.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

func (q *inputQueue) quit() {
	q.push(loop.Event{Kind: loop.Quit})
}

func (q *inputQueue) keyDown(name fyne.KeyName) {
	q.push(loop.Event{Kind: loop.KeyDown, Key: string(name)})
}

// PollEvents hands over everything queued so far.
func (q *inputQueue) PollEvents() []loop.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}

func (q *inputQueue) MouseState() loop.MouseState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.mouse
}

func (q *inputQueue) moveTo(pos fyne.Position) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.mouse.Pos = toPoint(pos)
}

func (q *inputQueue) setButton(button desktop.MouseButton, pos fyne.Position, down bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.mouse.Pos = toPoint(pos)
	switch button {
	case desktop.MouseButtonPrimary:
		q.mouse.Left = down
	case desktop.MouseButtonSecondary:
		q.mouse.Right = down
	case desktop.MouseButtonTertiary:
		q.mouse.Middle = down
	}
}

// releaseLeft is used when a drag ends without a matching MouseUp.
func (q *inputQueue) releaseLeft() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.mouse.Left = false
}

func toPoint(pos fyne.Position) state.Point {
	return state.Pt(int(math.Floor(float64(pos.X))), int(math.Floor(float64(pos.Y))))
}
