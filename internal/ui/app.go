package ui

import (
	"log"

	"LocalPaint/internal/loop"
	"LocalPaint/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

// Config describes the paint window.
type Config struct {
	Title     string
	Width     int
	Height    int
	ClearKey  fyne.KeyName
	FrameRate int
}

// newPaintWindow creates the paint window on a and prepares it.
func newPaintWindow(a fyne.App, cfg Config) (fyne.Window, *inputQueue, *drawingArea) {
	w := a.NewWindow(cfg.Title)
	input, area := setupWindow(w, cfg)
	return w, input, area
}

// setupWindow gives w its fixed layout and routes its key and close
// requests into a new input queue.
func setupWindow(w fyne.Window, cfg Config) (*inputQueue, *drawingArea) {
	input := newInputQueue()
	area := newDrawingArea(input, cfg.Width, cfg.Height)

	w.SetContent(area)
	w.SetPadded(false)
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	w.SetFixedSize(true)
	w.CenterOnScreen()

	// Closing the window is a Quit event; the loop decides when to stop.
	w.SetCloseIntercept(input.quit)
	bindKeys(w.Canvas(), input)
	return input, area
}

func bindKeys(c fyne.Canvas, input *inputQueue) {
	if dc, ok := c.(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(e *fyne.KeyEvent) { input.keyDown(e.Name) })
		return
	}
	c.SetOnTypedKey(func(e *fyne.KeyEvent) { input.keyDown(e.Name) })
}

// RunApp opens the paint window and runs the paint loop for s until the
// window is closed. A render failure ends the process.
func RunApp(cfg Config, s *surface.Surface) {
	myApp := app.New()
	myWindow, input, area := newPaintWindow(myApp, cfg)

	myApp.Lifecycle().SetOnStarted(func() {
		out := newDisplay(area.frame, cfg.Width, cfg.Height, cfg.FrameRate)
		paint := loop.New(s, string(cfg.ClearKey))
		go func() {
			if err := paint.Run(input, out); err != nil {
				log.Fatalf("Paint loop failed: %v", err)
			}
			if err := out.Close(); err != nil {
				log.Printf("Error releasing frame buffer: %v", err)
			}
			fyne.Do(myApp.Quit)
		}()
	})

	myWindow.ShowAndRun()
}
