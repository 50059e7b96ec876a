package ui

import (
	"image"
	"time"

	"LocalPaint/internal/loop"
	"LocalPaint/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// display renders frames off screen and shows them in the window at a fixed
// rate.
type display struct {
	*surface.Raster
	show   func(image.Image)
	ticker *time.Ticker
}

var _ loop.Display = (*display)(nil)

func newDisplay(frame *canvas.Image, width, height, fps int) *display {
	return &display{
		Raster: surface.NewRaster(width, height),
		show: func(img image.Image) {
			fyne.Do(func() {
				frame.Image = img
				frame.Refresh()
			})
		},
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
	}
}

// Present hands the current frame to the window and waits for the next tick.
func (d *display) Present() error {
	d.show(d.Image())
	<-d.ticker.C
	return nil
}

func (d *display) Close() error {
	d.ticker.Stop()
	return d.Raster.Close()
}
