package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// drawingArea shows the latest frame and reports mouse input.
type drawingArea struct {
	widget.BaseWidget
	input *inputQueue
	frame *canvas.Image
}

var _ fyne.Widget = (*drawingArea)(nil)
var _ fyne.Draggable = (*drawingArea)(nil)
var _ desktop.Mouseable = (*drawingArea)(nil)
var _ desktop.Hoverable = (*drawingArea)(nil)

func newDrawingArea(input *inputQueue, width, height int) *drawingArea {
	frame := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
	frame.FillMode = canvas.ImageFillStretch
	frame.ScaleMode = canvas.ImageScalePixels
	frame.SetMinSize(fyne.NewSize(float32(width), float32(height)))

	d := &drawingArea{input: input, frame: frame}
	d.ExtendBaseWidget(d)
	return d
}

func (d *drawingArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.frame)
}

func (d *drawingArea) MouseDown(e *desktop.MouseEvent) {
	d.input.setButton(e.Button, e.Position, true)
}

func (d *drawingArea) MouseUp(e *desktop.MouseEvent) {
	d.input.setButton(e.Button, e.Position, false)
}

func (d *drawingArea) MouseIn(e *desktop.MouseEvent) {
	d.input.moveTo(e.Position)
}

func (d *drawingArea) MouseMoved(e *desktop.MouseEvent) {
	d.input.moveTo(e.Position)
}

func (d *drawingArea) MouseOut() {}

// Dragged keeps the cursor position current while a button is held; fyne
// sends no MouseMoved during a drag.
func (d *drawingArea) Dragged(e *fyne.DragEvent) {
	d.input.moveTo(e.Position)
}

func (d *drawingArea) DragEnd() {
	d.input.releaseLeft()
}
