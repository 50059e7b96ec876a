package surface

import (
	"image"
	"image/color"

	"LocalPaint/internal/state"

	"github.com/gogpu/gg"
)

// Raster is a Target that draws into an in-memory gg context.
type Raster struct {
	dc *gg.Context
}

var _ Target = (*Raster)(nil)

// NewRaster returns a transparent raster of the given size.
func NewRaster(width, height int) *Raster {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	return &Raster{dc: dc}
}

func (r *Raster) SetDrawColor(c color.Color) {
	r.dc.SetColor(c)
}

func (r *Raster) FillRect(rect image.Rectangle) error {
	r.dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))
	return r.dc.Fill()
}

// DrawLine strokes a one pixel line through the pixel centers of p1 and p2.
func (r *Raster) DrawLine(p1, p2 state.Point) error {
	r.dc.DrawLine(float64(p1.X)+0.5, float64(p1.Y)+0.5, float64(p2.X)+0.5, float64(p2.Y)+0.5)
	return r.dc.Stroke()
}

// Image returns a snapshot of the current frame.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// Close releases the drawing context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
