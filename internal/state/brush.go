package state

import (
	"image/color"
)

// PaletteSize is the number of selectable brush colors.
const PaletteSize = 8

var (
	Black   = color.NRGBA{A: 255}
	Red     = color.NRGBA{R: 255, A: 255}
	Green   = color.NRGBA{G: 255, A: 255}
	Blue    = color.NRGBA{B: 255, A: 255}
	Magenta = color.NRGBA{R: 255, B: 255, A: 255}
	Yellow  = color.NRGBA{R: 255, G: 255, A: 255}
	Cyan    = color.NRGBA{G: 255, B: 255, A: 255}
	White   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Brush holds the fixed palette and the color applied to new strokes.
type Brush struct {
	active  color.NRGBA
	palette [PaletteSize]color.NRGBA
}

// NewBrush returns a brush with the default palette and black selected.
func NewBrush() *Brush {
	b := &Brush{
		palette: [PaletteSize]color.NRGBA{Black, Red, Green, Blue, Magenta, Yellow, Cyan, White},
	}
	b.active = b.palette[0]
	return b
}

// Select makes palette[index] the active color. Indices outside the palette
// are ignored.
func (b *Brush) Select(index int) {
	if index < 0 || index >= PaletteSize {
		return
	}
	b.active = b.palette[index]
}

// Color returns the active color.
func (b *Brush) Color() color.NRGBA { return b.active }

// Palette returns a copy of the palette in display order.
func (b *Brush) Palette() [PaletteSize]color.NRGBA { return b.palette }
