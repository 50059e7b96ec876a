package surface

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"LocalPaint/internal/state"
)

// StripHeight is the height of the palette strip along the top of the window.
const StripHeight = 50

// Target receives the draw calls of one frame.
type Target interface {
	SetDrawColor(c color.Color)
	FillRect(r image.Rectangle) error
	DrawLine(p1, p2 state.Point) error
}

// Surface owns the brush and the recorded strokes and knows how to paint
// them together with the palette strip.
type Surface struct {
	canvas     image.Rectangle
	background color.NRGBA
	cellWidth  int
	brush      *state.Brush
	strokes    *state.StrokeStore
	clock      *state.Clock
}

// New creates a surface for a window of the given size. The palette strip
// spans the full width, so each swatch is width/PaletteSize wide, and at
// least one pixel.
func New(width, height int) *Surface {
	clock := state.NewClock()
	cell := width / state.PaletteSize
	if cell < 1 {
		cell = 1
	}
	return &Surface{
		canvas:     image.Rect(0, StripHeight, width, height),
		background: state.White,
		cellWidth:  cell,
		brush:      state.NewBrush(),
		strokes:    state.NewStrokeStore(clock),
		clock:      clock,
	}
}

// Brush returns the surface's brush.
func (s *Surface) Brush() *state.Brush { return s.brush }

// Strokes returns the recorded strokes in insertion order.
func (s *Surface) Strokes() []state.Stroke { return s.strokes.Strokes() }

// Session identifies this drawing session in logs.
func (s *Surface) Session() string { return s.clock.Session() }

// Canvas returns the drawing region below the palette strip.
func (s *Surface) Canvas() image.Rectangle { return s.canvas }

// SwatchRect returns the screen rectangle of palette entry i.
func (s *Surface) SwatchRect(i int) image.Rectangle {
	return image.Rect(i*s.cellWidth, 0, (i+1)*s.cellWidth, StripHeight)
}

// InPaletteStrip reports whether p is inside the palette band. The band
// includes its bottom edge.
func (s *Surface) InPaletteStrip(p state.Point) bool {
	return p.Y <= StripHeight
}

// PaletteIndexAt maps an x coordinate to a swatch index. The result is not
// clamped; Brush.Select ignores indices outside the palette.
func (s *Surface) PaletteIndexAt(x int) int {
	return int(math.Floor(float64(x) / float64(s.cellWidth)))
}

// SelectAt selects the swatch under p.
func (s *Surface) SelectAt(p state.Point) {
	before := s.brush.Color()
	s.brush.Select(s.PaletteIndexAt(p.X))
	if after := s.brush.Color(); after != before {
		log.Printf("[SURFACE] Session %s: brush color changed to %s after stroke %d",
			s.clock.Session(), colorName(after), s.clock.Seq())
	}
}

// AddStroke records a segment from p1 to p2 in the active color.
func (s *Surface) AddStroke(p1, p2 state.Point) state.Stroke {
	return s.strokes.Add(p1, p2, s.brush.Color())
}

// ClearStrokes drops every recorded stroke. The brush is left alone.
func (s *Surface) ClearStrokes() {
	n := s.strokes.Clear()
	log.Printf("[SURFACE] Session %s: cleared %d strokes up to stroke %d",
		s.clock.Session(), n, s.clock.Seq())
}

// RenderBackgroundAndPalette fills the canvas with the background color and
// draws the palette swatches left to right.
func (s *Surface) RenderBackgroundAndPalette(t Target) error {
	t.SetDrawColor(s.background)
	if err := t.FillRect(s.canvas); err != nil {
		return fmt.Errorf("fill background: %w", err)
	}
	for i, c := range s.brush.Palette() {
		t.SetDrawColor(c)
		if err := t.FillRect(s.SwatchRect(i)); err != nil {
			return fmt.Errorf("fill swatch %d: %w", i, err)
		}
	}
	return nil
}

// RenderStrokes draws every stroke in insertion order, so later strokes end
// up on top.
func (s *Surface) RenderStrokes(t Target) error {
	return s.strokes.Each(func(st state.Stroke) error {
		t.SetDrawColor(st.Color)
		if err := t.DrawLine(st.Start, st.End); err != nil {
			return fmt.Errorf("draw stroke %d: %w", st.Seq, err)
		}
		return nil
	})
}

// Render paints one full frame.
func (s *Surface) Render(t Target) error {
	if err := s.RenderBackgroundAndPalette(t); err != nil {
		return err
	}
	return s.RenderStrokes(t)
}

func colorName(c color.NRGBA) string {
	switch c {
	case state.Black:
		return "black"
	case state.Red:
		return "red"
	case state.Green:
		return "green"
	case state.Blue:
		return "blue"
	case state.Magenta:
		return "magenta"
	case state.Yellow:
		return "yellow"
	case state.Cyan:
		return "cyan"
	case state.White:
		return "white"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
