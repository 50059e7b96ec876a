package surface

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log"
	"os"
	"testing"

	"LocalPaint/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op    string
	color color.Color
	rect  image.Rectangle
	p1    state.Point
	p2    state.Point
}

// recorder is a Target that remembers every draw call.
type recorder struct {
	current color.Color
	calls   []call
	failOn  string
}

func (r *recorder) SetDrawColor(c color.Color) { r.current = c }

func (r *recorder) FillRect(rect image.Rectangle) error {
	if r.failOn == "fill" {
		return errors.New("fill failed")
	}
	r.calls = append(r.calls, call{op: "fill", color: r.current, rect: rect})
	return nil
}

func (r *recorder) DrawLine(p1, p2 state.Point) error {
	if r.failOn == "line" {
		return errors.New("line failed")
	}
	r.calls = append(r.calls, call{op: "line", color: r.current, p1: p1, p2: p2})
	return nil
}

func TestNewSurfaceLayout(t *testing.T) {
	s := New(400, 400)
	assert.Equal(t, image.Rect(0, 50, 400, 400), s.Canvas())
	assert.Equal(t, image.Rect(0, 0, 50, 50), s.SwatchRect(0))
	assert.Equal(t, image.Rect(350, 0, 400, 50), s.SwatchRect(7))
	assert.Empty(t, s.Strokes())
	assert.Equal(t, state.Black, s.Brush().Color())
	assert.NotEmpty(t, s.Session())
}

func TestRenderBackgroundAndPalette(t *testing.T) {
	s := New(400, 400)
	r := &recorder{}
	require.NoError(t, s.RenderBackgroundAndPalette(r))

	require.Len(t, r.calls, 1+state.PaletteSize)
	assert.Equal(t, call{op: "fill", color: state.White, rect: image.Rect(0, 50, 400, 400)}, r.calls[0])

	palette := s.Brush().Palette()
	for i := 0; i < state.PaletteSize; i++ {
		got := r.calls[i+1]
		assert.Equal(t, "fill", got.op)
		assert.Equal(t, palette[i], got.color)
		assert.Equal(t, image.Rect(i*50, 0, i*50+50, 50), got.rect)
	}
	assert.Empty(t, s.Strokes())
}

func TestRenderStrokesInInsertionOrder(t *testing.T) {
	s := New(400, 400)
	s.AddStroke(state.Pt(0, 60), state.Pt(10, 60))
	s.Brush().Select(1)
	s.AddStroke(state.Pt(10, 60), state.Pt(20, 70))

	r := &recorder{}
	require.NoError(t, s.RenderStrokes(r))
	require.Len(t, r.calls, 2)
	assert.Equal(t, call{op: "line", color: state.Black, p1: state.Pt(0, 60), p2: state.Pt(10, 60)}, r.calls[0])
	assert.Equal(t, call{op: "line", color: state.Red, p1: state.Pt(10, 60), p2: state.Pt(20, 70)}, r.calls[1])
}

func TestRenderDrawsStrokesOverPalette(t *testing.T) {
	s := New(400, 400)
	s.AddStroke(state.Pt(1, 1), state.Pt(2, 2))

	r := &recorder{}
	require.NoError(t, s.Render(r))
	require.Len(t, r.calls, 1+state.PaletteSize+1)
	assert.Equal(t, "line", r.calls[len(r.calls)-1].op)
}

func TestRenderErrorsPropagate(t *testing.T) {
	s := New(400, 400)
	s.AddStroke(state.Pt(1, 1), state.Pt(2, 2))

	assert.Error(t, s.Render(&recorder{failOn: "fill"}))
	assert.Error(t, s.RenderStrokes(&recorder{failOn: "line"}))
}

func TestAddStrokeSnapshotsColor(t *testing.T) {
	s := New(400, 400)
	s.Brush().Select(3)
	st := s.AddStroke(state.Pt(0, 0), state.Pt(10, 10))

	assert.Equal(t, state.Blue, st.Color)
	strokes := s.Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, state.Pt(0, 0), strokes[0].Start)
	assert.Equal(t, state.Pt(10, 10), strokes[0].End)
	assert.Equal(t, state.Blue, strokes[0].Color)

	s.Brush().Select(4)
	assert.Equal(t, state.Blue, s.Strokes()[0].Color)
}

func TestClearStrokesKeepsBrush(t *testing.T) {
	s := New(400, 400)
	s.Brush().Select(2)
	for i := 0; i < 3; i++ {
		s.AddStroke(state.Pt(i, 100), state.Pt(i+1, 100))
	}

	s.ClearStrokes()
	assert.Empty(t, s.Strokes())
	s.ClearStrokes()
	assert.Empty(t, s.Strokes())
	assert.Equal(t, state.Green, s.Brush().Color())
}

func TestPaletteIndexAt(t *testing.T) {
	s := New(400, 400)
	cases := map[int]int{
		0:   0,
		49:  0,
		50:  1,
		120: 2,
		399: 7,
		400: 8,
		-1:  -1,
		-50: -1,
		-51: -2,
	}
	for x, want := range cases {
		assert.Equal(t, want, s.PaletteIndexAt(x), "x=%d", x)
	}
}

func TestInPaletteStrip(t *testing.T) {
	s := New(400, 400)
	assert.True(t, s.InPaletteStrip(state.Pt(10, 0)))
	assert.True(t, s.InPaletteStrip(state.Pt(10, 50)))
	assert.False(t, s.InPaletteStrip(state.Pt(10, 51)))
}

func TestSelectAt(t *testing.T) {
	s := New(400, 400)
	s.SelectAt(state.Pt(120, 10))
	assert.Equal(t, state.Green, s.Brush().Color())

	s.SelectAt(state.Pt(-5, 10))
	assert.Equal(t, state.Green, s.Brush().Color())

	s.SelectAt(state.Pt(450, 10))
	assert.Equal(t, state.Green, s.Brush().Color())
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "magenta", colorName(state.Magenta))
	assert.Equal(t, "#102030", colorName(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}))
}

func TestNarrowSurfaceKeepsCellWidth(t *testing.T) {
	s := New(4, 4)
	assert.Equal(t, image.Rect(0, 0, 1, StripHeight), s.SwatchRect(0))
	assert.Equal(t, 3, s.PaletteIndexAt(3))
	assert.Equal(t, -1, s.PaletteIndexAt(-1))

	s.SelectAt(state.Pt(3, 0))
	assert.Equal(t, state.Blue, s.Brush().Color())
}

func TestSessionLogLines(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	s := New(400, 400)
	s.AddStroke(state.Pt(0, 60), state.Pt(1, 60))
	s.SelectAt(state.Pt(60, 10))
	s.ClearStrokes()

	out := buf.String()
	assert.Contains(t, out, "Session "+s.Session()+": brush color changed to red after stroke 1")
	assert.Contains(t, out, "Session "+s.Session()+": cleared 1 strokes up to stroke 1")
}
