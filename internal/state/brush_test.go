package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBrushDefaultsToBlack(t *testing.T) {
	b := NewBrush()
	assert.Equal(t, Black, b.Color())
	assert.Equal(t, b.Palette()[0], b.Color())
}

func TestPaletteOrder(t *testing.T) {
	b := NewBrush()
	want := [PaletteSize]color.NRGBA{Black, Red, Green, Blue, Magenta, Yellow, Cyan, White}
	assert.Equal(t, want, b.Palette())
}

func TestSelectInRange(t *testing.T) {
	b := NewBrush()
	for i := 0; i < PaletteSize; i++ {
		b.Select(i)
		assert.Equal(t, b.Palette()[i], b.Color(), "index %d", i)
	}
}

func TestSelectOutOfRangeIsIgnored(t *testing.T) {
	b := NewBrush()
	b.Select(5)
	for _, i := range []int{-1, -8, 8, 9, 1000} {
		b.Select(i)
		assert.Equal(t, Yellow, b.Color(), "index %d", i)
	}
}

func TestPaletteIsACopy(t *testing.T) {
	b := NewBrush()
	p := b.Palette()
	p[0] = White
	assert.Equal(t, Black, b.Palette()[0])
}
