package state

import (
	"image/color"
)

// Point is a window-relative pixel coordinate.
type Point struct{ X, Y int }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Stroke is one recorded line segment. A stroke is never modified after the
// store hands it out.
type Stroke struct {
	Seq   uint64 // Store-assigned sequence number
	Start Point
	End   Point
	Color color.NRGBA // Snapshot of the active brush color
}
