package state

import (
	"image/color"
)

// StrokeStore is the append-only list of strokes drawn so far.
// It is owned by a single goroutine and does no locking.
type StrokeStore struct {
	clock   *Clock
	strokes []Stroke
}

// NewStrokeStore returns an empty store numbering strokes with clock.
func NewStrokeStore(clock *Clock) *StrokeStore {
	return &StrokeStore{
		clock:   clock,
		strokes: make([]Stroke, 0),
	}
}

// Add appends a segment from start to end in color c and returns it.
func (s *StrokeStore) Add(start, end Point, c color.NRGBA) Stroke {
	st := Stroke{
		Seq:   s.clock.Tick(),
		Start: start,
		End:   end,
		Color: c,
	}
	s.strokes = append(s.strokes, st)
	return st
}

// Clear drops every stroke and reports how many were removed.
func (s *StrokeStore) Clear() int {
	n := len(s.strokes)
	s.strokes = make([]Stroke, 0)
	return n
}

// Strokes returns a copy of the strokes in insertion order.
func (s *StrokeStore) Strokes() []Stroke {
	out := make([]Stroke, len(s.strokes))
	copy(out, s.strokes)
	return out
}

// Each calls fn for every stroke in insertion order, stopping at the first error.
func (s *StrokeStore) Each(fn func(Stroke) error) error {
	for _, st := range s.strokes {
		if err := fn(st); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of recorded strokes.
func (s *StrokeStore) Len() int { return len(s.strokes) }

// Last returns the most recently added stroke.
func (s *StrokeStore) Last() (Stroke, bool) {
	if len(s.strokes) == 0 {
		return Stroke{}, false
	}
	return s.strokes[len(s.strokes)-1], true
}
