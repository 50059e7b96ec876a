package state

import (
	"github.com/google/uuid"
)

// Clock numbers the strokes of one drawing session. Sequence numbers keep
// growing across clears so log lines stay unambiguous.
type Clock struct {
	session string
	seq     uint64
}

// NewClock starts a clock with a fresh random session id.
func NewClock() *Clock {
	return &Clock{session: uuid.NewString()}
}

// Tick advances the clock and returns the new sequence number.
func (c *Clock) Tick() uint64 {
	c.seq++
	return c.seq
}

// Seq returns the last issued sequence number.
func (c *Clock) Seq() uint64 { return c.seq }

// Session returns the session id.
func (c *Clock) Session() string { return c.session }
