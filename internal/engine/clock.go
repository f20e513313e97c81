package engine

import "sync/atomic"

// Clock hands out the seq stamped on catalogue rows. Values start after the
// clock's origin and strictly increase. Safe for concurrent use.
type Clock struct {
	last atomic.Int64
}

// NewClock returns a clock whose first value is 1.
func NewClock() *Clock { return NewClockAt(0) }

// NewClockAt returns a clock whose first value is origin+1. Resume passes
// the catalogue's MaxSeq.
func NewClockAt(origin int64) *Clock {
	c := new(Clock)
	c.last.Store(origin)
	return c
}

// Next advances the clock.
func (c *Clock) Next() int64 { return c.last.Add(1) }

// Current is the most recent value returned by Next, or the origin.
func (c *Clock) Current() int64 { return c.last.Load() }
