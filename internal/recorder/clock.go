package recorder

import "sync"

// Clock is a thread-safe monotonic sequence source for record ordering.
//
// It can be reset for test reuse, so the same scenario can record twice
// with identical seq values.
type Clock struct {
	mu  sync.Mutex
	seq int64
}

// NewClock creates a Clock starting at 0; the first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a Clock resuming after seq; the first Next returns
// seq+1. Used when reopening an existing trace database.
func NewClockAt(seq int64) *Clock {
	return &Clock{seq: seq}
}

// Next increments and returns the next sequence number.
func (c *Clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset returns the clock to 0.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
