// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Frozen is a Clock that only moves when told to
type Frozen struct {
	At time.Time
}

// NewFrozen returns a clock stopped at t
func NewFrozen(t time.Time) *Frozen {
	return &Frozen{At: t}
}

// Now returns the frozen time
func (c *Frozen) Now() time.Time {
	return c.At
}

// Advance moves the clock forward by d
func (c *Frozen) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}
