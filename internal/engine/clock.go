// Package engine holds the frame clock that gates the update/render cycle.
package engine

import "time"

// Clock owns the running flag for the periodic update cycle. The platform
// tick loop keeps firing regardless; each tick it asks the clock whether the
// simulation should advance. Scene handlers start and stop the clock as part
// of their enter/exit side effects.
type Clock struct {
	running bool
	elapsed time.Duration
}

// NewClock creates a stopped clock.
func NewClock() *Clock {
	return &Clock{}
}

// Start marks the update cycle as running. Idempotent.
func (c *Clock) Start() {
	c.running = true
}

// Stop marks the update cycle as stopped. Idempotent.
func (c *Clock) Stop() {
	c.running = false
}

// Running reports whether the update cycle is active.
func (c *Clock) Running() bool {
	return c.running
}

// Advance accumulates game time. Only counts while the clock is running.
func (c *Clock) Advance(dt time.Duration) {
	if c.running {
		c.elapsed += dt
	}
}

// Elapsed returns the total game time accumulated while running.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Reset zeroes the accumulated game time. The running flag is untouched.
func (c *Clock) Reset() {
	c.elapsed = 0
}
