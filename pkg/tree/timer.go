package tree

import "time"

// Wall clock budget of a search, a negative budget means no deadline
type clock struct {
	start  time.Time
	budget time.Duration
}

func newClock() *clock {
	return &clock{start: time.Now(), budget: -1}
}

func (c *clock) reset() {
	c.start = time.Now()
}

// In milliseconds
func (c *clock) setMovetime(movetime int) {
	if movetime < 0 {
		c.budget = -1
		return
	}
	c.budget = time.Duration(movetime) * time.Millisecond
}

func (c *clock) isSet() bool {
	return c.budget >= 0
}

func (c *clock) expired() bool {
	return c.isSet() && time.Since(c.start) >= c.budget
}

// Milliseconds since the last reset, at least 1 so it can be used as a divisor
func (c *clock) elapsedMs() int {
	return max(int(time.Since(c.start).Milliseconds()), 1)
}
