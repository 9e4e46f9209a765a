package core

import "time"

// TickInterval returns the wall-clock duration of one tick at the given rate.
// Non-positive rates fall back to 60 ticks per second.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// SpawnClock is a fixed-period timer driven by explicit time advances.
// It lets headless hosts fire the obstacle spawner on a virtual time line
// that is independent of the tick count.
type SpawnClock struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewSpawnClock creates a clock that fires once per interval.
func NewSpawnClock(interval time.Duration) *SpawnClock {
	return &SpawnClock{interval: interval}
}

// Advance moves the clock forward by dt and returns how many periods
// completed during the advance.
func (c *SpawnClock) Advance(dt time.Duration) int {
	if c.interval <= 0 || dt <= 0 {
		return 0
	}
	c.elapsed += dt
	fired := int(c.elapsed / c.interval)
	c.elapsed -= time.Duration(fired) * c.interval
	return fired
}

// Interval returns the clock period.
func (c *SpawnClock) Interval() time.Duration {
	return c.interval
}
