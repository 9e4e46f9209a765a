package core

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	if got := TickInterval(50); got != 20*time.Millisecond {
		t.Errorf("TickInterval(50) = %v, expected 20ms", got)
	}
	if got := TickInterval(0); got != TickInterval(60) {
		t.Errorf("TickInterval(0) = %v, expected fallback to 60 ticks/s", got)
	}
}

func TestSpawnClockFiresOncePerInterval(t *testing.T) {
	c := NewSpawnClock(1500 * time.Millisecond)
	step := 20 * time.Millisecond // 50 ticks per second

	fired := 0
	firstAt := -1
	for tick := 1; tick <= 300; tick++ {
		n := c.Advance(step)
		if n > 0 && firstAt < 0 {
			firstAt = tick
		}
		fired += n
	}

	// 300 ticks * 20ms = 6s -> 4 periods of 1.5s
	if fired != 4 {
		t.Errorf("expected 4 firings in 6s, got %d", fired)
	}
	if firstAt != 75 {
		t.Errorf("expected first firing at tick 75, got %d", firstAt)
	}
}

func TestSpawnClockLargeAdvance(t *testing.T) {
	c := NewSpawnClock(time.Second)

	if n := c.Advance(3500 * time.Millisecond); n != 3 {
		t.Errorf("Advance(3.5s) = %d, expected 3", n)
	}
	if n := c.Advance(500 * time.Millisecond); n != 1 {
		t.Errorf("remainder should carry over, Advance(0.5s) = %d, expected 1", n)
	}
}

func TestSpawnClockDisabled(t *testing.T) {
	c := NewSpawnClock(0)
	if n := c.Advance(time.Hour); n != 0 {
		t.Errorf("zero interval should never fire, got %d", n)
	}
}
