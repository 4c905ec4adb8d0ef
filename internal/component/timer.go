package component

import "math"

// Timer is a repeating interval timer shared by weapon cooldowns and sprite
// animation. Tick fires at most once per call no matter how much time
// passed; whole extra intervals are dropped, the fractional remainder kept.
type Timer struct {
	Interval float64 // seconds
	Elapsed  float64
}

// NewTimer returns a timer that fires every interval seconds.
func NewTimer(interval float64) Timer {
	return Timer{Interval: interval}
}

// Tick advances the timer by dt and reports whether it crossed the interval.
func (t *Timer) Tick(dt float64) bool {
	if dt < 0 {
		dt = 0
	}
	t.Elapsed += dt
	if t.Interval <= 0 {
		t.Elapsed = 0
		return dt > 0
	}
	if t.Elapsed < t.Interval {
		return false
	}
	t.Elapsed = math.Mod(t.Elapsed, t.Interval)
	return true
}

// Fraction returns progress toward the next fire in [0,1).
func (t Timer) Fraction() float64 {
	if t.Interval <= 0 {
		return 0
	}
	return t.Elapsed / t.Interval
}
