package sim

import "time"

// Timer is a repeating timer driven by explicit ticks
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
}

// NewTimer creates a timer that finishes every d. A non-positive d finishes
// on every tick.
func NewTimer(d time.Duration) *Timer {
	return &Timer{duration: d}
}

// Tick advances the timer by dt and reports whether a period finished.
// Several periods finishing within one tick still report a single true;
// the remainder carries over to the next period.
func (t *Timer) Tick(dt time.Duration) bool {
	if t.duration <= 0 {
		t.elapsed = 0
		return true
	}
	t.elapsed += dt
	if t.elapsed < t.duration {
		return false
	}
	t.elapsed %= t.duration
	return true
}

// Reset restarts the current period
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Elapsed returns the time spent in the current period
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the period
func (t *Timer) Duration() time.Duration {
	return t.duration
}
