package core

import "time"

// Throttle lets a loop act at most once per interval, e.g. for progress logs.
type Throttle struct {
	every time.Duration
	last  time.Time
	now   func() time.Time
}

// NewThrottle constructs a Throttle firing at most once per interval. A
// non-positive interval disables it.
func NewThrottle(every time.Duration) *Throttle {
	return &Throttle{every: every, now: time.Now}
}

// Ready reports whether the interval has elapsed since the last time Ready
// returned true. The first call only starts the clock.
func (t *Throttle) Ready() bool {
	if t.every <= 0 {
		return false
	}
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		return false
	}
	if now.Sub(t.last) >= t.every {
		t.last = now
		return true
	}
	return false
}
