package timing

// Timer accumulates elapsed time and fires each time an interval is crossed.
// The overshoot is carried into the next interval.
type Timer struct {
	interval float64
	passed   float64
}

// NewTimer creates a timer firing every interval seconds.
func NewTimer(interval float64) *Timer {
	return &Timer{interval: interval}
}

// SetInterval changes the firing interval.
func (t *Timer) SetInterval(interval float64) {
	t.interval = interval
}

// Interval returns the firing interval.
func (t *Timer) Interval() float64 {
	return t.interval
}

// Restart clears the accumulated time.
func (t *Timer) Restart() {
	t.passed = 0
}

// Elapsed returns the time accumulated since the last firing.
func (t *Timer) Elapsed() float64 {
	return t.passed
}

// Remaining returns the time left until the next firing.
func (t *Timer) Remaining() float64 {
	return t.interval - t.passed
}

// HasTimePassed adds dt and reports whether the interval was reached.
func (t *Timer) HasTimePassed(dt float64) bool {
	t.passed += dt
	if t.passed >= t.interval {
		t.passed -= t.interval
		return true
	}
	return false
}
