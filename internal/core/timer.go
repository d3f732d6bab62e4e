package core

import "time"

// DefaultRate is the generations-per-second rate used when none is given.
const DefaultRate = 10

// FixedStep paces generation steps inside a frame loop. It accumulates
// elapsed wall time and reports how many steps are due, capped so a stalled
// frame does not trigger a burst of catch-up generations.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxBurst    int
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting rate generations per second.
// Fractional rates below one are allowed.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{maxBurst: 4, now: time.Now}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the generation rate. Non-positive rates fall back to
// DefaultRate.
func (f *FixedStep) SetRate(rate float64) {
	if !(rate > 0) {
		rate = DefaultRate
	}
	f.step = time.Duration(float64(time.Second) / rate)
	if f.step <= 0 {
		f.step = time.Nanosecond
	}
}

// Rate returns the current generations-per-second rate.
func (f *FixedStep) Rate() float64 {
	return float64(time.Second) / float64(f.step)
}

// Interval returns the wall time between two steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset drops accumulated time, e.g. after a pause.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Due reports how many steps should run since the previous call.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < f.maxBurst {
		f.accumulator -= f.step
		n++
	}
	if n == f.maxBurst {
		f.accumulator = 0
	}
	return n
}

// ShouldStep reports whether at least one step is due.
func (f *FixedStep) ShouldStep() bool {
	return f.Due() > 0
}
