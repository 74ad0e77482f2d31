package sim

import (
	"math"
	"time"
)

// TimeSource supplies wall-clock readings.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the real monotonic clock.
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// Clock measures elapsed seconds between ticks.
type Clock struct {
	src  TimeSource
	last time.Time
}

// NewClock starts a clock at the source's current time. A nil source uses
// SystemTime.
func NewClock(src TimeSource) *Clock {
	if src == nil {
		src = SystemTime{}
	}
	return &Clock{src: src, last: src.Now()}
}

// Tick returns the seconds since the previous tick and restarts the
// measurement. A time source that moved backwards yields zero.
func (c *Clock) Tick() float64 {
	now := c.src.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset discards time elapsed since the last tick, e.g. after a pause.
func (c *Clock) Reset() {
	c.last = c.src.Now()
}

// FixedStep turns variable frame times into a whole number of fixed physics
// steps. Leftover time carries into the next call.
type FixedStep struct {
	Step       float64
	MaxElapsed float64

	acc float64
}

// NewFixedStep creates an accumulator running rate steps per second. Elapsed
// time fed to Advance is capped at maxElapsed; zero means no cap.
func NewFixedStep(rate, maxElapsed float64) *FixedStep {
	step := 0.0
	if rate > 0 {
		step = 1 / rate
	}
	return &FixedStep{Step: step, MaxElapsed: maxElapsed}
}

// steps within this fraction of a whole step count as whole
const stepEpsilon = 1e-9

// Advance accumulates elapsed seconds and returns how many steps to run.
func (f *FixedStep) Advance(elapsed float64) int {
	if f.Step <= 0 || math.IsNaN(elapsed) || elapsed <= 0 {
		return 0
	}
	if f.MaxElapsed > 0 && elapsed > f.MaxElapsed {
		elapsed = f.MaxElapsed
	}
	f.acc += elapsed
	n := int(math.Floor(f.acc/f.Step + stepEpsilon))
	f.acc -= float64(n) * f.Step
	if f.acc < 0 {
		f.acc = 0
	}
	return n
}

// Pending returns accumulated time not yet consumed by a step.
func (f *FixedStep) Pending() float64 {
	return f.acc
}

// Reset drops accumulated time.
func (f *FixedStep) Reset() {
	f.acc = 0
}
