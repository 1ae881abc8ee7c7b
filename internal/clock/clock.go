// Package clock accumulates simulated time from real frame deltas,
// honoring pause and time-scale controls. It is the only mutable piece of
// core state; everything else derives from the total it reports.
package clock

// SpeedStep is the factor applied per speed-up/slow-down control event.
const SpeedStep = 1.2

// Clock is a two-state machine (running/paused), initially running.
// It never blocks; frame cadence is paced entirely by the caller.
type Clock struct {
	total     float64
	timeScale float64
	paused    bool
}

// New returns a running clock at t=0 with time scale 1.
func New() *Clock {
	return &Clock{timeScale: 1}
}

// Advance feeds one frame's real elapsed seconds into the clock and
// returns the accumulated simulated time. While paused the total is held.
// realDelta must not be negative; the time scale may be, in which case
// simulated time runs backward.
func (c *Clock) Advance(realDelta float64) float64 {
	if !c.paused {
		c.total += realDelta * c.timeScale
	}
	return c.total
}

// Reset rewinds simulated time to zero. Pause state and scale are kept.
func (c *Clock) Reset() {
	c.total = 0
}

// TogglePause flips between running and paused.
func (c *Clock) TogglePause() {
	c.paused = !c.paused
}

// SpeedUp multiplies the time scale by SpeedStep.
func (c *Clock) SpeedUp() {
	c.timeScale *= SpeedStep
}

// SlowDown divides the time scale by SpeedStep.
func (c *Clock) SlowDown() {
	c.timeScale /= SpeedStep
}

// SetTimeScale overrides the scale. Any nonzero value is meaningful;
// negative values run the phase backward.
func (c *Clock) SetTimeScale(s float64) {
	c.timeScale = s
}

func (c *Clock) Total() float64     { return c.total }
func (c *Clock) TimeScale() float64 { return c.timeScale }
func (c *Clock) Paused() bool       { return c.paused }
