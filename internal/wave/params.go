package wave

import (
	"fmt"
	"math"
)

// Tuning holds the global constants every oscillator derives from. It is
// built once at startup and never mutated afterwards; there is no ambient
// global state.
type Tuning struct {
	Count            int     // number of oscillators, N >= 0
	TotalPeriodS     float64 // full wave cycle duration, seconds
	BaseOscillations int     // swings of the slowest pendulum per cycle
	AmplitudeRad     float64 // shared swing amplitude, radians
	Gravity          float64 // m/s², only enters through the length formula
	ScreenWidth      float64 // pixels
	ScreenHeight     float64 // pixels
	MaxVisualRatio   float64 // fraction of screen height for the longest string
	BobRadius        float64 // pixels
	PivotY           float64 // pivot offset from the top edge, pixels
}

// Params are one oscillator's derived constants.
type Params struct {
	Index            int
	PeriodS          float64
	AngularFrequency float64 // rad/s
	PhysicsLength    float64 // meters, small-angle formula
	VisualLength     float64 // pixels
	ColorRatio       float64
}

// Validate rejects any tuning that would push a NaN or Inf into the
// derivation. Count 0 is valid: the row then renders only the pivot.
func (t Tuning) Validate() error {
	switch {
	case t.Count < 0:
		return fmt.Errorf("%w: got %d", ErrNegativeCount, t.Count)
	case !(t.TotalPeriodS > 0) || math.IsInf(t.TotalPeriodS, 0):
		return fmt.Errorf("%w: got %v", ErrBadPeriod, t.TotalPeriodS)
	case t.BaseOscillations <= 0:
		return fmt.Errorf("%w: got %d", ErrBadOscillations, t.BaseOscillations)
	case !(t.AmplitudeRad > 0) || t.AmplitudeRad >= math.Pi/2:
		return fmt.Errorf("%w: got %v", ErrBadAmplitude, t.AmplitudeRad)
	case !(t.Gravity > 0) || math.IsInf(t.Gravity, 0):
		return fmt.Errorf("%w: got %v", ErrBadGravity, t.Gravity)
	case !(t.ScreenWidth > 0) || !(t.ScreenHeight > 0):
		return fmt.Errorf("%w: got %vx%v", ErrBadScreen, t.ScreenWidth, t.ScreenHeight)
	case !(t.MaxVisualRatio > 0) || t.MaxVisualRatio > 1:
		return fmt.Errorf("%w: got %v", ErrBadLengthRatio, t.MaxVisualRatio)
	case !(t.BobRadius > 0):
		return fmt.Errorf("%w: got %v", ErrBadBobRadius, t.BobRadius)
	case t.PivotY < 0 || math.IsNaN(t.PivotY) || math.IsInf(t.PivotY, 0):
		return fmt.Errorf("%w: got %v", ErrBadPivot, t.PivotY)
	}

	// The raw constants are sane; the derivation is then total, but a
	// cheap finiteness sweep of the extremes guards combined overflow.
	for _, i := range []int{0, t.Count - 1} {
		if i < 0 {
			continue
		}
		p := t.Derive(i)
		if !isFinite(p.PeriodS, p.AngularFrequency, p.PhysicsLength, p.VisualLength) {
			return fmt.Errorf("%w: oscillator %d", ErrNonFinite, i)
		}
	}
	return nil
}

// Period returns totalPeriod/(baseOscillations+i): each oscillator
// completes exactly one more full cycle than its predecessor over the
// total duration, which is what makes the row re-converge.
func (t Tuning) Period(i int) float64 {
	return t.TotalPeriodS / float64(t.BaseOscillations+i)
}

// PixelsPerMeter scales the slowest (longest) pendulum to the configured
// fraction of the screen height. Computed from index 0 only; every other
// string reuses the same factor.
func (t Tuning) PixelsPerMeter() float64 {
	longest := t.physicsLength(t.Period(0))
	return t.ScreenHeight * t.MaxVisualRatio / longest
}

// Derive computes oscillator i's parameters. Pure and order-independent:
// each index depends only on the tuning constants.
func (t Tuning) Derive(i int) Params {
	period := t.Period(i)
	physics := t.physicsLength(period)

	ratio := 0.0
	if t.Count > 1 {
		ratio = float64(i) / float64(t.Count-1)
	}

	return Params{
		Index:            i,
		PeriodS:          period,
		AngularFrequency: 2 * math.Pi / period,
		PhysicsLength:    physics,
		VisualLength:     physics * t.PixelsPerMeter(),
		ColorRatio:       ratio,
	}
}

// DeriveAll derives every oscillator's parameters in index order.
func (t Tuning) DeriveAll() []Params {
	all := make([]Params, t.Count)
	for i := range all {
		all[i] = t.Derive(i)
	}
	return all
}

// Pivot returns the shared overhead anchor in screen coordinates.
func (t Tuning) Pivot() Vec2 {
	return Vec2{X: t.ScreenWidth / 2, Y: t.PivotY}
}

// physicsLength solves the small-angle pendulum period for length.
func (t Tuning) physicsLength(period float64) float64 {
	h := period / (2 * math.Pi)
	return t.Gravity * h * h
}

func isFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
