package wave

import "math"

// Vec2 is a point in screen coordinates, y growing downward.
type Vec2 struct {
	X, Y float64
}

// Oscillator is one pendulum: an immutable configuration fixed by Setup
// plus the renderable state recomputed from simulated time each frame.
type Oscillator struct {
	AngularFrequency float64
	VisualLength     float64
	AmplitudeRad     float64
	Pivot            Vec2
	Color            RGB
	BobRadius        float64

	// Recomputed by Update every frame; never integrated.
	CurrentAngle float64
	Position     Vec2
}

// Setup fixes the oscillator's configuration and places the bob at t=0.
func (o *Oscillator) Setup(p Params, tn Tuning) {
	o.AngularFrequency = p.AngularFrequency
	o.VisualLength = p.VisualLength
	o.AmplitudeRad = tn.AmplitudeRad
	o.Pivot = tn.Pivot()
	o.Color = ColorFromRatio(p.ColorRatio)
	o.BobRadius = tn.BobRadius
	o.Update(0)
}

// Update recomputes the angle and bob position for the given simulated
// time. It is a pure function of the configuration and t: the same t
// always yields a bit-identical position, and t may jump backward (reset,
// negative time scale) freely.
func (o *Oscillator) Update(t float64) {
	angle := o.AmplitudeRad * math.Cos(o.AngularFrequency*t)
	o.CurrentAngle = angle
	o.Position = Vec2{
		X: o.Pivot.X + o.VisualLength*math.Sin(angle),
		Y: o.Pivot.Y + o.VisualLength*math.Cos(angle),
	}
}
