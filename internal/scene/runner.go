// Package scene drives the per-frame sequence: advance the clock, update
// every oscillator, submit geometry to a renderer. It owns the mapping
// from control events to clock transitions and nothing else; drawing and
// input polling belong to the frontends.
package scene

import (
	"github.com/san-kum/pendwave/internal/clock"
	"github.com/san-kum/pendwave/internal/wave"
)

// Renderer consumes one frame's geometry. Implementations draw; the
// runner only sequences. Per frame it receives one pivot marker, then one
// string segment and one bob per oscillator in index order.
type Renderer interface {
	DrawPivot(center wave.Vec2, radius float64, color wave.RGB)
	DrawString(from, to wave.Vec2, color wave.RGB)
	DrawBob(center wave.Vec2, radius float64, color wave.RGB)
}

// Cosmetics fixed for both frontends.
var (
	PivotColor  = wave.RGB{R: 200, G: 200, B: 200}
	StringColor = wave.RGB{R: 70, G: 70, B: 90}
)

// PivotMarkerRadius is the static pivot dot, pixels.
const PivotMarkerRadius = 10.0

// Runner sequences a single field and clock. Single-threaded by contract:
// one frontend loop owns it.
type Runner struct {
	field *wave.Field
	clock *clock.Clock
	done  bool
}

// New wraps an already-validated field in a running scene.
func New(f *wave.Field) *Runner {
	return &Runner{field: f, clock: clock.New()}
}

// Handle applies one control event. Resize rebuilds the field; a resize
// that fails validation (degenerate dimensions mid-drag) keeps the old
// geometry and reports the error.
func (r *Runner) Handle(ev Event) error {
	switch ev := ev.(type) {
	case TogglePause:
		r.clock.TogglePause()
	case Reset:
		r.clock.Reset()
	case SpeedUp:
		r.clock.SpeedUp()
	case SpeedDown:
		r.clock.SlowDown()
	case Quit:
		r.done = true
	case Resize:
		f, err := r.field.Resize(ev.Width, ev.Height)
		if err != nil {
			return err
		}
		r.field = f
	}
	return nil
}

// Step runs one frame's update: clock advance happens before any
// oscillator update. The update runs even while paused so a reset
// repositions the row on the next frame.
func (r *Runner) Step(realDelta float64) {
	t := r.clock.Advance(realDelta)
	r.field.Update(t)
}

// Render submits the current frame: pivot marker first, then each
// oscillator's string and bob.
func (r *Runner) Render(rd Renderer) {
	rd.DrawPivot(r.field.Pivot, PivotMarkerRadius, PivotColor)
	for i := range r.field.Oscillators {
		o := &r.field.Oscillators[i]
		rd.DrawString(o.Pivot, o.Position, StringColor)
		rd.DrawBob(o.Position, o.BobRadius, o.Color)
	}
}

// Done reports whether a Quit event has been handled.
func (r *Runner) Done() bool { return r.done }

// Field exposes the current row for read-only inspection.
func (r *Runner) Field() *wave.Field { return r.field }

// Clock exposes the simulation clock for status displays.
func (r *Runner) Clock() *clock.Clock { return r.clock }
