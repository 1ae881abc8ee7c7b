package wave

// Field is the full pendulum row hanging from one overhead pivot.
// Oscillator configurations are derived once here and never mutated;
// Update only touches the per-frame angle and position.
type Field struct {
	Tuning      Tuning
	Pivot       Vec2
	Oscillators []Oscillator
}

// NewField validates the tuning, derives every oscillator's parameters
// and assembles the row. This is the only place the model can fail.
func NewField(t Tuning) (*Field, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	f := &Field{
		Tuning:      t,
		Pivot:       t.Pivot(),
		Oscillators: make([]Oscillator, t.Count),
	}
	for i, p := range t.DeriveAll() {
		f.Oscillators[i].Setup(p, t)
	}
	return f, nil
}

// Update recomputes every oscillator for the given simulated time. The
// oscillators are mutually independent; sequential order is incidental.
func (f *Field) Update(totalSimTime float64) {
	for i := range f.Oscillators {
		f.Oscillators[i].Update(totalSimTime)
	}
}

// Resize rebuilds the field for new screen dimensions. Configurations
// stay immutable: the old field is untouched and a fresh one is returned,
// re-derived so the longest string keeps its screen-height fraction.
func (f *Field) Resize(width, height float64) (*Field, error) {
	t := f.Tuning
	t.ScreenWidth = width
	t.ScreenHeight = height
	return NewField(t)
}
