package wave

import "errors"

// Configuration contract violations, all caught at setup. The per-frame
// path has no failure modes; a pathological constant is rejected before
// the first frame instead of propagating NaN into rendering.
var (
	// ErrNegativeCount indicates a negative oscillator count.
	ErrNegativeCount = errors.New("wave: oscillator count must not be negative")

	// ErrBadPeriod indicates a non-positive or non-finite total period.
	ErrBadPeriod = errors.New("wave: total period must be positive and finite")

	// ErrBadOscillations indicates a non-positive base oscillation count.
	ErrBadOscillations = errors.New("wave: base oscillation count must be positive")

	// ErrBadAmplitude indicates an amplitude outside (0, π/2) radians.
	ErrBadAmplitude = errors.New("wave: amplitude must be in (0, π/2) radians")

	// ErrBadGravity indicates a non-positive or non-finite gravity constant.
	ErrBadGravity = errors.New("wave: gravity must be positive and finite")

	// ErrBadScreen indicates non-positive screen dimensions.
	ErrBadScreen = errors.New("wave: screen dimensions must be positive")

	// ErrBadLengthRatio indicates a visual length ratio outside (0, 1].
	ErrBadLengthRatio = errors.New("wave: max visual length ratio must be in (0, 1]")

	// ErrBadBobRadius indicates a non-positive bob radius.
	ErrBadBobRadius = errors.New("wave: bob radius must be positive")

	// ErrBadPivot indicates a non-finite or negative pivot offset.
	ErrBadPivot = errors.New("wave: pivot offset must be finite and not negative")

	// ErrNonFinite indicates a derived parameter came out NaN or Inf.
	ErrNonFinite = errors.New("wave: derived parameter is NaN or Inf")
)
