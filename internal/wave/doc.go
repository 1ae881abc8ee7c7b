// Package wave implements the pendulum-wave model: a row of independent
// simple-harmonic oscillators whose periods are tuned so the row drifts
// out of phase and re-converges over one total cycle.
//
// The package is a pure computation pipeline. [Tuning] holds the global
// constants, [Tuning.Derive] turns them into per-oscillator parameters,
// and [Oscillator.Update] maps simulated time to a bob position. Nothing
// here draws, blocks, or fails after [NewField] has accepted the tuning.
package wave
