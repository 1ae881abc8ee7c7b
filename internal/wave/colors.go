package wave

import "math"

// RGB is an 8-bit display color. The core hands these to whatever
// renderer is attached; it never draws anything itself.
type RGB struct {
	R, G, B uint8
}

// ColorFromRatio maps a normalized position along the row to a color on a
// piecewise-linear red→green→blue ramp. A ratio outside [0, 1] is clamped
// before evaluation so the result always stays in gamut.
func ColorFromRatio(ratio float64) RGB {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	r := math.Max(0, 1-ratio*2)
	g := 1 - math.Abs(ratio-0.5)*2
	b := math.Max(0, (ratio-0.5)*2)

	return RGB{channel(r), channel(g), channel(b)}
}

// Darken halves each channel. The GUI uses it for bob outlines.
func (c RGB) Darken() RGB {
	return RGB{c.R / 2, c.G / 2, c.B / 2}
}

func channel(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}
