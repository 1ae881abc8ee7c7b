package wave_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendwave/internal/wave"
)

var _ = Describe("Oscillator", func() {
	newOsc := func(t wave.Tuning, i int) *wave.Oscillator {
		var o wave.Oscillator
		o.Setup(t.Derive(i), t)
		return &o
	}

	It("starts at full amplitude at t=0", func() {
		t := classicTuning()
		o := newOsc(t, 0)
		Expect(o.CurrentAngle).To(Equal(t.AmplitudeRad))
	})

	It("is deterministic: the same time gives a bit-identical position", func() {
		t := classicTuning()
		o := newOsc(t, 7)

		o.Update(13.37)
		first := o.Position

		o.Update(42.0)
		o.Update(13.37)
		Expect(o.Position).To(Equal(first))
	})

	It("is periodic in its own period", func() {
		t := classicTuning()
		for _, i := range []int{0, 12, 24} {
			o := newOsc(t, i)
			period := 2 * math.Pi / o.AngularFrequency

			o.Update(3.5)
			before := o.Position
			o.Update(3.5 + period)

			Expect(o.Position.X).To(BeNumerically("~", before.X, 1e-6))
			Expect(o.Position.Y).To(BeNumerically("~", before.Y, 1e-6))
		}
	})

	It("accepts rewound and negative time", func() {
		t := classicTuning()
		o := newOsc(t, 3)

		o.Update(100)
		o.Update(-5)
		// cos is even, so -t mirrors +t exactly.
		mirrored := o.Position
		o.Update(5)
		Expect(o.Position).To(Equal(mirrored))
	})

	It("keeps the bob at string length from the pivot", func() {
		t := classicTuning()
		o := newOsc(t, 10)

		for _, tm := range []float64{0, 1.1, 17.3, 59.9} {
			o.Update(tm)
			dx := o.Position.X - o.Pivot.X
			dy := o.Position.Y - o.Pivot.Y
			Expect(math.Hypot(dx, dy)).To(BeNumerically("~", o.VisualLength, 1e-9))
		}
	})
})

var _ = Describe("Field", func() {
	It("re-converges all phases at t=0 and t=totalPeriod", func() {
		t := classicTuning()
		f, err := wave.NewField(t)
		Expect(err).NotTo(HaveOccurred())

		for _, tm := range []float64{0, t.TotalPeriodS} {
			f.Update(tm)
			for i := range f.Oscillators {
				Expect(f.Oscillators[i].CurrentAngle).To(
					BeNumerically("~", t.AmplitudeRad, 1e-6),
					"oscillator %d at t=%v", i, tm)
			}
		}
	})

	It("spreads phases apart between re-convergences", func() {
		t := classicTuning()
		f, err := wave.NewField(t)
		Expect(err).NotTo(HaveOccurred())

		f.Update(t.TotalPeriodS / 3)
		first := f.Oscillators[0].CurrentAngle
		last := f.Oscillators[len(f.Oscillators)-1].CurrentAngle
		Expect(math.Abs(first - last)).To(BeNumerically(">", 1e-3))
	})

	It("allows an empty row", func() {
		t := classicTuning()
		t.Count = 0
		f, err := wave.NewField(t)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Oscillators).To(BeEmpty())
		Expect(f.Pivot.X).To(Equal(t.ScreenWidth / 2))
	})

	It("rejects an invalid tuning", func() {
		t := classicTuning()
		t.TotalPeriodS = 0
		_, err := wave.NewField(t)
		Expect(err).To(MatchError(wave.ErrBadPeriod))
	})

	It("rebuilds with re-scaled strings on resize", func() {
		f, err := wave.NewField(classicTuning())
		Expect(err).NotTo(HaveOccurred())

		resized, err := f.Resize(900, 500)
		Expect(err).NotTo(HaveOccurred())
		Expect(resized.Pivot.X).To(Equal(450.0))
		Expect(resized.Oscillators[0].VisualLength).To(BeNumerically("~", 500*0.8, 1e-9))

		// Original field untouched.
		Expect(f.Oscillators[0].VisualLength).To(BeNumerically("~", 800.0, 1e-9))
	})

	It("rejects a degenerate resize", func() {
		f, err := wave.NewField(classicTuning())
		Expect(err).NotTo(HaveOccurred())
		_, err = f.Resize(0, 500)
		Expect(err).To(MatchError(wave.ErrBadScreen))
	})
})
