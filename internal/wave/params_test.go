package wave_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendwave/internal/wave"
)

func classicTuning() wave.Tuning {
	return wave.Tuning{
		Count:            25,
		TotalPeriodS:     60,
		BaseOscillations: 50,
		AmplitudeRad:     22 * math.Pi / 180,
		Gravity:          9.81,
		ScreenWidth:      1800,
		ScreenHeight:     1000,
		MaxVisualRatio:   0.8,
		BobRadius:        12,
		PivotY:           50,
	}
}

var _ = Describe("Tuning derivation", func() {
	It("matches the two-pendulum worked example", func() {
		t := classicTuning()
		t.Count = 2

		p0 := t.Derive(0)
		p1 := t.Derive(1)

		Expect(p0.PeriodS).To(BeNumerically("~", 1.2, 1e-12))
		Expect(p1.PeriodS).To(BeNumerically("~", 60.0/51.0, 1e-12))
		Expect(p0.AngularFrequency).To(BeNumerically("~", 2*math.Pi/1.2, 1e-9))
		Expect(p1.AngularFrequency).To(BeNumerically("~", 2*math.Pi*51/60, 1e-9))
	})

	It("produces strictly increasing angular frequency over the row", func() {
		t := classicTuning()
		all := t.DeriveAll()
		for i := 1; i < len(all); i++ {
			Expect(all[i].AngularFrequency).To(BeNumerically(">", all[i-1].AngularFrequency))
		}
	})

	It("scales the slowest pendulum to the configured screen fraction", func() {
		t := classicTuning()
		p0 := t.Derive(0)
		Expect(p0.VisualLength).To(BeNumerically("~", 1000*0.8, 1e-9))
	})

	It("keeps every later string shorter than its predecessor", func() {
		t := classicTuning()
		all := t.DeriveAll()
		for i := 1; i < len(all); i++ {
			Expect(all[i].VisualLength).To(BeNumerically("<", all[i-1].VisualLength))
		}
	})

	It("spreads color ratios from 0 to 1", func() {
		t := classicTuning()
		all := t.DeriveAll()
		Expect(all[0].ColorRatio).To(BeZero())
		Expect(all[len(all)-1].ColorRatio).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("treats a single pendulum as ratio zero", func() {
		t := classicTuning()
		t.Count = 1
		Expect(t.Derive(0).ColorRatio).To(BeZero())
	})

	It("is order-independent across indices", func() {
		t := classicTuning()
		forward := t.DeriveAll()
		for i := t.Count - 1; i >= 0; i-- {
			Expect(t.Derive(i)).To(Equal(forward[i]))
		}
	})
})

var _ = Describe("Tuning validation", func() {
	It("accepts the classic tuning", func() {
		Expect(classicTuning().Validate()).To(Succeed())
	})

	It("accepts a zero-count row", func() {
		t := classicTuning()
		t.Count = 0
		Expect(t.Validate()).To(Succeed())
	})

	DescribeTable("rejects pathological constants",
		func(mutate func(*wave.Tuning), sentinel error) {
			t := classicTuning()
			mutate(&t)
			Expect(t.Validate()).To(MatchError(sentinel))
		},
		Entry("negative count", func(t *wave.Tuning) { t.Count = -1 }, wave.ErrNegativeCount),
		Entry("zero period", func(t *wave.Tuning) { t.TotalPeriodS = 0 }, wave.ErrBadPeriod),
		Entry("NaN period", func(t *wave.Tuning) { t.TotalPeriodS = math.NaN() }, wave.ErrBadPeriod),
		Entry("infinite period", func(t *wave.Tuning) { t.TotalPeriodS = math.Inf(1) }, wave.ErrBadPeriod),
		Entry("zero base oscillations", func(t *wave.Tuning) { t.BaseOscillations = 0 }, wave.ErrBadOscillations),
		Entry("zero amplitude", func(t *wave.Tuning) { t.AmplitudeRad = 0 }, wave.ErrBadAmplitude),
		Entry("right-angle amplitude", func(t *wave.Tuning) { t.AmplitudeRad = math.Pi / 2 }, wave.ErrBadAmplitude),
		Entry("zero gravity", func(t *wave.Tuning) { t.Gravity = 0 }, wave.ErrBadGravity),
		Entry("zero screen height", func(t *wave.Tuning) { t.ScreenHeight = 0 }, wave.ErrBadScreen),
		Entry("zero length ratio", func(t *wave.Tuning) { t.MaxVisualRatio = 0 }, wave.ErrBadLengthRatio),
		Entry("ratio above one", func(t *wave.Tuning) { t.MaxVisualRatio = 1.5 }, wave.ErrBadLengthRatio),
		Entry("zero bob radius", func(t *wave.Tuning) { t.BobRadius = 0 }, wave.ErrBadBobRadius),
		Entry("negative pivot offset", func(t *wave.Tuning) { t.PivotY = -1 }, wave.ErrBadPivot),
	)
})
