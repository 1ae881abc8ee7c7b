package wave_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendwave/internal/wave"
)

var _ = Describe("ColorFromRatio", func() {
	DescribeTable("three-band ramp",
		func(ratio float64, expected wave.RGB) {
			Expect(wave.ColorFromRatio(ratio)).To(Equal(expected))
		},
		Entry("red end", 0.0, wave.RGB{R: 255, G: 0, B: 0}),
		Entry("red-green midpoint", 0.25, wave.RGB{R: 128, G: 128, B: 0}),
		Entry("green peak", 0.5, wave.RGB{R: 0, G: 255, B: 0}),
		Entry("green-blue midpoint", 0.75, wave.RGB{R: 0, G: 128, B: 128}),
		Entry("blue end", 1.0, wave.RGB{R: 0, G: 0, B: 255}),
	)

	It("clamps ratios outside the domain", func() {
		Expect(wave.ColorFromRatio(-0.3)).To(Equal(wave.ColorFromRatio(0)))
		Expect(wave.ColorFromRatio(1.7)).To(Equal(wave.ColorFromRatio(1)))
	})

	It("darkens by halving each channel", func() {
		c := wave.RGB{R: 201, G: 100, B: 3}
		Expect(c.Darken()).To(Equal(wave.RGB{R: 100, G: 50, B: 1}))
	})
})
