package stat_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AirHelp/geostat/stat"
)

var _ = Describe("Describe", func() {
	It("summarises a sample", func() {
		s, err := stat.Describe([]float64{1, 2, 2, 3, 7})

		Expect(err).ToNot(HaveOccurred())
		Expect(s.Count).To(Equal(5))
		Expect(s.Minimum).To(Equal(float64(1)))
		Expect(s.Maximum).To(Equal(float64(7)))
		Expect(s.Mean).To(Equal(float64(3)))
		Expect(s.Median).To(Equal(float64(2)))
		Expect(s.Mode).To(ConsistOf(float64(2)))
		Expect(s.Variance).To(BeNumerically("~", 5.5, 1e-12))
		Expect(s.StandardDeviation).To(BeNumerically("~", math.Sqrt(5.5), 1e-12))
	})

	It("leaves dispersion undefined for a single value", func() {
		s, err := stat.Describe([]float64{4})

		Expect(err).ToNot(HaveOccurred())
		Expect(s.Median).To(Equal(float64(4)))
		Expect(math.IsNaN(s.Variance)).To(BeTrue())
		Expect(math.IsNaN(s.StandardDeviation)).To(BeTrue())
	})

	It("fails on an empty sample", func() {
		_, err := stat.Describe(nil)

		Expect(err).To(MatchError(stat.ErrEmptySample))
	})

	It("keeps the median between the extremes", func() {
		for _, sample := range [][]float64{{5}, {9, -3}, {1, 100, 50, 2}, {-1, -1, -1}} {
			s, err := stat.Describe(sample)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Median).To(BeNumerically(">=", s.Minimum))
			Expect(s.Median).To(BeNumerically("<=", s.Maximum))
		}
	})
})
