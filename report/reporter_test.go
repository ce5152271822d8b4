package report_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AirHelp/geostat/report"
	"github.com/AirHelp/geostat/stat"
)

var _ = Describe("FormatMatrix", func() {
	It("Returns empty string for missing matrix", func() {
		Expect(report.FormatMatrix(nil, 2)).To(Equal(""))
	})

	It("Prefixes every row with its label", func() {
		named := stat.NewNamedSamples()
		named.Add("a", []float64{1, 2, 3})
		named.Add("long", []float64{3, 2, 1})

		m, err := stat.CorrelationMatrix(named)
		Expect(err).ToNot(HaveOccurred())

		lines := strings.Split(strings.TrimSuffix(report.FormatMatrix(m, 2), "\n"), "\n")

		Expect(lines).To(HaveLen(2))
		Expect(lines[0]).To(HavePrefix("a    "))
		Expect(lines[1]).To(HavePrefix("long "))
		Expect(lines[0]).To(ContainSubstring("-1.00"))
		Expect(lines[1]).To(ContainSubstring("1.00"))
	})

	It("Aligns columns and writes undefined entries as in summaries", func() {
		named := stat.NewNamedSamples()
		named.Add("a", []float64{1, 2, 3})
		named.Add("flat", []float64{4, 4, 4})

		m, err := stat.CorrelationMatrix(named)
		Expect(err).ToNot(HaveOccurred())

		Expect(report.FormatMatrix(m, 2)).To(Equal(
			"a          1.00  undefined\n" +
				"flat  undefined  undefined\n",
		))
	})
})
