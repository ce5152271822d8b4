package helper

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Float", func() {
	Describe("ParseFloats()", func() {
		DescribeTable("Properly parses separated numbers",
			func(input string, expectation []float64) {
				res, err := ParseFloats(input)
				Expect(err).ToNot(HaveOccurred())
				Expect(res).To(Equal(expectation))
			},
			Entry("Empty string", "", []float64{}),
			Entry("Whitespace only", " \n\t", []float64{}),
			Entry("Comma separated", "1,2,3", []float64{1, 2, 3}),
			Entry("Newline separated", "1.5\n-2\n3e2\n", []float64{1.5, -2, 300}),
			Entry("Mixed separators", "1, 2;3 4", []float64{1, 2, 3, 4}),
		)

		It("Returns error when value is not number", func() {
			res, err := ParseFloats("1,asdf,3")

			Expect(res).To(BeNil())
			Expect(err).To(Equal(errors.New("value is not a number: asdf")))
		})

		It("Rejects NaN", func() {
			_, err := ParseFloats("NaN")

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ParseFloat()", func() {
		DescribeTable("Parses single numbers",
			func(input string, expectation float64) {
				Expect(ParseFloat(input)).To(Equal(expectation))
			},
			Entry("Integer", "3", float64(3)),
			Entry("Surrounding spaces", " -1.5 ", float64(-1.5)),
			Entry("Exponent", "2e3", float64(2000)),
			Entry("Infinity", "+Inf", math.Inf(1)),
		)

		DescribeTable("Rejects values that are not numbers",
			func(input, message string) {
				_, err := ParseFloat(input)

				Expect(err).To(MatchError(message))
			},
			Entry("Word", "deep", "value is not a number: deep"),
			Entry("NaN", "NaN", "value is not a number: NaN"),
			Entry("Lowercase nan", " nan", "value is not a number: nan"),
			Entry("Empty", "", "value is not a number: "),
		)
	})

	Describe("FormatFloat()", func() {
		DescribeTable("Properly formats numbers",
			func(input float64, precision int, expectation string) {
				Expect(FormatFloat(input, precision)).To(Equal(expectation))
			},
			Entry("Integer value", float64(3), 2, "3.00"),
			Entry("Rounded value", 1.0/3.0, 3, "0.333"),
			Entry("Negative value", -0.5, 1, "-0.5"),
			Entry("NaN", math.NaN(), 2, "undefined"),
		)
	})

	Describe("FloatSliceToString()", func() {
		DescribeTable("Properly builds string from slice of floats",
			func(input []float64, expectation string) {
				Expect(FloatSliceToString(input, 1)).To(Equal(expectation))
			},
			Entry("Empty slice", []float64{}, ""),
			Entry("One element", []float64{1}, "1.0"),
			Entry("Multiple elements", []float64{1, 5.26, 9}, "1.0, 5.3, 9.0"),
		)
	})
})
