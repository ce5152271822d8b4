package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseFloats reads numbers separated by commas, semicolons or whitespace.
func ParseFloats(raw string) ([]float64, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	values := make([]float64, 0, len(fields))

	for _, f := range fields {
		v, err := ParseFloat(f)
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}

// ParseFloat parses a single number, surrounding spaces allowed. NaN is rejected.
func ParseFloat(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("value is not a number: %v", raw)
	}

	return v, nil
}

// FormatFloat renders NaN as "undefined".
func FormatFloat(v float64, precision int) string {
	if math.IsNaN(v) {
		return "undefined"
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

func FloatSliceToString(input []float64, precision int) string {
	b := strings.Builder{}

	for _, v := range input {
		if b.Len() > 0 {
			b.WriteString(", ")
		}

		b.WriteString(FormatFloat(v, precision))
	}

	return b.String()
}
