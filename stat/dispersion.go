package stat

import (
	"fmt"
	"math"
)

// Variance returns the Bessel-corrected sample variance.
func Variance(sample []float64) (float64, error) {
	n := len(sample)
	if n < 2 {
		return 0, fmt.Errorf("%w: variance needs at least 2 values, got %d", ErrDegenerateInput, n)
	}

	avg := Average(sample)
	squares := make([]float64, n)

	for i, v := range sample {
		squares[i] = (v - avg) * (v - avg)
	}

	return Average(squares) * float64(n) / float64(n-1), nil
}

func StandardDeviation(sample []float64) (float64, error) {
	variance, err := Variance(sample)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(variance), nil
}
