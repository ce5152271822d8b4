package stat

import "fmt"

// Covariance returns the Bessel-corrected sample covariance of two equally long samples.
func Covariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: x has length %d while y has length %d", ErrLengthMismatch, len(x), len(y))
	}

	n := len(x)
	if n < 2 {
		return 0, fmt.Errorf("%w: covariance needs at least 2 pairs, got %d", ErrDegenerateInput, n)
	}

	ex := Average(x)
	ey := Average(y)
	products := make([]float64, n)

	for i := range x {
		products[i] = (x[i] - ex) * (y[i] - ey)
	}

	return Average(products) * float64(n) / float64(n-1), nil
}

// Correlation returns the Pearson correlation coefficient. It fails with
// ErrDegenerateInput when either sample is constant.
func Correlation(x, y []float64) (float64, error) {
	cov, err := Covariance(x, y)
	if err != nil {
		return 0, err
	}

	sx, err := StandardDeviation(x)
	if err != nil {
		return 0, err
	}

	sy, err := StandardDeviation(y)
	if err != nil {
		return 0, err
	}

	if sx == 0 || sy == 0 {
		return 0, fmt.Errorf("%w: correlation of a constant sample", ErrDegenerateInput)
	}

	return cov / (sx * sy), nil
}
