package stat

import (
	"errors"
	"math"
)

// Summary holds the univariate statistics of one sample. Variance and
// StandardDeviation are NaN when the sample has a single value.
type Summary struct {
	Count             int
	Minimum           float64
	Maximum           float64
	Mean              float64
	Median            float64
	Mode              []float64
	Variance          float64
	StandardDeviation float64
}

func Describe(sample []float64) (Summary, error) {
	if len(sample) == 0 {
		return Summary{}, ErrEmptySample
	}

	s := Summary{
		Count: len(sample),
		Mean:  Average(sample),
		Mode:  Mode(sample),
	}

	var err error

	if s.Minimum, err = Minimum(sample); err != nil {
		return Summary{}, err
	}

	if s.Maximum, err = Maximum(sample); err != nil {
		return Summary{}, err
	}

	if s.Median, err = Median(sample); err != nil {
		return Summary{}, err
	}

	s.Variance, err = Variance(sample)
	switch {
	case errors.Is(err, ErrDegenerateInput):
		s.Variance = math.NaN()
		s.StandardDeviation = math.NaN()
	case err != nil:
		return Summary{}, err
	default:
		s.StandardDeviation = math.Sqrt(s.Variance)
	}

	return s, nil
}
