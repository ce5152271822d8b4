package stat

import (
	"errors"

	"github.com/AirHelp/geostat/sorting"
)

var (
	ErrEmptySample     = errors.New("sample is empty")
	ErrLengthMismatch  = errors.New("samples do not have the same length")
	ErrDegenerateInput = errors.New("statistic is undefined for this sample")
)

// Average returns the arithmetic mean. An empty sample averages to 0.
func Average(sample []float64) float64 {
	if len(sample) == 0 {
		return float64(0)
	}

	var sum float64

	for _, n := range sample {
		sum += n
	}

	return sum / float64(len(sample))
}

func Median(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptySample
	}

	sorted := sorting.MergeSort(sample)
	l := len(sorted)

	if l%2 == 0 {
		return (sorted[l/2-1] + sorted[l/2]) / 2, nil
	}

	return sorted[(l+1)/2-1], nil
}

func Minimum(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptySample
	}

	min := sample[0]

	for _, n := range sample[1:] {
		if n < min {
			min = n
		}
	}

	return min, nil
}

func Maximum(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptySample
	}

	max := sample[0]

	for _, n := range sample[1:] {
		if n > max {
			max = n
		}
	}

	return max, nil
}
