package stat

// FrequencyTable maps every distinct sample value to its number of occurrences.
type FrequencyTable map[float64]int

func Frequency(sample []float64) FrequencyTable {
	freq := FrequencyTable{}

	for _, v := range sample {
		freq[v]++
	}

	return freq
}

// Mode returns every value occurring with the highest frequency in a single pass.
// Values are ordered by when they reached that frequency; treat the result as a set.
func Mode(sample []float64) []float64 {
	freq := FrequencyTable{}
	modes := []float64{}
	greatest := 0

	for _, v := range sample {
		freq[v]++

		switch {
		case greatest == 0:
			greatest = 1
			modes = []float64{v}
		case freq[v] == greatest:
			modes = append(modes, v)
		case freq[v] > greatest:
			greatest = freq[v]
			modes = []float64{v}
		}
	}

	return modes
}
