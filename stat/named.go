package stat

// NamedSamples is a collection of samples keyed by label that remembers insertion order.
type NamedSamples struct {
	labels  []string
	samples map[string][]float64
}

func NewNamedSamples() *NamedSamples {
	return &NamedSamples{
		samples: map[string][]float64{},
	}
}

// Add stores the sample under label. Re-adding a label replaces the sample and keeps its position.
func (n *NamedSamples) Add(label string, sample []float64) {
	if _, ok := n.samples[label]; !ok {
		n.labels = append(n.labels, label)
	}

	n.samples[label] = sample
}

func (n *NamedSamples) Get(label string) ([]float64, bool) {
	sample, ok := n.samples[label]
	return sample, ok
}

func (n *NamedSamples) Labels() []string {
	return append([]string{}, n.labels...)
}

func (n *NamedSamples) Len() int {
	return len(n.labels)
}
