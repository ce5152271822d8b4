package stat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a square, row-major matrix indexed by sample labels.
type Matrix struct {
	labels []string
	data   []float64
}

func newMatrix(labels []string) *Matrix {
	return &Matrix{
		labels: labels,
		data:   make([]float64, len(labels)*len(labels)),
	}
}

func (m *Matrix) offset(i, j int) int {
	if i < 0 || j < 0 || i >= len(m.labels) || j >= len(m.labels) {
		panic(fmt.Sprintf("stat: matrix index (%d, %d) out of range for size %d", i, j, len(m.labels)))
	}

	return i*len(m.labels) + j
}

func (m *Matrix) set(i, j int, v float64) {
	m.data[m.offset(i, j)] = v
}

func (m *Matrix) Size() int {
	return len(m.labels)
}

func (m *Matrix) Labels() []string {
	return append([]string{}, m.labels...)
}

func (m *Matrix) At(i, j int) float64 {
	return m.data[m.offset(i, j)]
}

// Defined reports whether entry (i, j) holds a value rather than the NaN placeholder of an undefined correlation.
func (m *Matrix) Defined(i, j int) bool {
	return !math.IsNaN(m.At(i, j))
}

func (m *Matrix) Get(row, col string) (float64, bool) {
	i, j := m.index(row), m.index(col)
	if i < 0 || j < 0 {
		return 0, false
	}

	return m.At(i, j), true
}

func (m *Matrix) Row(i int) []float64 {
	start := m.offset(i, 0)
	return append([]float64{}, m.data[start:start+len(m.labels)]...)
}

// Dense copies the matrix into a gonum dense matrix. An empty matrix yields an empty Dense.
func (m *Matrix) Dense() *mat.Dense {
	if len(m.labels) == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(len(m.labels), len(m.labels), append([]float64{}, m.data...))
}

func (m *Matrix) index(label string) int {
	for i, l := range m.labels {
		if l == label {
			return i
		}
	}

	return -1
}

// CorrelationMatrix correlates every pair of named samples. Pairs whose correlation is
// undefined hold NaN; samples of different lengths fail the whole matrix.
func CorrelationMatrix(named *NamedSamples) (*Matrix, error) {
	labels := named.Labels()
	m := newMatrix(labels)

	for i, row := range labels {
		for j := i; j < len(labels); j++ {
			col := labels[j]
			x, _ := named.Get(row)
			y, _ := named.Get(col)

			corr, err := Correlation(x, y)

			switch {
			case errors.Is(err, ErrDegenerateInput):
				corr = math.NaN()
			case err != nil:
				return nil, fmt.Errorf("correlating %q with %q: %w", row, col, err)
			}

			m.set(i, j, corr)
			m.set(j, i, corr)
		}
	}

	return m, nil
}
