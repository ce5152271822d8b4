package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/AirHelp/geostat/helper"
	"github.com/AirHelp/geostat/stat"
)

//go:generate mockgen -destination=mock/reporter_mock.go -package reportMock github.com/AirHelp/geostat/report Reporter
type Reporter interface {
	Report(context.Context, Payload) error
	Kind() string
}

type LabeledSummary struct {
	Label string
	stat.Summary
}

type Payload struct {
	Environment string
	Source      string
	GeneratedAt time.Time
	Precision   int
	Summaries   []LabeledSummary
	Matrix      *stat.Matrix
}

// FormatMatrix renders the matrix with its row labels on the left. Column order matches row order.
// Undefined entries are written the same way as undefined summary values.
func FormatMatrix(m *stat.Matrix, precision int) string {
	if m == nil || m.Size() == 0 {
		return ""
	}

	labels := m.Labels()
	dense := m.Dense()
	rows, cols := dense.Dims()

	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, len(l))
	}

	cells := make([][]string, rows)
	widths := make([]int, cols)

	for i := range cells {
		cells[i] = make([]string, cols)

		for j, v := range mat.Row(nil, i, dense) {
			cells[i][j] = helper.FormatFloat(v, precision)
			widths[j] = max(widths[j], len(cells[i][j]))
		}
	}

	b := strings.Builder{}

	for i, row := range cells {
		fmt.Fprintf(&b, "%-*s", labelWidth, labels[i])

		for j, cell := range row {
			fmt.Fprintf(&b, "  %*s", widths[j], cell)
		}

		b.WriteString("\n")
	}

	return b.String()
}
