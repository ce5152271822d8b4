package text

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/AirHelp/geostat/helper"
	"github.com/AirHelp/geostat/report"
)

type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) Reporter {
	return Reporter{
		out: out,
	}
}

func (r Reporter) Kind() string {
	return "text"
}

func (r Reporter) Report(_ context.Context, payload report.Payload) error {
	p := payload.Precision

	b := strings.Builder{}
	fmt.Fprintf(&b, "source: %v, generated at %v\n\n", payload.Source, payload.GeneratedAt.Format(time.RFC3339))

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "label\tcount\tmin\tmax\tmean\tmedian\tmode\tvariance\tstd dev")

	for _, s := range payload.Summaries {
		fmt.Fprintf(w, "%v\t%d\t%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
			s.Label,
			s.Count,
			helper.FormatFloat(s.Minimum, p),
			helper.FormatFloat(s.Maximum, p),
			helper.FormatFloat(s.Mean, p),
			helper.FormatFloat(s.Median, p),
			helper.FloatSliceToString(s.Mode, p),
			helper.FormatFloat(s.Variance, p),
			helper.FormatFloat(s.StandardDeviation, p),
		)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if matrix := report.FormatMatrix(payload.Matrix, p); matrix != "" {
		fmt.Fprintf(&b, "\ncorrelation matrix:\n%v", matrix)
	}

	_, err := io.WriteString(r.out, b.String())

	return err
}
