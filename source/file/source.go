package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/AirHelp/geostat/helper"
	"github.com/AirHelp/geostat/stat"
)

const (
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

type Config struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

type Source struct {
	path   string
	format string
}

var (
	ErrNoPathSpecified = errors.New("no file path provided")
	ErrUnknownFormat   = errors.New("unknown file format")
)

func New(config *Config) (*Source, error) {
	if config.Path == "" {
		return &Source{}, ErrNoPathSpecified
	}

	format := strings.ToLower(config.Format)

	if format == "" {
		switch strings.ToLower(filepath.Ext(config.Path)) {
		case ".yaml", ".yml":
			format = FormatYAML
		case ".csv":
			format = FormatCSV
		}
	}

	if format != FormatYAML && format != FormatCSV {
		return &Source{}, fmt.Errorf("%w: %q of %v", ErrUnknownFormat, config.Format, config.Path)
	}

	return &Source{
		path:   config.Path,
		format: format,
	}, nil
}

func (s *Source) Kind() string {
	return "file"
}

func (s *Source) Load(_ context.Context) (*stat.NamedSamples, error) {
	zap.S().Debugf("reading %v samples from %v", s.format, s.path)

	if s.format == FormatCSV {
		f, err := os.Open(s.path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return DecodeCSV(f)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	return DecodeYAML(data)
}

// DecodeYAML reads a mapping of label to a list of numbers, keeping document order.
func DecodeYAML(data []byte) (*stat.NamedSamples, error) {
	var doc yaml.MapSlice

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	named := stat.NewNamedSamples()

	for _, item := range doc {
		label := fmt.Sprint(item.Key)

		raw, ok := item.Value.([]interface{})
		if !ok && item.Value != nil {
			return nil, fmt.Errorf("%v: expected a list of numbers", label)
		}

		sample := make([]float64, 0, len(raw))

		for i, v := range raw {
			f, err := toFloat(v)
			if err != nil {
				return nil, fmt.Errorf("%v[%d]: %w", label, i, err)
			}

			sample = append(sample, f)
		}

		named.Add(label, sample)
	}

	return named, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		if math.IsNaN(n) {
			return 0, fmt.Errorf("value is not a number: %v", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("value is not a number: %v", v)
	}
}

// DecodeCSV reads a header row of labels followed by rows of numbers, one column per sample.
func DecodeCSV(r io.Reader) (*stat.NamedSamples, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return stat.NewNamedSamples(), nil
	}
	if err != nil {
		return nil, err
	}

	columns := make([][]float64, len(header))

	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		for i, cell := range record {
			v, err := helper.ParseFloat(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", row, header[i], err)
			}

			columns[i] = append(columns[i], v)
		}
	}

	named := stat.NewNamedSamples()

	for i, label := range header {
		if columns[i] == nil {
			columns[i] = []float64{}
		}

		named.Add(strings.TrimSpace(label), columns[i])
	}

	return named, nil
}
