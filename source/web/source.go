package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AirHelp/geostat/helper"
	"github.com/AirHelp/geostat/stat"
)

const defaultRequestTimeout = 3 * time.Second

type SeriesConfig struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

type Config struct {
	BaseURL        string         `yaml:"base_url"`
	Series         []SeriesConfig `yaml:"series"`
	RequestTimeout time.Duration  `yaml:"request_timeout"`
}

// Source fetches every series with one GET request. The client timeout bounds each request,
// the caller's context bounds the whole load.
type Source struct {
	baseURL string
	series  []SeriesConfig
	client  *http.Client
}

var (
	ErrNoBaseURLSpecified = errors.New("no base url provided")
	ErrNoSeriesSpecified  = errors.New("no series provided")
	ErrUnexpectedStatus   = errors.New("unexpected response status")
)

func New(config *Config) (*Source, error) {
	if config.BaseURL == "" {
		return &Source{}, ErrNoBaseURLSpecified
	}

	if len(config.Series) == 0 {
		return &Source{}, ErrNoSeriesSpecified
	}

	for _, s := range config.Series {
		if s.Label == "" {
			return &Source{}, fmt.Errorf("series with path %v has no label", s.Path)
		}
	}

	requestTimeout := config.RequestTimeout

	if requestTimeout == time.Duration(0) {
		requestTimeout = defaultRequestTimeout
	}

	return &Source{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		series:  config.Series,
		client:  &http.Client{Timeout: requestTimeout},
	}, nil
}

func (s *Source) Kind() string {
	return "web"
}

func (s *Source) Load(ctx context.Context) (*stat.NamedSamples, error) {
	named := stat.NewNamedSamples()

	for _, series := range s.series {
		sample, err := s.fetch(ctx, series.Path)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", series.Label, err)
		}

		zap.S().With("series", series.Label).Debugf("fetched %d values", len(sample))
		named.Add(series.Label, sample)
	}

	return named, nil
}

func (s *Source) fetch(ctx context.Context, path string) ([]float64, error) {
	endpoint, err := url.JoinPath(s.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get %v: %w", endpoint, err)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.S().With(zap.Error(err)).Debugf("closing response body of %v", endpoint)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w %d from %v", ErrUnexpectedStatus, resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %v: %w", endpoint, err)
	}

	return helper.ParseFloats(string(body))
}
