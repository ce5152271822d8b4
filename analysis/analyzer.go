package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/AirHelp/geostat/config"
	"github.com/AirHelp/geostat/k8s"
	"github.com/AirHelp/geostat/report"
	"github.com/AirHelp/geostat/source"
	"github.com/AirHelp/geostat/source/configmap"
	"github.com/AirHelp/geostat/source/file"
	"github.com/AirHelp/geostat/source/redis"
	"github.com/AirHelp/geostat/source/sqs"
	"github.com/AirHelp/geostat/source/web"
	"github.com/AirHelp/geostat/stat"
)

var (
	ErrSourceNotSpecified = errors.New("no source specified for analysis")
	ErrMultipleSources    = errors.New("more than one source specified for analysis")
	ErrUnknownLabel       = errors.New("label not present in loaded samples")
)

// Export `now` function to variable - make it available for stubbing in tests
var now = time.Now

type Analyzer struct {
	config    Config
	source    source.Source
	reporters []report.Reporter

	globalConfig config.Config
	logger       *zap.SugaredLogger
}

type NewAnalyzerInput struct {
	// RawYamlConfig is parsed over the defaults unless Config is set.
	RawYamlConfig string
	Config        *Config
	BaseDir       string

	Reporters  []report.Reporter
	K8sService configmap.K8SClient
	SQSService *sqs.SQSService

	GlobalConfig config.Config
}

type Result struct {
	Labels    []string
	Summaries []report.LabeledSummary
	Matrix    *stat.Matrix
}

func New(ctx context.Context, i NewAnalyzerInput) (*Analyzer, error) {
	a := Analyzer{
		reporters:    i.Reporters,
		globalConfig: i.GlobalConfig,
		logger:       zap.S().With("environment", i.GlobalConfig.Environment),
	}

	analysisConfig := NewAnalysisConfigWithDefaults()
	if i.GlobalConfig.Precision > 0 {
		analysisConfig.Precision = i.GlobalConfig.Precision
	}

	if i.Config != nil {
		analysisConfig = *i.Config
	} else if err := yaml.Unmarshal([]byte(i.RawYamlConfig), &analysisConfig); err != nil {
		a.logger.With(zap.Error(err)).Warn("Failed to parse config")
		a.logger.Debugf("Raw config: %+v", i.RawYamlConfig)
		return &a, err
	}

	if analysisConfig.Timeout <= 0 {
		analysisConfig.Timeout = defaultTimeout
	}

	analysisConfig.resolvePaths(i.BaseDir)
	a.config = analysisConfig
	a.logger.Debugf("Parsed analysis config: %+v", analysisConfig)

	switch analysisConfig.sourceCount() {
	case 0:
		return &a, ErrSourceNotSpecified
	case 1:
	default:
		return &a, ErrMultipleSources
	}

	var (
		requestedSource source.Source
		err             error
	)

	a.logger.Debug("Initializing source")

	switch {
	case analysisConfig.File != nil:
		requestedSource, err = file.New(analysisConfig.File)
	case analysisConfig.Redis != nil:
		requestedSource, err = redis.New(ctx, analysisConfig.Redis)
	case analysisConfig.Web != nil:
		requestedSource, err = web.New(analysisConfig.Web)
	case analysisConfig.Sqs != nil:
		svc := i.SQSService
		if svc == nil {
			if svc, err = sqs.NewSQSService(ctx); err != nil {
				return &a, err
			}
		}

		requestedSource, err = sqs.New(ctx, analysisConfig.Sqs, svc)
	case analysisConfig.ConfigMap != nil:
		k8sSvc := i.K8sService
		if k8sSvc == nil {
			if k8sSvc, err = k8s.New(i.GlobalConfig.Namespace); err != nil {
				return &a, err
			}
		}

		requestedSource, err = configmap.New(analysisConfig.ConfigMap, k8sSvc)
	}

	if err != nil {
		return &a, err
	}

	a.source = requestedSource
	a.logger = a.logger.With("source", a.source.Kind())
	a.logger.Debugf("Initialized source: %v", a.source.Kind())

	return &a, nil
}

func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	a.logger.Debug("Loading samples")

	named, err := a.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading samples from %v: %w", a.source.Kind(), err)
	}

	named, err = a.selectLabels(named)
	if err != nil {
		return nil, err
	}

	a.logger.Debugf("Loaded %d samples: %v", named.Len(), named.Labels())

	result := Result{
		Labels: named.Labels(),
	}

	for _, label := range result.Labels {
		sample, _ := named.Get(label)

		summary, err := stat.Describe(sample)
		if err != nil {
			return nil, fmt.Errorf("describing %q: %w", label, err)
		}

		result.Summaries = append(result.Summaries, report.LabeledSummary{Label: label, Summary: summary})
	}

	if result.Matrix, err = stat.CorrelationMatrix(named); err != nil {
		return nil, err
	}

	a.notify(ctx, result)

	a.logger.Debug("Finished analysis")

	return &result, nil
}

func (a *Analyzer) selectLabels(named *stat.NamedSamples) (*stat.NamedSamples, error) {
	if len(a.config.Labels) == 0 {
		return named, nil
	}

	selected := stat.NewNamedSamples()

	for _, label := range a.config.Labels {
		sample, ok := named.Get(label)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownLabel, label)
		}

		selected.Add(label, sample)
	}

	return selected, nil
}

func (a *Analyzer) notify(ctx context.Context, result Result) {
	payload := report.Payload{
		Environment: a.globalConfig.Environment,
		Source:      a.source.Kind(),
		GeneratedAt: now(),
		Precision:   a.config.Precision,
		Summaries:   result.Summaries,
		Matrix:      result.Matrix,
	}

	for _, reporter := range a.reporters {
		if err := reporter.Report(ctx, payload); err != nil {
			a.logger.With(zap.Error(err)).Warnf("Failed to report to %v", reporter.Kind())
		}
	}
}

// Close releases connections held by the source, if any.
func (a *Analyzer) Close() error {
	if closer, ok := a.source.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
