package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/AirHelp/geostat/analysis"
	"github.com/AirHelp/geostat/config"
	log "github.com/AirHelp/geostat/logger"
	"github.com/AirHelp/geostat/report"
	"github.com/AirHelp/geostat/report/slack"
	"github.com/AirHelp/geostat/report/text"
	"github.com/AirHelp/geostat/source/file"
)

func main() {
	cfg := parseStartingFlags()

	if cfg.Version {
		fmt.Println(versionString())
		os.Exit(0)
	}

	logger := log.InitLogger(cfg.Environment, cfg.LogLevel())
	defer func() { _ = logger.Sync() }()

	zap.S().Debugf("Geostat starting, version: %v", strings.TrimSpace(version))

	if err := run(cfg); err != nil {
		zap.S().With(zap.Error(err)).Error("Analysis failed")
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	input, err := analyzerInput(cfg)
	if err != nil {
		return err
	}

	input.Reporters = []report.Reporter{text.NewReporter(os.Stdout)}

	if cfg.SlackWebhookUrl != "" {
		zap.S().Debug("Initializing Slack client")
		input.Reporters = append(input.Reporters, slack.NewClient(cfg.SlackWebhookUrl, cfg.SlackChannel, "geostat"))
	}

	a, err := analysis.New(ctx, input)
	if err != nil {
		return err
	}

	defer func() {
		if err := a.Close(); err != nil {
			zap.S().With(zap.Error(err)).Warn("Failed to close source")
		}
	}()

	_, err = a.Run(ctx)

	return err
}

func analyzerInput(cfg config.Config) (analysis.NewAnalyzerInput, error) {
	input := analysis.NewAnalyzerInput{
		GlobalConfig: cfg,
	}

	switch {
	case cfg.ConfigPath != "" && cfg.DataPath != "":
		return input, fmt.Errorf("--config and --data cannot be used together")
	case cfg.ConfigPath != "":
		raw, err := os.ReadFile(cfg.ConfigPath)
		if err != nil {
			return input, err
		}

		input.RawYamlConfig = string(raw)
		input.BaseDir = filepath.Dir(cfg.ConfigPath)
	case cfg.DataPath != "":
		analysisConfig := analysis.NewAnalysisConfigWithDefaults()
		analysisConfig.Precision = cfg.Precision
		analysisConfig.File = &file.Config{Path: cfg.DataPath}

		input.Config = &analysisConfig
	default:
		return input, fmt.Errorf("either --config or --data is required")
	}

	return input, nil
}

func parseStartingFlags() config.Config {
	cfg := config.NewWithDefaults()
	flag.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Debug mode")
	flag.BoolVar(&cfg.Version, "version", false, "Prints version number")

	flag.StringVarP(&cfg.ConfigPath, "config", "c", "", "Analysis config file (yaml)")
	flag.StringVarP(&cfg.DataPath, "data", "d", "", "Samples file (yaml or csv), shortcut for a file source")
	flag.IntVar(&cfg.Precision, "precision", cfg.Precision, "Decimal places in reports")
	flag.StringVar(&cfg.Environment, "environment", "", "Environment name")
	flag.StringVar(&cfg.Namespace, "namespace", "", "Namespace to read ConfigMap samples from")
	flag.StringVar(&cfg.SlackWebhookUrl, "slack_url", "", "Slack Webhook URL to use")
	flag.StringVar(&cfg.SlackChannel, "slack_channel", "", "Slack channel to send reports to")
	flag.Parse()

	return cfg
}
