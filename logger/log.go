package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger replaces the global zap loggers. Library packages log through zap.S().
func InitLogger(environment, logLevel string) *zap.Logger {
	var zapLogLevel zapcore.Level = zap.InfoLevel
	if logLevel == "debug" {
		zapLogLevel = zap.DebugLevel
	}

	zapConfig := zap.NewProductionConfig()

	zapConfig.Level.SetLevel(zapLogLevel)
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.OutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	logger = logger.WithOptions(zap.AddStacktrace(zapcore.FatalLevel)).With(zap.String("app", "geostat"), zap.String("environment", environment))
	zap.ReplaceGlobals(logger)

	return logger
}
