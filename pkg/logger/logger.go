// Package logger builds the zap loggers used across the service.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/Tolex081/provernaire-backend/internal/config"
)

// New builds a logger from the LOG_* environment variables.
func New() (*zap.SugaredLogger, error) {
	return NewWithConfig(appConfig.LoadLoggerConfigFromEnv())
}

// NewWithConfig builds a logger from cfg. Every entry carries a "service"
// field. Output may be stdout, stderr or a file path, which zap opens in
// append mode.
func NewWithConfig(cfg appConfig.LoggerConfig) (*zap.SugaredLogger, error) {
	zapConfig := baseConfig(cfg)

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{outputOrDefault(cfg.Output)}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	base, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	service := cfg.ServiceName
	if service == "" {
		service = appConfig.DefaultServiceName
	}
	return base.Sugar().With("service", service), nil
}

func baseConfig(cfg appConfig.LoggerConfig) zap.Config {
	if cfg.IsProduction() {
		return zap.NewProductionConfig()
	}

	zapConfig := zap.NewDevelopmentConfig()
	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return zapConfig
}

func outputOrDefault(output string) string {
	if output == "" {
		return "stdout"
	}
	return output
}
