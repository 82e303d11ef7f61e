// Package logging builds the application's zap loggers.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"advocates/internal/config"
)

// Sink selects where log output goes
type Sink int

const (
	// SinkFile writes to the configured log file; used while the TUI owns the terminal
	SinkFile Sink = iota
	// SinkStderr writes to standard error
	SinkStderr
)

// New creates a zap logger from the logging config.
// prod uses JSON output, dev uses console output.
func New(cfg config.LoggingConfig, sink Sink) (*zap.Logger, error) {
	var zcfg zap.Config
	switch cfg.Env {
	case "prod":
		zcfg = zap.NewProductionConfig()
	case "", "dev":
		zcfg = zap.NewDevelopmentConfig()
		// Color escapes end up verbatim in log files
		if sink == SinkStderr {
			zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	default:
		return nil, fmt.Errorf("unknown environment %q for logger", cfg.Env)
	}

	if cfg.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	switch sink {
	case SinkFile:
		if cfg.File == "" {
			return zap.NewNop(), nil
		}
		zcfg.OutputPaths = []string{cfg.File}
		zcfg.ErrorOutputPaths = []string{cfg.File}
	case SinkStderr:
		zcfg.OutputPaths = []string{"stderr"}
		zcfg.ErrorOutputPaths = []string{"stderr"}
	}

	l, err := zcfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}
