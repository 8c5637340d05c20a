// Package logging builds the zap loggers used by postview.
//
// The interactive table owns the terminal, so it logs to a file. One-shot
// commands log to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the sink and the level.
type Options struct {
	File    string // empty means stderr
	Verbose bool
}

// New builds a production logger. Call Sync before exit.
func New(opt Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if opt.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.Sampling = nil
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if opt.File != "" {
		if err := os.MkdirAll(filepath.Dir(opt.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		cfg.OutputPaths = []string{opt.File}
		cfg.ErrorOutputPaths = []string{opt.File}
	} else {
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("postview"), nil
}
