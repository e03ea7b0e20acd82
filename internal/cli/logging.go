package cli

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cipherlist/cipherlist/internal/config"
)

// newLogger builds a zap logger from the logging configuration. Errors fall
// back to a no-op logger so a bad config never blocks a command.
func newLogger(cfg *config.Config) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	if cfg.Logging.File != "" {
		zcfg.OutputPaths = append(zcfg.OutputPaths, cfg.Logging.File)
	}

	log, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
