package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// log defaults to a no-op logger so packages can log before Init (and in
// tests) without nil checks.
var log = zap.NewNop()

// Init builds the process logger. Level is one of debug/info/warn/error;
// anything else falls back to info.
func Init(development bool, level string) error {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	built, err := config.Build()
	if err != nil {
		return err
	}
	log = built
	return nil
}

// Get returns the process logger.
func Get() *zap.Logger {
	return log
}

// Sync flushes any buffered log entries.
func Sync() error {
	return log.Sync()
}
