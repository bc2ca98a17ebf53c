package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a leveled printf-style logger used across the service.
// It wraps a zap.SugaredLogger so handlers, services and usecases can
// depend on a narrow Info/Warn/Error interface instead of zap directly.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New creates a logger writing JSON to the given file (stdout when empty)
// at the given level (debug, info, warn, error).
func New(file, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: parse level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stdout"}
	if file != "" {
		cfg.OutputPaths = []string{file}
	}

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}

	return &Logger{sugar: zl.Sugar()}, nil
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal logs the message and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Close flushes any buffered log entries.
func (l *Logger) Close() {
	_ = l.sugar.Sync()
}
