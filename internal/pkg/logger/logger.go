// Package logger adapts zap to the application's Logger port.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger routes structured log records to a zap core writing to stderr,
// keeping stdout free for command output.
type ZapLogger struct {
	base *zap.Logger
}

// New builds a logger. Non-verbose runs log at warn level so retry boundaries
// stay observable without cluttering normal output; verbose drops to debug.
func New(verbose bool) *ZapLogger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	base, err := cfg.Build()
	if err != nil {
		base = zap.NewNop()
	}
	return &ZapLogger{base: base}
}

// NewNop returns a logger that discards everything; used in tests.
func NewNop() *ZapLogger {
	return &ZapLogger{base: zap.NewNop()}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug(msg, zapFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.base.Info(msg, zapFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn(msg, zapFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	zf := zapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l.base.Error(msg, zf...)
}

// Sync flushes buffered records; safe to call on exit.
func (l *ZapLogger) Sync() {
	_ = l.base.Sync()
}

func zapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}
