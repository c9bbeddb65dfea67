// Package logging carries a zap logger through a context.
package logging

import (
	"context"
	"io"

	"github.com/goaux/contextvalue"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w.
// Debug entries are enabled only when verbose is true.
func New(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// WithLogger returns a copy of ctx holding log.
func WithLogger(ctx context.Context, log *zap.Logger) context.Context {
	return contextvalue.With(ctx, log)
}

// Get returns the logger stored in ctx, or a no-op logger.
func Get(ctx context.Context) *zap.Logger {
	if log, ok := contextvalue.From[*zap.Logger](ctx); ok && log != nil {
		return log
	}
	return zap.NewNop()
}
