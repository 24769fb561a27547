package ctxlogger

import (
	"context"

	"github.com/IsaacDSC/pokecache/pkg/logs"
)

type loggerKey struct{}

// WithLogger stores a request or task scoped logger in ctx.
func WithLogger(ctx context.Context, logger *logs.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the logger stored in ctx, falling back to the default logger.
func GetLogger(ctx context.Context) *logs.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*logs.Logger); ok && logger != nil {
		return logger
	}

	return logs.Default()
}
