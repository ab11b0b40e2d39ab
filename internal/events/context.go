package events

import (
	"context"
	"os"
	"sync"
)

type contextKey int

const loggerKey contextKey = 0

// FromContext extracts logger from context.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// WithLogger adds logger to context.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithOperation tags the context and its logger with the CLI operation
// (enc, dec, derive).
func WithOperation(ctx context.Context, op string) context.Context {
	return WithLogger(ctx, FromContext(ctx).WithField("op", op))
}

var defaultLogger = &Logger{
	mu:     &sync.Mutex{},
	level:  WarnLevel,
	format: "text",
	output: os.Stderr,
	fields: make(map[string]interface{}),
}
