package events

import (
	"io"
	"sync"
)

// NewTestLogger creates a logger for testing. Timestamps are off so output
// is stable.
func NewTestLogger(level LogLevel, format string, output io.Writer) *Logger {
	return &Logger{
		mu:     &sync.Mutex{},
		level:  level,
		format: format,
		output: output,
		fields: make(map[string]interface{}),
	}
}
