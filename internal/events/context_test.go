package events_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheMichaelB/textseal/internal/events"
)

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	// Should return default logger when none in context
	logger := events.FromContext(ctx)
	assert.NotNil(t, logger)
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	logger := &events.Logger{}

	ctx = events.WithLogger(ctx, logger)
	retrieved := events.FromContext(ctx)

	assert.Equal(t, logger, retrieved)

	// A zero Logger has nowhere to write and must not panic.
	assert.NotPanics(t, func() { retrieved.Info("dropped") })
}

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	ctx := events.WithLogger(context.Background(), events.NewTestLogger(events.DebugLevel, "text", &buf))

	ctx = events.WithOperation(ctx, "dec")

	events.FromContext(ctx).Debug("decrypting")
	assert.Contains(t, buf.String(), "op=dec")
}
