package fusevec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerEmitsAtFunnel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	SetLogger(NewLogger(handler))
	defer SetLogger(nil)

	_ = Filter(Of(1, 2, 3, 4), func(x int) bool { return x%2 == 0 })

	out := buf.String()
	assert.Contains(t, out, "materialize completed")
	assert.Contains(t, out, "elements=2")
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(nil, slog.LevelError))
}

func TestSetLoggerNilRestoresNoop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, logger())
	assert.False(t, logger().Enabled(nil, slog.LevelError))
}

func TestWithFieldHelpers(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewLogger(handler)

	l.WithOp("slice").WithLen(3).Debug("check")

	out := buf.String()
	assert.Contains(t, out, "op=slice")
	assert.Contains(t, out, "len=3")
}
