package fusevec

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/hupe1980/fusevec/stream"
)

// Logger wraps slog.Logger with fusevec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithOp adds an operation name field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithLen adds a length field to the logger.
func (l *Logger) WithLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("len", n),
	}
}

// LogMaterialize logs a stream being drained into a builder.
func (l *Logger) LogMaterialize(n int, hint stream.SizeHint) {
	l.Debug("materialize completed",
		"elements", n,
		"hint", hint.String(),
	)
}

// LogAlias logs a zero-copy view being taken.
func (l *Logger) LogAlias(offset, n int) {
	l.Debug("alias view created",
		"offset", offset,
		"count", n,
	)
}

// LogScan logs a short-circuit search scan.
func (l *Logger) LogScan(op string, scanned int, found bool) {
	l.Debug("scan completed",
		"op", op,
		"scanned", scanned,
		"found", found,
	)
}

// The package logger. Combinators are free functions, so the logger is
// package-level rather than carried per instance. Noop by default.
var pkgLogger atomic.Pointer[Logger]

func init() {
	pkgLogger.Store(NoopLogger())
}

// SetLogger replaces the package logger. Passing nil restores the noop
// logger. Safe for concurrent use.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	pkgLogger.Store(l)
}

func logger() *Logger {
	return pkgLogger.Load()
}
