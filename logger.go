package seekgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with seekgo-specific context.
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

// WithLen adds a view length field to the logger.
func (l *Logger) WithLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("len", n),
	}
}

// logSearch logs a completed or failed search pass.
func (l *Logger) logSearch(op string, scanned, matches int, err error) {
	if err != nil {
		l.Error("search failed",
			"op", op,
			"scanned", scanned,
			"error", err,
		)
	} else {
		l.Debug("search completed",
			"op", op,
			"scanned", scanned,
			"matches", matches,
		)
	}
}

// logSort logs a completed or failed in-place sort.
func (l *Logger) logSort(op string, n int, err error) {
	if err != nil {
		l.Error("sort failed",
			"op", op,
			"len", n,
			"error", err,
		)
	} else {
		l.Debug("sort completed",
			"op", op,
			"len", n,
		)
	}
}
