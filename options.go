package seekgo

import "log/slog"

type options struct {
	logger       *Logger
	matchLimit   int
	capacityHint int
}

// Option configures per-call behavior of the search and sort routines.
//
// Options exist to avoid exploding the entry-point signatures; every routine
// works with zero options supplied.
type Option func(*options)

// WithLogger configures structured logging for the call.
// Pass nil to keep logging disabled.
//
// Example with JSON logging:
//
//	logger := seekgo.NewJSONLogger(slog.LevelDebug)
//	matches, _ := seekgo.LinearSearch(view, target, cmp, seekgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMatchLimit bounds how many matches a search may collect. Exceeding the
// bound aborts the search with *ErrMatchLimit and discards the partial
// buffer, so a truncated result is never mistaken for a complete one.
//
// Zero or negative means unlimited (the default).
func WithMatchLimit(n int) Option {
	return func(o *options) {
		o.matchLimit = n
	}
}

// WithCapacityHint pre-sizes the match buffer for callers that can estimate
// their match count, avoiding early growth steps. The hint never bounds the
// result.
func WithCapacityHint(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacityHint = n
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
