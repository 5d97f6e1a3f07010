// Package logging defines the small structured-logging interface used across
// the project, plus a log/slog-backed implementation.
package logging

import "context"

// Logger is a context-aware structured logger. Variadic args are
// key–value pairs:
//
//	log.Info(ctx, "fetched user page", "page", page, "count", n)
type Logger interface {
	// Debug logs fine-grained diagnostics.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
