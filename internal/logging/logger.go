// Package logging defines the structured logging interface shared by the
// client and the server. The only implementation today wraps slog.
package logging

import "context"

// Logger is a context-aware structured logger. The variadic args are
// alternating keys and values:
//
//	log.Info(ctx, "listening", "addr", addr)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
