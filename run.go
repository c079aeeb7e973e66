package www

import (
	"context"
	"log/slog"
	"time"

	"github.com/Lsnsh/www.rust-lang.org/internal"
)

// Run options

// Address sets the HTTP server address.
// Defaults to ":8080".
func Address(addr string) RunOption {
	return internal.Address(addr)
}

// Logger sets the server logger.
// If nil, logging is disabled.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
// This applies to both the HTTP server and shutdown hooks.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function to run before the server accepts
// connections. Hooks run in registration order; the first failure aborts
// startup and is returned from Run.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function to run during shutdown.
// Hooks are called in the order they were registered.
// Each hook receives a context with the shutdown timeout.
//
// Example:
//
//	www.ShutdownHook(func(ctx context.Context) error {
//	    return logger.Flush(ctx, 2*time.Second)
//	})
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
// Cancelling it stops the server as a signal would.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}
