package internal

import (
	"context"
	"log/slog"
	"time"

	"github.com/Lsnsh/www.rust-lang.org/pkg/logger"
)

const defaultAddress = ":8080"

// RunOption configures App.Run.
type RunOption func(*runConfig)

type runConfig struct {
	address         string
	logger          *slog.Logger
	shutdownTimeout time.Duration
	startupHooks    []func(context.Context) error
	shutdownHooks   []func(context.Context) error
	baseCtx         context.Context
}

// buildRunConfig applies opts over the defaults. Every field of the result
// is usable without nil checks.
func buildRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{
		address:         defaultAddress,
		logger:          logger.NewNope(),
		shutdownTimeout: defaultShutdownTimeout,
		baseCtx:         context.Background(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Address sets the listen address. Empty keeps ":8080".
func Address(addr string) RunOption {
	return func(c *runConfig) {
		if addr != "" {
			c.address = addr
		}
	}
}

// Logger sets the logger for server lifecycle events.
func Logger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// ShutdownTimeout bounds request draining and shutdown hooks together.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// StartupHook runs fn before the listener opens. An error aborts Run.
//
//	www.StartupHook(func(context.Context) error {
//	    _, err := registry()
//	    return err
//	})
func StartupHook(fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.startupHooks = append(c.startupHooks, fn)
		}
	}
}

// ShutdownHook runs fn after the server stopped accepting requests, in
// registration order.
//
//	www.ShutdownHook(func(ctx context.Context) error {
//	    return logger.Flush(ctx, 2*time.Second)
//	})
func ShutdownHook(fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.shutdownHooks = append(c.shutdownHooks, fn)
		}
	}
}

// WithContext sets the parent of the signal context. Cancelling it stops
// the server as a signal would.
func WithContext(ctx context.Context) RunOption {
	return func(c *runConfig) {
		if ctx != nil {
			c.baseCtx = ctx
		}
	}
}
