package middlewares

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/Lsnsh/www.rust-lang.org/internal"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// PanicError is returned to the error handler when a handler panics.
type PanicError struct {
	Value  any         // recovered value
	Stack  []byte      // truncated trace, nil when capture is off
	Locale l10n.Locale // request locale, empty outside localized routes
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// AsPanicError extracts the PanicError from an error chain.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	ok := errors.As(err, &pe)
	return pe, ok
}

// IsPanicError reports whether err wraps a PanicError.
func IsPanicError(err error) bool {
	_, ok := AsPanicError(err)
	return ok
}

// RecoverOption configures Recover.
type RecoverOption func(*recoverConfig)

type recoverConfig struct {
	stackSize int
}

// WithRecoverStackSize caps the captured stack trace at size bytes.
// Zero or less turns capture off.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *recoverConfig) {
		cfg.stackSize = size
	}
}

// WithRecoverDisablePrintStack turns stack capture off.
func WithRecoverDisablePrintStack() RecoverOption {
	return WithRecoverStackSize(0)
}

// Recover returns middleware that turns a panic into a PanicError for the
// global ErrorHandler. Templates panic when rendered without a locale in
// context, so localized routes must run behind Recover.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := recoverConfig{stackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				pe := &PanicError{Value: r, Locale: c.Locale()}
				if cfg.stackSize > 0 {
					buf := make([]byte, cfg.stackSize)
					pe.Stack = buf[:runtime.Stack(buf, false)]
				}

				attrs := []any{
					slog.Any("panic", r),
					slog.String("path", c.Request().URL.Path),
				}
				if pe.Locale != "" {
					attrs = append(attrs, slog.String("locale", string(pe.Locale)))
				}
				if pe.Stack != nil {
					attrs = append(attrs, slog.String("stack", string(pe.Stack)))
				}
				c.LogError("panic recovered", attrs...)
				err = pe
			}()

			return next(c)
		}
	}
}
