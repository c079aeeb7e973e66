package middlewares_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lsnsh/www.rust-lang.org/internal"
	"github.com/Lsnsh/www.rust-lang.org/middlewares"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
)

// capture returns an error handler that records the handled error.
func capture(dst *error) internal.Option {
	return internal.WithErrorHandler(func(c internal.Context, err error) error {
		*dst = err
		return c.String(http.StatusInternalServerError, "recovered")
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("converts panic to PanicError", func(t *testing.T) {
		t.Parallel()

		var got error
		w := serve("/", "/", middlewares.Recover(), func(internal.Context) error {
			panic("test panic")
		}, capture(&got))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, "recovered", w.Body.String())

		pe, ok := middlewares.AsPanicError(got)
		require.True(t, ok)
		require.Equal(t, "test panic", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Empty(t, pe.Locale)
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		var got error
		w := serve("/", "/", middlewares.Recover(), func(c internal.Context) error {
			return c.String(http.StatusOK, "fine")
		}, capture(&got))

		require.NoError(t, got)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "fine", w.Body.String())
	})

	t.Run("disable print stack", func(t *testing.T) {
		t.Parallel()

		var got error
		serve("/", "/", middlewares.Recover(middlewares.WithRecoverDisablePrintStack()), func(internal.Context) error {
			panic("test panic")
		}, capture(&got))

		pe, ok := middlewares.AsPanicError(got)
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})

	t.Run("stack size bounds the trace", func(t *testing.T) {
		t.Parallel()

		var got error
		serve("/", "/", middlewares.Recover(middlewares.WithRecoverStackSize(64)), func(internal.Context) error {
			panic("test panic")
		}, capture(&got))

		pe, ok := middlewares.AsPanicError(got)
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("records request locale", func(t *testing.T) {
		t.Parallel()

		withLocale := func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				c.SetContext(l10n.WithLocale(c.Context(), "fr"))
				return middlewares.Recover()(next)(c)
			}
		}

		var got error
		serve("/{locale}/", "/fr/", withLocale, func(internal.Context) error {
			panic("render failed")
		}, capture(&got))

		pe, ok := middlewares.AsPanicError(got)
		require.True(t, ok)
		require.Equal(t, l10n.Locale("fr"), pe.Locale)
	})

	t.Run("error panics unwrap", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		var got error
		serve("/", "/", middlewares.Recover(), func(internal.Context) error {
			panic(boom)
		}, capture(&got))

		require.ErrorIs(t, got, boom)
		require.True(t, middlewares.IsPanicError(got))
	})
}

func TestPanicError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "something went wrong", "panic: something went wrong"},
		{"integer", 42, "panic: 42"},
		{"nil", nil, "panic: <nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := &middlewares.PanicError{Value: tt.value}
			require.Equal(t, tt.want, err.Error())
			require.NoError(t, err.Unwrap())
		})
	}

	t.Run("helpers", func(t *testing.T) {
		t.Parallel()

		pe := &middlewares.PanicError{Value: "x"}
		require.True(t, middlewares.IsPanicError(errors.Join(pe, errors.New("other"))))
		require.False(t, middlewares.IsPanicError(nil))
		require.False(t, middlewares.IsPanicError(http.ErrNoCookie))

		got, ok := middlewares.AsPanicError(pe)
		require.True(t, ok)
		require.Same(t, pe, got)

		_, ok = middlewares.AsPanicError(http.ErrNoCookie)
		require.False(t, ok)
	})
}
