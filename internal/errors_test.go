package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lsnsh/www.rust-lang.org/internal"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	notFound := internal.ErrNotFound("page not found", internal.WithMessageID("error-not-found"))

	tests := []struct {
		name string
		err  error
		want *internal.HTTPError
	}{
		{"direct", notFound, notFound},
		{"wrapped", fmt.Errorf("locale: %w", notFound), notFound},
		{"double wrapped", fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", notFound)), notFound},
		{"joined", errors.Join(errors.New("other"), notFound), notFound},
		{"plain error", errors.New("template failed"), nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := internal.AsHTTPError(tt.err)
			if tt.want == nil {
				require.Nil(t, got)
				require.False(t, internal.IsHTTPError(tt.err))
				return
			}
			require.Same(t, tt.want, got)
			require.True(t, internal.IsHTTPError(tt.err))
		})
	}
}

func TestHTTPErrorOptions(t *testing.T) {
	t.Parallel()

	err := internal.ErrNotFound("page not found",
		internal.WithError(l10n.ErrUnsupportedLocale),
		internal.WithMessageID("error-not-found"),
		internal.WithRequestID("req-1"),
	)

	require.Equal(t, http.StatusNotFound, err.Code)
	require.Equal(t, "page not found", err.Error())
	require.Equal(t, "error-not-found", err.MessageID)
	require.Equal(t, "req-1", err.RequestID)
	require.ErrorIs(t, err, l10n.ErrUnsupportedLocale)

	mna := internal.ErrMethodNotAllowed("method not allowed")
	require.Equal(t, http.StatusMethodNotAllowed, mna.Code)
	require.NoError(t, mna.Unwrap())
}
