package internal

import (
	"errors"
	"net/http"
)

// HTTPError is an error carrying the status and message id an error page
// is rendered from. Err holds the cause for logs; it is never shown.
type HTTPError struct {
	Err       error
	Message   string // plain text used when no error handler is set
	MessageID string // localization id of the page title
	RequestID string
	Code      int
}

func (e *HTTPError) Error() string { return e.Message }

func (e *HTTPError) Unwrap() error { return e.Err }

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates an HTTPError with code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WithMessageID sets the localization id of the error page title.
func WithMessageID(id string) HTTPErrorOption {
	return func(e *HTTPError) { e.MessageID = id }
}

// WithRequestID records the id of the failed request.
func WithRequestID(id string) HTTPErrorOption {
	return func(e *HTTPError) { e.RequestID = id }
}

// WithError sets the cause.
func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) { e.Err = err }
}

// ErrNotFound creates a 404 HTTPError.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return httpError(http.StatusNotFound, message, opts)
}

// ErrMethodNotAllowed creates a 405 HTTPError.
func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return httpError(http.StatusMethodNotAllowed, message, opts)
}

func httpError(code int, message string, opts []HTTPErrorOption) *HTTPError {
	e := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsHTTPError reports whether err wraps an HTTPError.
func IsHTTPError(err error) bool {
	return AsHTTPError(err) != nil
}

// AsHTTPError returns the first HTTPError in err's chain, or nil.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}
