package internal

import (
	"net/http"
	"sync"
)

// ResponseWriter records the status and body size of a response so the
// request metrics and error handling can inspect them afterwards.
type ResponseWriter struct {
	http.ResponseWriter

	mu      sync.Mutex
	status  int
	size    int64
	written bool
}

// NewResponseWriter wraps w. Wrapping a *ResponseWriter returns it
// unchanged, so middleware and handlers share one set of counters.
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// commit records code as the response status. It reports false when the
// header was already sent.
func (w *ResponseWriter) commit(code int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.written {
		return false
	}
	w.written = true
	w.status = code
	return true
}

// WriteHeader sends the header once; later calls are ignored.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.commit(code) {
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	n, err := w.ResponseWriter.Write(b)

	w.mu.Lock()
	w.size += int64(n)
	w.mu.Unlock()
	return n, err
}

// Status returns the status sent, or 200 before anything was written.
func (w *ResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Size returns the number of body bytes written.
func (w *ResponseWriter) Size() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Written reports whether the header has been sent.
func (w *ResponseWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Flush implements http.Flusher when the wrapped writer does.
func (w *ResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap returns the wrapped writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
