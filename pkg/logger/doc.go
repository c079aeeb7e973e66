// Package logger provides structured logging with context extraction and
// optional Sentry reporting.
//
// Create a logger from configuration and extractors:
//
//	log := logger.New(cfg.Log,
//		middlewares.RequestIDExtractor(),
//		middlewares.LocaleExtractor(),
//	)
//	log.InfoContext(ctx, "page rendered", slog.String("page", "index"))
//	// {"level":"INFO","msg":"page rendered","page":"index","request_id":"...","locale":"fr"}
//
// Extractors run on every log call, so request-scoped values are always
// current. WithContext decorates any slog.Handler the same way.
//
// When SENTRY_DSN is set, warnings and errors are also sent to Sentry and
// errors create issues. Without a DSN, or when Sentry fails to initialize,
// logging continues to stdout only. Call Flush during shutdown to deliver
// buffered events.
package logger
