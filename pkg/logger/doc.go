// Package logger builds the site's structured logger on top of log/slog.
//
// Records are written as JSON (or text for local runs) to stdout. When a
// Sentry DSN is configured, warnings and errors are also forwarded to Sentry;
// errors become Issues. A missing or broken DSN never stops the process, the
// logger just keeps writing to stdout.
//
// Context extractors add request-scoped attributes at log time:
//
//	log := logger.New(logger.Config{Level: "info"}, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "quote request delivered")
//	// {"level":"INFO","msg":"quote request delivered","request_id":"..."}
package logger
