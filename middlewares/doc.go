// Package middlewares provides HTTP middleware for Duck Works applications.
//
// # Request ID
//
// RequestID assigns an ID to each request, reusing X-Request-ID or
// X-Correlation-ID from upstream proxies and generating a UUID otherwise.
// Pair it with RequestIDExtractor so every log line carries request_id:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor())
//	app := duckworks.New(
//	    duckworks.WithLogger(log),
//	    duckworks.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns panics into *PanicError values for the app's ErrorHandler:
//
//	duckworks.WithErrorHandler(func(c duckworks.Context, err error) error {
//	    if middlewares.IsPanicError(err) {
//	        return c.JSON(500, map[string]any{"ok": false, "error": "Server error"})
//	    }
//	    ...
//	})
//
// # Request logging
//
// RequestLogger writes one line per request with method, path, status and
// duration.
//
// # Rate limiting
//
// RateLimit counts requests per client IP in a fixed window backed by a
// cache.Counter (in memory or Redis) and rejects the excess with 429:
//
//	r.POST("/api/contact", h.submit,
//	    middlewares.RateLimit(cache.NewMemoryCounter(), 5,
//	        middlewares.WithRateLimitWindow(10*time.Minute)))
//
// # Order
//
//	duckworks.WithMiddleware(
//	    middlewares.RequestID(),     // first, so every later log has the ID
//	    middlewares.RequestLogger(),
//	    middlewares.Recover(),
//	)
package middlewares
