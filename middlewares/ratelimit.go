package middlewares

import (
	"strconv"
	"time"

	"github.com/goduckworks/duckworks/internal"
	"github.com/goduckworks/duckworks/pkg/cache"
)

// DefaultRateLimitWindow is used when no window is configured.
const DefaultRateLimitWindow = 10 * time.Minute

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	Window  time.Duration
	Prefix  string
	Message string
	// KeyFunc identifies the caller; defaults to the client IP.
	KeyFunc func(c internal.Context) string
	// FailOpen lets requests through when the counter store errors.
	FailOpen bool
}

// RateLimitOption configures RateLimitConfig.
type RateLimitOption func(*RateLimitConfig)

// WithRateLimitWindow sets the length of the counting window.
func WithRateLimitWindow(d time.Duration) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		if d > 0 {
			cfg.Window = d
		}
	}
}

// WithRateLimitPrefix namespaces counter keys.
func WithRateLimitPrefix(prefix string) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.Prefix = prefix
	}
}

// WithRateLimitKey replaces the client IP as the counting key.
func WithRateLimitKey(fn func(c internal.Context) string) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.KeyFunc = fn
	}
}

// WithRateLimitMessage sets the message carried by the 429 error.
func WithRateLimitMessage(msg string) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.Message = msg
	}
}

// WithRateLimitFailOpen lets requests through when the store is unavailable.
func WithRateLimitFailOpen() RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.FailOpen = true
	}
}

// RateLimit allows at most limit requests per key inside a fixed window and
// returns a 429 HTTPError once the limit is exceeded. A limit of zero or less
// disables the middleware.
func RateLimit(counter cache.Counter, limit int, opts ...RateLimitOption) internal.Middleware {
	cfg := &RateLimitConfig{
		Window:  DefaultRateLimitWindow,
		Prefix:  "ratelimit:",
		Message: "Too many requests",
		KeyFunc: func(c internal.Context) string { return c.ClientIP() },
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if limit <= 0 || counter == nil {
		return func(next internal.HandlerFunc) internal.HandlerFunc { return next }
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			key := cfg.KeyFunc(c)
			if key == "" {
				return next(c)
			}

			hits, err := counter.Incr(c, cfg.Prefix+key, cfg.Window)
			if err != nil {
				if cfg.FailOpen {
					c.LogWarn("rate limit store unavailable", "error", err)
					return next(c)
				}
				return internal.ErrInternal("Server error", internal.WithError(err))
			}

			remaining := max(int64(limit)-hits, 0)
			c.SetHeader("X-RateLimit-Limit", strconv.Itoa(limit))
			c.SetHeader("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if hits > int64(limit) {
				c.SetHeader("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
				c.LogWarn("rate limit exceeded", "key", key, "hits", hits)
				return internal.ErrTooManyRequests(cfg.Message)
			}

			return next(c)
		}
	}
}
