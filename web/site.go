// Package web assembles the Duck Works site: pages, SEO files, static assets
// and the contact API on top of a duckworks.App.
package web

import (
	"log/slog"
	"time"

	"github.com/goduckworks/duckworks"
	"github.com/goduckworks/duckworks/contact"
	"github.com/goduckworks/duckworks/middlewares"
	"github.com/goduckworks/duckworks/pkg/cache"
	"github.com/goduckworks/duckworks/pkg/health"
	"github.com/goduckworks/duckworks/pkg/logger"
	"github.com/goduckworks/duckworks/web/content"
	"github.com/goduckworks/duckworks/web/handlers"
	"github.com/goduckworks/duckworks/web/static"
	"github.com/goduckworks/duckworks/web/views"
)

// Config is everything the site needs at startup.
type Config struct {
	Site    views.Site
	Content *content.Content
	Contact *contact.Service

	// Counter backs the contact rate limit; RateLimit 0 disables it.
	Counter    cache.Counter
	RateLimit  int
	RateWindow time.Duration

	// Pages caches rendered documents such as the sitemap.
	Pages cache.Cache[[]byte]

	Logger *slog.Logger
	Checks health.Checks
}

// New builds the site. Extra options are applied last.
func New(cfg Config, opts ...duckworks.Option) *duckworks.App {
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNope()
	}
	if cfg.Content == nil {
		cfg.Content = content.MustLoad()
	}
	if cfg.Pages == nil {
		cfg.Pages = cache.NewMemory[[]byte]()
	}

	healthOpts := make([]duckworks.HealthOption, 0, len(cfg.Checks))
	for name, fn := range cfg.Checks {
		healthOpts = append(healthOpts, duckworks.WithReadinessCheck(name, fn))
	}

	limit := middlewares.RateLimit(cfg.Counter, cfg.RateLimit,
		middlewares.WithRateLimitWindow(cfg.RateWindow),
		middlewares.WithRateLimitPrefix("contact:"),
		middlewares.WithRateLimitMessage(handlers.MsgTooManyRequests),
	)

	base := []duckworks.Option{
		duckworks.WithLogger(cfg.Logger),
		duckworks.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
		),
		duckworks.WithErrorHandler(handlers.ErrorHandler(cfg.Site)),
		duckworks.WithNotFoundHandler(handlers.NotFound),
		duckworks.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		duckworks.WithStaticFiles("/static/", static.FS, "."),
		duckworks.WithHealthChecks(healthOpts...),
		duckworks.WithHandlers(
			handlers.NewPages(cfg.Site, cfg.Content),
			handlers.NewSEO(cfg.Site.BaseURL, cfg.Content, cfg.Pages),
			handlers.NewContactAPI(cfg.Contact, limit),
		),
	}
	return duckworks.New(append(base, opts...)...)
}
