package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/goduckworks/duckworks"
	"github.com/goduckworks/duckworks/config"
	"github.com/goduckworks/duckworks/contact"
	"github.com/goduckworks/duckworks/middlewares"
	"github.com/goduckworks/duckworks/pkg/cache"
	"github.com/goduckworks/duckworks/pkg/health"
	"github.com/goduckworks/duckworks/pkg/logger"
	"github.com/goduckworks/duckworks/pkg/mailer/resend"
	"github.com/goduckworks/duckworks/pkg/redis"
	"github.com/goduckworks/duckworks/web"
	"github.com/goduckworks/duckworks/web/content"
	"github.com/goduckworks/duckworks/web/views"
)

const sentryFlushTimeout = 2 * time.Second

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the website",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Address = addr
			}
			log := logger.New(cfg.Logger(), middlewares.RequestIDExtractor())

			app, runOpts, err := buildSite(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			runOpts = append(runOpts,
				duckworks.WithContext(cmd.Context()),
				duckworks.OnReady(func(a net.Addr) {
					log.Info("duckworks listening", slog.String("addr", a.String()), slog.String("base_url", cfg.BaseURL))
				}),
			)
			return app.Run(cfg.Address, runOpts...)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides ADDRESS)")
	return cmd
}

// buildSite wires the site from cfg. The returned run options close what
// was opened here.
func buildSite(ctx context.Context, cfg config.Config, log *slog.Logger) (*duckworks.App, []duckworks.RunOption, error) {
	cnt, err := content.Load()
	if err != nil {
		return nil, nil, err
	}

	svc := contact.NewService(
		contact.NewMailer(resend.New(cfg.Resend()), cfg.Mailer),
		cfg.Contact(),
		contact.WithLogger(log),
	)
	if err := svc.Check(); err != nil {
		log.Warn("contact form will reject submissions", slog.Any("error", err))
	}

	pages := cache.NewMemory[[]byte]()
	checks := health.Checks{}
	opts := []duckworks.RunOption{
		duckworks.Logger(log),
		duckworks.ShutdownTimeout(cfg.ShutdownTimeout),
		duckworks.ShutdownHook(func(context.Context) error { return pages.Close() }),
		duckworks.ShutdownHook(func(context.Context) error {
			sentry.Flush(sentryFlushTimeout)
			return nil
		}),
	}

	var counter cache.Counter
	switch {
	case cfg.RedisURL != "":
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("rate limit store: %w", err)
		}
		counter = cache.NewRedisCounter(client, cache.WithPrefix("duckworks:"))
		checks["redis"] = redis.Healthcheck(client)
		opts = append(opts, duckworks.ShutdownHook(redis.Shutdown(client)))
	case cfg.ContactRateLimit > 0:
		mc := cache.NewMemoryCounter()
		counter = mc
		opts = append(opts, duckworks.ShutdownHook(func(context.Context) error { return mc.Close() }))
	}

	app := web.New(web.Config{
		Site:       views.DefaultSite(cfg.BaseURL, cfg.BusinessPhone, cfg.BusinessEmail),
		Content:    cnt,
		Contact:    svc,
		Counter:    counter,
		RateLimit:  cfg.ContactRateLimit,
		RateWindow: cfg.ContactRateWindow,
		Pages:      pages,
		Logger:     log,
		Checks:     checks,
	})
	return app, opts, nil
}
