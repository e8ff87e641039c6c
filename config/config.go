// Package config loads the site configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/goduckworks/duckworks/contact"
	"github.com/goduckworks/duckworks/pkg/logger"
	"github.com/goduckworks/duckworks/pkg/mailer"
	"github.com/goduckworks/duckworks/pkg/mailer/resend"
)

// Config is the full runtime configuration.
type Config struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	BaseURL         string        `env:"BASE_URL" envDefault:"https://www.goduckworks.com"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string `env:"LOG_FORMAT" envDefault:"json"`
	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`

	// Delivery settings have no defaults so that their presence can be
	// reported; fallbacks are applied by the contact service.
	ResendAPIKey  string   `env:"RESEND_API_KEY"`
	EmailTo       string   `env:"EMAIL_TO"`
	EmailFrom     string   `env:"EMAIL_FROM"`
	EmailFromName string   `env:"EMAIL_FROM_NAME"`
	EmailBCC      []string `env:"EMAIL_BCC" envSeparator:","`

	Mailer mailer.Config

	RedisURL          string        `env:"REDIS_URL"`
	ContactRateLimit  int           `env:"CONTACT_RATE_LIMIT" envDefault:"0"`
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"10m"`

	BusinessPhone string `env:"BUSINESS_PHONE" envDefault:"(469) 431-4515"`
	BusinessEmail string `env:"BUSINESS_EMAIL" envDefault:"help@goduckworks.com"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from vars instead of the environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.ContactRateLimit < 0 {
		return Config{}, fmt.Errorf("config: CONTACT_RATE_LIMIT must not be negative")
	}
	return cfg, nil
}

// Logger returns the logger settings.
func (c Config) Logger() logger.Config {
	return logger.Config{
		Level:             c.LogLevel,
		Format:            c.LogFormat,
		SentryDSN:         c.SentryDSN,
		SentryEnvironment: c.SentryEnvironment,
	}
}

// Contact returns the delivery settings for the contact service.
func (c Config) Contact() contact.Config {
	return contact.Config{
		APIKey:   c.ResendAPIKey,
		To:       c.EmailTo,
		From:     c.EmailFrom,
		FromName: c.EmailFromName,
		BCC:      c.EmailBCC,
	}
}

// Resend returns the Resend client settings with sender fallbacks applied.
func (c Config) Resend() resend.Config {
	cfg := resend.Config{
		APIKey:      strings.TrimSpace(c.ResendAPIKey),
		SenderEmail: strings.TrimSpace(c.EmailFrom),
		SenderName:  strings.TrimSpace(c.EmailFromName),
	}
	if cfg.SenderEmail == "" {
		cfg.SenderEmail = contact.DefaultFrom
	}
	if cfg.SenderName == "" {
		cfg.SenderName = contact.DefaultFromName
	}
	return cfg
}
