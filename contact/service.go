package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goduckworks/duckworks/pkg/logger"
	"github.com/goduckworks/duckworks/pkg/mailer"
)

const (
	DefaultFrom     = "notifications@onresend.com"
	DefaultFromName = "Duck Works"
)

// Config is the delivery configuration. Empty From and FromName fall back to
// DefaultFrom and DefaultFromName.
type Config struct {
	APIKey   string
	To       string
	From     string
	FromName string
	BCC      []string
}

// Status reports which settings are present. It never carries their values.
type Status struct {
	APIKey bool `json:"RESEND_API_KEY"`
	To     bool `json:"EMAIL_TO"`
	From   bool `json:"EMAIL_FROM"`
	BCC    bool `json:"EMAIL_BCC"`
}

// Service delivers submissions as notification emails.
type Service struct {
	mailer *mailer.Mailer
	config Config
	logger *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service. cfg is copied with its strings trimmed and
// empty BCC entries dropped.
func NewService(m *mailer.Mailer, cfg Config, opts ...ServiceOption) *Service {
	s := &Service{
		mailer: m,
		config: normalizeConfig(cfg),
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizeConfig(cfg Config) Config {
	out := Config{
		APIKey:   strings.TrimSpace(cfg.APIKey),
		To:       strings.TrimSpace(cfg.To),
		From:     strings.TrimSpace(cfg.From),
		FromName: strings.TrimSpace(cfg.FromName),
	}
	for _, addr := range cfg.BCC {
		if addr = strings.TrimSpace(addr); addr != "" {
			out.BCC = append(out.BCC, addr)
		}
	}
	return out
}

// Status reports which delivery settings are configured.
func (s *Service) Status() Status {
	return Status{
		APIKey: s.config.APIKey != "",
		To:     s.config.To != "",
		From:   s.config.From != "",
		BCC:    len(s.config.BCC) > 0,
	}
}

// Check returns ErrMissingAPIKey or ErrMissingRecipient when delivery cannot
// be attempted.
func (s *Service) Check() error {
	switch {
	case s.config.APIKey == "":
		return ErrMissingAPIKey
	case s.config.To == "":
		return ErrMissingRecipient
	}
	return nil
}

// Sender is the formatted From header.
func (s *Service) Sender() string {
	from, name := s.config.From, s.config.FromName
	if from == "" {
		from = DefaultFrom
	}
	if name == "" {
		name = DefaultFromName
	}
	return mailer.Recipient(name, from)
}

// Submit normalizes and validates sub, then sends one notification and
// returns the provider's message id. Input is validated before the
// configuration so a bad form never reports a server problem.
func (s *Service) Submit(ctx context.Context, sub Submission) (string, error) {
	sub = sub.Normalize()
	if err := sub.Validate(); err != nil {
		return "", err
	}
	if err := s.Check(); err != nil {
		return "", err
	}

	id, err := s.mailer.Send(ctx, mailer.SendParams{
		To:       []string{s.config.To},
		Template: TemplateName,
		Data:     sub,
		Text:     sub.PlainText(),
		From:     s.Sender(),
		ReplyTo:  sub.Email,
		BCC:      s.config.BCC,
		Tags:     map[string]string{"category": "quote_request"},
	})
	if err != nil {
		if errors.Is(err, mailer.ErrSendFailed) {
			s.logger.ErrorContext(ctx, "quote request delivery failed", slog.Any("error", err))
			return "", &DeliveryError{Err: err}
		}
		return "", fmt.Errorf("contact: render notification: %w", err)
	}

	s.logger.InfoContext(ctx, "quote request delivered",
		slog.String("id", id),
		slog.String("service", string(sub.Service)),
	)
	return id, nil
}
