// Package resend implements mailer.Sender on top of the Resend API.
package resend

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v3"

	"github.com/goduckworks/duckworks/pkg/mailer"
)

// EntityRefHeader stops inbox clients from threading unrelated notifications.
const EntityRefHeader = "X-Entity-Ref-ID"

// Sender delivers mailer.Email through Resend.
type Sender struct {
	client *resend.Client
	config Config
}

var _ mailer.Sender = (*Sender)(nil)

// Option configures a Sender.
type Option func(*Sender)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(u *url.URL) Option {
	return func(s *Sender) {
		if u != nil {
			s.client.BaseURL = u
		}
	}
}

// New creates a Resend sender.
func New(cfg Config, opts ...Option) *Sender {
	s := &Sender{client: resend.NewClient(cfg.APIKey), config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements mailer.Sender. It returns the Resend message id.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	headers := make(map[string]string, len(email.Headers)+1)
	for k, v := range email.Headers {
		headers[k] = v
	}
	if _, ok := headers[EntityRefHeader]; !ok {
		headers[EntityRefHeader] = uuid.NewString()
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: headers,
	}
	for name, value := range email.Tags {
		req.Tags = append(req.Tags, resend.Tag{Name: name, Value: value})
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Id, nil
}
