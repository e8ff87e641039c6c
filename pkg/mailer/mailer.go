package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Config holds mailer defaults.
type Config struct {
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Notification"`
	DefaultLayout   string `env:"MAILER_DEFAULT_LAYOUT" envDefault:"base.html"`
}

// Mailer renders templates and sends them through a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{sender: sender, renderer: renderer, config: cfg}
}

// SendParams describes a templated email.
type SendParams struct {
	To       []string
	Template string
	Data     any

	Subject string // overrides the template's Subject
	Text    string // plain-text body; defaults to the executed markdown
	Layout  string
	From    string
	ReplyTo string
	CC      []string
	BCC     []string
	Headers map[string]string
	Tags    map[string]string
}

// Send renders params.Template and delivers it. It returns the provider's
// message id. Subject precedence: params.Subject, template metadata, config.
func (m *Mailer) Send(ctx context.Context, params SendParams) (string, error) {
	if len(params.To) == 0 {
		return "", ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	res, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if s, ok := res.Metadata["Subject"].(string); ok {
			subject = s
		} else {
			subject = m.config.FallbackSubject
		}
	}
	if subject, err = executeSubject(subject, params.Data); err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}

	text := params.Text
	if text == "" {
		text = res.Markdown
	}

	return m.SendRaw(ctx, &Email{
		Headers: params.Headers,
		Tags:    params.Tags,
		Subject: subject,
		HTML:    res.HTML,
		Text:    text,
		From:    params.From,
		ReplyTo: params.ReplyTo,
		To:      params.To,
		CC:      params.CC,
		BCC:     params.BCC,
	})
}

// SendRaw sends a prepared email without rendering.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) (string, error) {
	switch {
	case len(email.To) == 0:
		return "", ErrNoRecipient
	case email.Subject == "":
		return "", ErrNoSubject
	case email.HTML == "":
		return "", ErrNoContent
	}

	id, err := m.sender.Send(ctx, email)
	if err != nil {
		return "", &SendError{Err: err}
	}
	return id, nil
}

func executeSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
