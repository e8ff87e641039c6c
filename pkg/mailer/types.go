package mailer

import (
	"context"
	"fmt"
)

// Sender delivers a fully prepared email and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, email *Email) (string, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) (string, error)

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, email *Email) (string, error) {
	return f(ctx, email)
}

// Email is a message ready for delivery.
type Email struct {
	Headers map[string]string
	Tags    map[string]string
	Subject string
	HTML    string
	Text    string
	From    string // empty uses the provider default
	ReplyTo string
	To      []string
	CC      []string
	BCC     []string
}

// Recipient formats an RFC 5322 address: "Name <email>", or just the email
// when name is empty.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
