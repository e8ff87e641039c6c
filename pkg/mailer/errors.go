package mailer

import "errors"

var (
	ErrNoRecipient        = errors.New("mailer: email must have at least one recipient")
	ErrNoSubject          = errors.New("mailer: email must have a subject")
	ErrNoContent          = errors.New("mailer: email must have HTML content")
	ErrTemplateNotFound   = errors.New("mailer: template not found")
	ErrLayoutNotFound     = errors.New("mailer: layout not found")
	ErrRenderFailed       = errors.New("mailer: failed to render template")
	ErrSendFailed         = errors.New("mailer: failed to send email")
	ErrInvalidFrontmatter = errors.New("mailer: invalid frontmatter")
)

// SendError wraps a provider failure. It matches ErrSendFailed.
type SendError struct {
	Err error
}

func (e *SendError) Error() string { return ErrSendFailed.Error() + ": " + e.Err.Error() }

// Reason returns the provider's own message.
func (e *SendError) Reason() string { return e.Err.Error() }

func (e *SendError) Unwrap() []error { return []error{ErrSendFailed, e.Err} }
