package contact

import (
	"errors"

	"github.com/goduckworks/duckworks/pkg/mailer"
)

var (
	ErrMissingFields    = errors.New("contact: missing required fields")
	ErrMissingAPIKey    = errors.New("contact: RESEND_API_KEY missing")
	ErrMissingRecipient = errors.New("contact: EMAIL_TO missing")
	ErrSubmitInFlight   = errors.New("contact: submission already in progress")
	ErrSubmitFailed     = errors.New("contact: submission failed")
)

// IsConfigError reports whether err is caused by missing server configuration.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingAPIKey) || errors.Is(err, ErrMissingRecipient)
}

// DeliveryError is returned when the email provider rejects the message.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return "contact: delivery failed: " + e.Err.Error() }

func (e *DeliveryError) Unwrap() error { return e.Err }

// Reason is the provider's own message, suitable for the API response.
func (e *DeliveryError) Reason() string {
	var se *mailer.SendError
	if errors.As(e.Err, &se) {
		return se.Reason()
	}
	return e.Err.Error()
}

// AsDeliveryError returns the *DeliveryError in err's chain, or nil.
func AsDeliveryError(err error) *DeliveryError {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de
	}
	return nil
}
