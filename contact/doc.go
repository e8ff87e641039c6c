// Package contact turns a quote-request form post into one notification email.
//
// A Submission is normalized (trimmed, stripped of markup, capped) and
// checked for the required name, email and message before anything leaves
// the process. Service.Submit then verifies its own configuration and makes
// exactly one delivery attempt through a mailer.Mailer:
//
//	m := contact.NewMailer(resend.New(resendCfg), mailer.Config{})
//	svc := contact.NewService(m, contact.Config{
//	    APIKey: os.Getenv("RESEND_API_KEY"),
//	    To:     "office@example.com",
//	})
//	id, err := svc.Submit(ctx, sub)
//
// Errors fall into three groups: ErrMissingFields for bad input,
// ErrMissingAPIKey and ErrMissingRecipient for configuration, and
// *DeliveryError when the provider rejects the message.
//
// Form is the client half: it posts a submission as JSON and tracks the
// idle, sending, sent and error states the contact page shows.
package contact
