// Package requests defines the shapes bound from incoming requests.
package requests

import "github.com/goduckworks/duckworks/contact"

// ContactRequest is the body posted by the contact form, as JSON or form data.
// Values are kept as typed; markup is escaped when the notification renders.
type ContactRequest struct {
	Name    string `form:"name"    sanitize:"single_line,trim,trunc:2000" validate:"required"`
	Email   string `form:"email"   sanitize:"single_line,trim,trunc:2000" validate:"required"`
	Phone   string `form:"phone"   sanitize:"single_line,trim,trunc:2000"`
	Address string `form:"address" sanitize:"single_line,trim,trunc:2000"`
	Service string `form:"service" sanitize:"single_line,trim,trunc:2000"`
	Message string `form:"message" sanitize:"trim,trunc:8000"             validate:"required"`

	// Gotcha is the honeypot. Any non-empty value, whitespace included, marks
	// the post as spam, so it is never sanitized.
	Gotcha string `form:"_gotcha"`
}

// Submission converts the request into the domain record.
func (r ContactRequest) Submission() contact.Submission {
	return contact.Submission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Service: contact.ParseServiceType(r.Service),
		Message: r.Message,
	}
}
