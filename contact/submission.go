package contact

import (
	"fmt"
	"strings"

	"github.com/goduckworks/duckworks/pkg/sanitizer"
)

const (
	MaxFieldLen   = 2000
	MaxMessageLen = 8000
)

// ServiceType is the kind of work a visitor asks about.
type ServiceType string

const (
	ServiceInstall  ServiceType = "Install"
	ServiceGuards   ServiceType = "Guards"
	ServiceRepair   ServiceType = "Repair"
	ServiceCleaning ServiceType = "Cleaning"
	ServiceDrainage ServiceType = "Drainage"
	ServiceOther    ServiceType = "Other"
)

// ServiceTypes lists the form's options in display order.
var ServiceTypes = []ServiceType{
	ServiceInstall, ServiceGuards, ServiceRepair, ServiceCleaning, ServiceDrainage, ServiceOther,
}

// ParseServiceType maps s to a known service, ignoring case.
// Empty input means Install; anything unrecognised is Other.
func ParseServiceType(s string) ServiceType {
	s = strings.TrimSpace(s)
	if s == "" {
		return ServiceInstall
	}
	for _, st := range ServiceTypes {
		if strings.EqualFold(s, string(st)) {
			return st
		}
	}
	return ServiceOther
}

// Submission is one quote request.
type Submission struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone,omitempty"`
	Address string      `json:"address,omitempty"`
	Service ServiceType `json:"service,omitempty"`
	Message string      `json:"message"`
}

// Normalize trims every field, caps its length and folds the service to a
// known value. Single-value fields lose their line breaks. Markup is kept
// verbatim. It is idempotent.
func (s Submission) Normalize() Submission {
	line := func(v string, n int) string {
		return sanitizer.Truncate(strings.TrimSpace(sanitizer.SingleLine(v)), n)
	}
	msg := strings.ReplaceAll(s.Message, "\r\n", "\n")
	return Submission{
		Name:    line(s.Name, MaxFieldLen),
		Email:   line(s.Email, MaxFieldLen),
		Phone:   line(s.Phone, MaxFieldLen),
		Address: line(s.Address, MaxFieldLen),
		Service: ParseServiceType(line(string(s.Service), MaxFieldLen)),
		Message: strings.TrimSpace(sanitizer.Truncate(strings.TrimSpace(msg), MaxMessageLen)),
	}
}

// Validate checks the required fields. The email address is not parsed.
func (s Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" ||
		strings.TrimSpace(s.Email) == "" ||
		strings.TrimSpace(s.Message) == "" {
		return ErrMissingFields
	}
	return nil
}

// PlainText is the text/plain body of the notification.
func (s Submission) PlainText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	fmt.Fprintf(&b, "Phone: %s\n", s.Phone)
	fmt.Fprintf(&b, "Address: %s\n", s.Address)
	fmt.Fprintf(&b, "Service: %s\n\n", s.Service)
	b.WriteString(s.Message)
	return b.String()
}
