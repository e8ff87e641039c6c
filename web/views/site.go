package views

import (
	"strings"
	"unicode"
)

// Site is the business information shown on every page.
type Site struct {
	Name        string
	Tagline     string
	Description string
	Phone       string
	Email       string
	BaseURL     string
}

// DefaultSite returns the Duck Works details with the given contact info.
func DefaultSite(baseURL, phone, email string) Site {
	return Site{
		Name:        "Duck Works",
		Tagline:     "Aqua Management Solutions",
		Description: "Seamless gutters, gutter guards, repairs, and drainage solutions. Free on-site estimates. Licensed & insured.",
		Phone:       phone,
		Email:       email,
		BaseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// TelURL is a tel: link for the business phone. Ten-digit numbers get the
// +1 country code.
func (s Site) TelURL() string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s.Phone)
	if len(digits) == 10 {
		digits = "1" + digits
	}
	return "tel:+" + digits
}

// MailtoURL is a mailto: link for the business email.
func (s Site) MailtoURL() string {
	return "mailto:" + s.Email
}

// Page is the per-page head metadata.
type Page struct {
	Title       string
	Description string
	Path        string
}

func (s Site) title(p Page) string {
	if p.Title == "" {
		return s.Name + " — " + s.Tagline
	}
	return p.Title + " | " + s.Name
}
