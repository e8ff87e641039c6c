package contact

import (
	"embed"
	"io/fs"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goduckworks/duckworks/pkg/mailer"
	"github.com/goduckworks/duckworks/pkg/sanitizer"
)

// TemplateName is the notification template inside Templates.
const TemplateName = "quote_request.md"

// bodyPolicy limits notification bodies to the elements markdown produces.
var bodyPolicy = bluemonday.UGCPolicy()

//go:embed templates
var templates embed.FS

// Templates returns the embedded email templates.
func Templates() fs.FS {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewMailer builds a mailer that renders the embedded templates.
func NewMailer(sender mailer.Sender, cfg mailer.Config) *mailer.Mailer {
	if cfg.DefaultLayout == "" {
		cfg.DefaultLayout = "base.html"
	}
	if cfg.FallbackSubject == "" {
		cfg.FallbackSubject = "New Quote Request"
	}
	renderer := mailer.NewRenderer(Templates(), mailer.WithHTMLFilter(func(s string) string {
		return sanitizer.SanitizeHTMLCustom(s, bodyPolicy)
	}))
	return mailer.New(sender, renderer, cfg)
}
