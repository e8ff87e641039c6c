package views

import (
	"context"
	"strconv"
	"time"

	"github.com/a-h/templ"
)

// Layout wraps body in the document shell: head, sticky header with
// navigation and the footer.
func Layout(site Site, page Page, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		desc := page.Description
		if desc == "" {
			desc = site.Description
		}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(site.title(page))
		h.raw(`</title><meta name="description" content="`)
		h.text(desc)
		h.raw(`"><link rel="canonical" href="`)
		h.text(site.BaseURL + page.Path)
		h.raw(`"><link rel="stylesheet" href="/static/site.css"></head>`)

		h.raw(`<body><header class="site-header"><div class="container header-row">`)
		h.raw(`<a href="/" class="brand"><span class="brand-name">🦆 `)
		h.text(site.Name)
		h.raw(`</span> <span class="brand-tagline">`)
		h.text(site.Tagline)
		h.raw(`</span></a><nav class="site-nav">`)
		h.raw(`<a href="/services">Services</a><a href="/about">About</a><a href="/contact">Contact</a>`)
		h.raw(`<a class="btn btn-primary" href="`)
		h.text(site.TelURL())
		h.raw(`">Call Now</a></nav></div></header>`)

		h.raw("<main>")
		h.render(ctx, body)
		h.raw("</main>")

		h.raw(`<footer class="site-footer"><div class="container footer-row"><div><strong>`)
		h.text(site.Name)
		h.raw(`</strong> <span class="muted">`)
		h.text(site.Tagline)
		h.raw(`</span></div><div class="muted">&copy; `)
		h.raw(strconv.Itoa(time.Now().Year()))
		h.raw(" ")
		h.text(site.Name)
		h.raw(". All rights reserved.</div></div></footer></body></html>")
	})
}
