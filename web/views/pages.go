package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/goduckworks/duckworks/web/content"
)

var badges = []string{"Licensed & Insured", "24/7 Response", "Warranty on All Installs"}

// Home is the landing page.
func Home(site Site, services []content.Service) templ.Component {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="container section"><section class="hero"><div>`)
		h.raw(`<h1>Keep Water Moving. Keep Homes Dry.</h1>`)
		h.raw(`<p class="lead">Seamless gutters, gutter guards, repairs, and drainage solutions that protect your home year-round. `)
		h.raw(`Licensed &amp; insured. Free on-site estimates. 24/7 response.</p>`)
		h.raw(`<div class="actions"><a class="btn btn-primary" href="/contact">Get a Free Estimate</a>`)
		h.raw(`<a class="btn" href="`)
		h.text(site.TelURL())
		h.raw(`">Call Now</a></div>`)
		list(h, "badges", badges)
		h.raw(`</div><div class="hero-mark" aria-hidden="true">🦆</div></section>`)

		h.raw(`<section class="section"><h2>Our Services</h2>`)
		h.raw(`<p>Expert installation, durable materials, and honest service. We keep water flowing the right way.</p>`)
		h.raw(`<div class="cards">`)
		for _, s := range services {
			h.raw(`<div class="card"><h3>`)
			h.text(s.Title)
			h.raw(`</h3><p>`)
			h.text(s.Summary)
			h.raw(`</p></div>`)
		}
		h.raw(`</div><p><a class="link" href="/services">See all services →</a></p></section>`)

		h.render(ctx, callToAction(site))
		h.raw(`</div>`)
	})
	return Layout(site, Page{Path: "/"}, body)
}

func callToAction(site Site) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="card cta"><div><h3>Ready to protect your home?</h3>`)
		h.raw(`<p>Free on-site estimates. No pressure, just honest advice.</p></div>`)
		h.raw(`<div class="actions"><a class="btn btn-primary" href="/contact">Get My Free Quote</a>`)
		h.raw(`<a class="btn" href="`)
		h.text(site.TelURL())
		h.raw(`">Call</a></div></section>`)
	})
}

// Services lists the full service catalogue.
func Services(site Site, services []content.Service) templ.Component {
	body := component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="container section"><h1>Gutter Services Built for Texas Homes</h1>`)
		h.raw(`<p class="lead">Whether you need brand-new seamless gutters, a quick repair, or a drainage upgrade, `)
		h.raw(`Duck Works has you covered.</p><div class="stack">`)
		for _, s := range services {
			h.raw(`<section class="card"><h2>`)
			h.text(s.Title)
			h.raw(`</h2>`)
			list(h, "bullets", s.Details)
			h.raw(`</section>`)
		}
		h.raw(`</div><p class="section"><a class="btn btn-primary" href="/contact">Request a Free On-Site Estimate</a></p></div>`)
	})
	return Layout(site, Page{Title: "Services", Path: "/services"}, body)
}

var promises = []string{
	"Honest estimates and clear communication.",
	"Quality materials sized for real Texas weather.",
	"Workmanship we stand behind with warranties.",
}

// About tells the company story.
func About(site Site) templ.Component {
	body := component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="container narrow section"><h1>Meet `)
		h.text(site.Name + " — " + site.Tagline)
		h.raw(`</h1><p class="lead">`)
		h.text(site.Name)
		h.raw(` was founded with a simple goal: protect Texas homes from water damage with professional gutter systems that last. `)
		h.raw(`We’re fully insured, trained for safety, and committed to clean, respectful service on every job.</p>`)
		h.raw(`<div class="card"><h2>Our Promise</h2>`)
		list(h, "bullets", promises)
		h.raw(`</div></div>`)
	})
	return Layout(site, Page{Title: "About", Path: "/about"}, body)
}

// ErrorPage is shown for HTML requests that fail.
func ErrorPage(site Site, status int, message string) templ.Component {
	body := component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="container narrow section error-page"><h1>`)
		h.text(message)
		h.raw(`</h1><p class="lead">`)
		if status == 404 {
			h.raw(`We couldn’t find that page. `)
		} else {
			h.raw(`Something went wrong on our side. `)
		}
		h.raw(`You can head back <a class="link" href="/">home</a> or call us at <a class="link" href="`)
		h.text(site.TelURL())
		h.raw(`">`)
		h.text(site.Phone)
		h.raw(`</a>.</p></div>`)
	})
	return Layout(site, Page{Title: message}, body)
}
