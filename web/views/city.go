package views

import (
	"context"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/goduckworks/duckworks/web/content"
)

var cityServices = []string{
	"Seamless aluminum gutters (5”/6” K-style)",
	"Gutter guards & oversized downspouts",
	"Repairs, tune-ups & resealing",
	"Drainage & French drains",
}

// City is a local landing page.
func City(site Site, c content.City) templ.Component {
	body := component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="container section"><h1>Seamless Gutters in `)
		h.text(c.City + ", " + c.State)
		h.raw(`</h1><p class="lead">`)
		h.text(c.Intro)
		h.raw(`</p>`)
		if len(c.Neighborhoods) > 0 {
			list(h, "chips", c.Neighborhoods)
		}

		h.raw(`<section class="grid-2 section"><div class="card"><h2>Services in `)
		h.text(c.City)
		h.raw(`</h2>`)
		list(h, "bullets", cityServices)
		h.raw(`</div><div class="card"><h2>Local Considerations</h2><p>Landmarks: `)
		landmarks := strings.Join(c.Landmarks, ", ")
		if landmarks == "" {
			landmarks = "—"
		}
		h.text(landmarks)
		h.raw(`. Seasonal sizing and layouts tailored to local rainfall and roof pitch norms.</p></div></section>`)

		if t := c.Testimonial; t != nil {
			h.raw(`<blockquote class="card testimonial"><p>“`)
			h.text(t.Quote)
			h.raw(`”</p><footer>`)
			h.text(t.Author)
			h.raw(`</footer></blockquote>`)
		}

		if len(c.FAQs) > 0 {
			h.raw(`<section class="section"><h2>FAQs for `)
			h.text(c.City)
			h.raw(`</h2><div class="stack">`)
			for _, f := range c.FAQs {
				h.raw(`<details class="card"><summary>`)
				h.text(f.Question)
				h.raw(`</summary><p>`)
				h.text(f.Answer)
				h.raw(`</p></details>`)
			}
			h.raw(`</div></section>`)
		}

		h.raw(`<section class="section"><iframe class="map" loading="lazy" title="Map of `)
		h.text(c.City)
		h.raw(`" src="`)
		h.text("https://www.google.com/maps?q=" + url.QueryEscape(c.City+" "+c.State) + "&output=embed")
		h.raw(`"></iframe></section></div>`)
	})
	return Layout(site, Page{
		Title:       "Seamless Gutters in " + c.City + ", " + c.State,
		Description: c.Intro,
		Path:        "/" + c.Slug,
	}, body)
}
