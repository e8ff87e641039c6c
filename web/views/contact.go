package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/goduckworks/duckworks/contact"
)

// ContactEndpoint is where the contact form posts.
const ContactEndpoint = "/api/contact"

// Contact is the quote-request page. The form is submitted by
// /static/contact.js as one JSON POST.
func Contact(site Site) templ.Component {
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="container narrow section"><h1>Request Your Free Estimate</h1>`)
		h.raw(`<p class="lead">Tell us about your home and what you need. We’ll reply quickly.</p>`)
		h.render(ctx, ContactForm())
		h.raw(`<p class="section">Prefer to talk? <a class="link" href="`)
		h.text(site.TelURL())
		h.raw(`">Call now</a> or <a class="link" href="`)
		h.text(site.MailtoURL())
		h.raw(`">email us</a>.</p></div>`)
		h.raw(`<script src="/static/contact.js" defer></script>`)
	})
	return Layout(site, Page{Title: "Contact", Path: "/contact"}, body)
}

// ContactForm renders the quote-request form.
func ContactForm() templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<form id="contact-form" class="card form" method="post" action="`)
		h.text(ContactEndpoint)
		h.raw(`" data-contact-form data-sent-message="`)
		h.text(contact.SentMessage)
		h.raw(`" data-error-message="`)
		h.text(contact.ErrorMessage)
		h.raw(`">`)

		h.raw(`<div class="hp" aria-hidden="true"><label>Leave this field empty`)
		h.raw(`<input type="text" name="`)
		h.text(contact.HoneypotField)
		h.raw(`" tabindex="-1" autocomplete="off"></label></div>`)

		h.raw(`<div class="form-grid">`)
		field(h, "Name", `<input name="name" placeholder="Full name" required autocomplete="name">`)
		field(h, "Email", `<input name="email" type="email" placeholder="you@email.com" required autocomplete="email">`)
		field(h, "Phone", `<input name="phone" type="tel" placeholder="(xxx) xxx-xxxx" autocomplete="tel">`)
		h.raw(`<div class="field wide"><label for="message">How can we help?</label>`)
		h.raw(`<textarea id="message" name="message" placeholder="Tell us about the home, issues you’re seeing, timelines, etc." required></textarea></div>`)
		h.raw(`<div class="field wide-2"><label for="address">Service Address</label>`)
		h.raw(`<input id="address" name="address" placeholder="City, ZIP" autocomplete="address-line1"></div>`)
		h.raw(`<div class="field"><label for="service">Service</label><select id="service" name="service">`)
		for _, s := range contact.ServiceTypes {
			h.raw(`<option value="`)
			h.text(string(s))
			h.raw(`"`)
			if s == contact.ServiceInstall {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(string(s))
			h.raw(`</option>`)
		}
		h.raw(`</select></div></div>`)

		h.raw(`<div class="form-actions"><p class="fine-print">By submitting, you agree we may contact you by phone, text, or email about your request.</p>`)
		h.raw(`<button class="btn btn-primary" type="submit" data-idle-label="Send Request" data-sending-label="Sending…">Send Request</button></div>`)
		h.raw(`<p class="form-status" data-status role="status" aria-live="polite" hidden></p>`)
		h.raw(`</form>`)
	})
}

// field writes a labelled input; input must carry name and no id.
func field(h *htmlWriter, label, input string) {
	h.raw(`<div class="field"><label>`)
	h.text(label)
	h.raw(input)
	h.raw(`</label></div>`)
}
