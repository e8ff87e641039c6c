// Package mailer renders notification emails and hands them to a delivery
// provider.
//
// A [Renderer] turns a markdown template with YAML frontmatter into an HTML
// document wrapped in a layout. A [Sender] delivers a prepared [Email] and
// reports the provider's message id. [Mailer] combines the two:
//
//	m := mailer.New(resend.New(cfg), mailer.NewRenderer(templates.FS), mailer.Config{
//	    DefaultLayout: "base.html",
//	})
//	id, err := m.Send(ctx, mailer.SendParams{
//	    To:       []string{"office@example.com"},
//	    Template: "quote_request.md",
//	    Data:     data,
//	})
//
// Templates are executed with text/template, so values inserted into markdown
// must be passed through the "md" template function (see [EscapeMarkdown]);
// otherwise user input could inject markup. Subjects in frontmatter are
// templates too:
//
//	---
//	Subject: New Quote Request from {{.Name}}
//	---
//	**Name:** {{md .Name}}
package mailer
