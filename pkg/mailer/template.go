package mailer

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelim = "---"

// Template is a parsed template file: frontmatter metadata and markdown body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// ParseTemplate splits content into YAML frontmatter and body.
// Content without a leading "---" line has no metadata.
func ParseTemplate(content []byte) (*Template, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	rest, ok := bytes.CutPrefix(content, []byte(frontmatterDelim+"\n"))
	if !ok {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	var front, body []byte
	if after, found := bytes.CutPrefix(rest, []byte(frontmatterDelim)); found {
		front, body = nil, after
	} else {
		var found bool
		front, body, found = bytes.Cut(rest, []byte("\n"+frontmatterDelim))
		if !found {
			return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
		}
	}

	meta := map[string]any{}
	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{
		Metadata: meta,
		Body:     strings.TrimPrefix(string(body), "\n"),
	}, nil
}

// EscapeMarkdown makes s safe to embed in a markdown document: every ASCII
// punctuation character is backslash-escaped and leading indentation is
// dropped so that no line turns into a code block. Line breaks are kept.
func EscapeMarkdown(s string) string {
	lines := strings.Split(s, "\n")
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range strings.TrimLeft(strings.TrimRight(line, "\r"), " \t") {
			if r < 0x80 && isASCIIPunct(byte(r)) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}
