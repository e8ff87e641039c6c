package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	policiesOnce sync.Once
)

func policies() {
	policiesOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements("p", "br", "strong", "b", "em", "i", "ul", "ol", "li")
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// StripHTML removes all markup and returns plain text. Entities are decoded,
// and the result is stripped again until no markup remains, so encoded tags
// cannot survive a single pass.
func StripHTML(s string) string {
	policies()
	for range 3 {
		out := html.UnescapeString(strictPolicy.Sanitize(s))
		if out == s || !strings.ContainsRune(out, '<') {
			return out
		}
		s = out
	}
	return strictPolicy.Sanitize(s)
}

// SanitizeHTML keeps basic formatting (paragraphs, emphasis, lists, links with
// rel=nofollow) and drops everything else.
func SanitizeHTML(s string) string {
	policies()
	return safePolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies policy; a nil policy returns s unchanged.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
