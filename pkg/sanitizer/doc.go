// Package sanitizer cleans untrusted text before it is used.
//
// Strings can be cleaned directly ([StripHTML], [Truncate], [Title]) or by
// struct tag through [SanitizeStruct]:
//
//	type Quote struct {
//	    Name    string `sanitize:"strip_html,trim,trunc:2000"`
//	    Service string `sanitize:"trim,title"`
//	}
//
// Operations run left to right. Supported operations: trim, strip_html,
// html, lower, upper, title, single_line and trunc:N (N counted in runes).
// Only exported string fields are touched; nested structs are walked.
package sanitizer
