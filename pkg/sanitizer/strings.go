package sanitizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Truncate cuts s to at most n runes. n <= 0 returns s unchanged.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Title converts s to title case ("gutter guards" -> "Gutter Guards").
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// SingleLine replaces line breaks and tabs with spaces and collapses runs of
// whitespace.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
