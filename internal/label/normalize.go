package label

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	wordStartRe  = regexp.MustCompile(`\b\w`)
)

// NormalizeWhitespace collapses all whitespace runs to single spaces and
// trims the result. Page text arrives with arbitrary line breaks between
// text items; fingerprinting and phrase checks need a flat form.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// TitleCase lowercases the input and uppercases the first letter of every
// word. "RAHUL KUMAR" and "rahul kumar" both become "Rahul Kumar".
func TitleCase(s string) string {
	return wordStartRe.ReplaceAllStringFunc(strings.ToLower(s), strings.ToUpper)
}

// splitLines returns the non-empty, trimmed lines of a block span.
func splitLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
