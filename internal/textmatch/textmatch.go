// Package textmatch builds the case-insensitive phrase patterns shared by the
// correction dictionary and the note language check.
package textmatch

import (
	"regexp"
	"unicode/utf8"
)

// WholeWord matches phrase case-insensitively without matching inside a
// longer word. A word boundary is required only on a side whose edge is a
// word character, so phrases like "s.o.b." or "(HTN)" still match.
func WholeWord(phrase string) *regexp.Regexp {
	expr := `(?i)`

	first, _ := utf8.DecodeRuneInString(phrase)
	if isWord(first) {
		expr += `\b`
	}

	expr += regexp.QuoteMeta(phrase)

	last, _ := utf8.DecodeLastRuneInString(phrase)
	if isWord(last) {
		expr += `\b`
	}

	return regexp.MustCompile(expr)
}

// isWord mirrors RE2's ASCII \w, which is what \b tests against.
func isWord(r rune) bool {
	return r == '_' ||
		('0' <= r && r <= '9') ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z')
}
