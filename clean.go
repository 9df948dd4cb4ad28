package webextract

import (
	"regexp"
	"strings"
)

var (
	// editorialMarkerRe matches bracketed editorial markers left behind by
	// wiki-style markup: "[edit]", "[citation needed]", "[note 3]", "[1]".
	editorialMarkerRe = regexp.MustCompile(`(?i)\[(?:edit|citation needed|note\s*\d+|\d+)\]`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanText normalizes an extracted string: bracketed editorial markers are
// stripped, runs of whitespace collapse to single spaces, and the result is
// trimmed. CleanText is idempotent and never lengthens its input.
func CleanText(s string) string {
	s = editorialMarkerRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
