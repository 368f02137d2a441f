// Package transform renders file content as a numbered, upper-cased listing
// framed by a fixed header and footer. Everything here is pure.
package transform

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Header = "MODIFIED FILE CONTENT"
	Footer = "End of modified content"

	// PreviewLimit is the number of characters shown before transforming.
	PreviewLimit = 200
)

var separator = strings.Repeat("=", 40)

// Transform numbers every newline-separated line of content and upper-cases it
// with full Unicode case mapping, so "ß" becomes "SS".
// An empty content yields a single empty numbered line.
func Transform(content string) string {
	lines := strings.Split(content, "\n")
	// Casers are stateful.
	upper := cases.Upper(language.Und)

	out := make([]string, 0, len(lines)+6)
	out = append(out, Header, separator, "")
	for i, line := range lines {
		out = append(out, fmt.Sprintf("%3d. %s", i+1, upper.String(line)))
	}
	out = append(out, "", separator, Footer)

	return strings.Join(out, "\n")
}

// LineCount returns how many numbered lines a Transform result holds.
func LineCount(result string) int {
	n := strings.Count(result, "\n") + 1
	// header block (3) and footer block (3)
	return n - 6
}

// Preview returns the first limit characters of content, marked with "..."
// when content is longer.
func Preview(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}
