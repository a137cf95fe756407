package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace collapses whitespace and caps the length so
// multi-line SQL stays readable as a span attribute.
func formatDBQueryForTrace(query string) string {
	q := queryWhitespaceRegex.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(q) > maxTracedQueryLength {
		return q[:maxTracedQueryLength] + "..."
	}
	return q
}
