package fetch

import (
	"html"
	"regexp"
	"strings"
)

var reTags = regexp.MustCompile(`(?is)<[^>]+>`)

// CleanText collapses whitespace and non-breaking spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// HTMLToText strips markup and decodes entities; good enough for feed
// titles/summaries, which are the only HTML we flatten this way.
func HTMLToText(s string) string {
	s = reTags.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
