// Package extract pulls contact and company signals out of free text.
// Everything here is a pure function over strings; matching is best-effort
// and intentionally permissive.
package extract

import (
	"regexp"
	"strings"
)

// MaxContacts caps every email/phone collection to keep output readable.
const MaxContacts = 5

var (
	reURL   = regexp.MustCompile(`https?://[^\s)]+`)
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// URLs returns http(s) tokens in order of appearance. Duplicates are kept;
// the dedupe stage owns identity, not the extractor.
func URLs(text string) []string {
	if text == "" {
		return nil
	}
	return reURL.FindAllString(text, -1)
}

// Emails returns lowercased addresses, deduplicated, capped at MaxContacts.
func Emails(text string) []string {
	if text == "" {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, m := range reEmail.FindAllString(text, -1) {
		e := strings.ToLower(m)
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
		if len(out) >= MaxContacts {
			break
		}
	}
	return out
}

// MergeContacts unions two contact lists first-list-first, case-insensitively
// deduplicated, capped at MaxContacts.
func MergeContacts(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, list := range [][]string{a, b} {
		for _, v := range list {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			k := strings.ToLower(v)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, v)
			if len(out) >= MaxContacts {
				return out
			}
		}
	}
	return out
}
