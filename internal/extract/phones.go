package extract

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	reTelLink  = regexp.MustCompile(`(?i)tel:\+?[0-9()\-\s]{7,20}`)
	reDigitish = regexp.MustCompile(`\+?[0-9][0-9()\-\s]{6,20}[0-9]`)
)

// phoneRegions are the country codes a digit-rich substring is tried against,
// in order. First region that yields a possible AND valid number wins.
var phoneRegions = []string{
	"US", "IN", "GB", "CA", "AU", "SG", "DE", "NL", "FR", "ES", "SE", "NO", "DK", "IE", "AE",
}

// Phones scans tel: link text plus digit-rich substrings, accepting only
// numbers that validate for some likely region. Validated matches come back
// in international format, deduplicated, capped at MaxContacts. False
// negatives are expected; the validity check suppresses false positives.
func Phones(text string) []string {
	if text == "" {
		return nil
	}

	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] || len(out) >= MaxContacts {
			return
		}
		seen[p] = true
		out = append(out, p)
	}

	for _, m := range reTelLink.FindAllString(text, -1) {
		add(m[strings.Index(m, ":")+1:])
	}

	for _, m := range reDigitish.FindAllString(text, -1) {
		for _, region := range phoneRegions {
			num, err := phonenumbers.Parse(m, region)
			if err != nil {
				continue
			}
			if phonenumbers.IsPossibleNumber(num) && phonenumbers.IsValidNumber(num) {
				add(phonenumbers.Format(num, phonenumbers.INTERNATIONAL))
				break
			}
		}
	}

	return out
}
