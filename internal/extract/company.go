package extract

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Platform, social and aggregator hosts that never count as a lead's own
// company site.
var domainDenylist = []string{
	"reddit.com",
	"news.ycombinator.com",
	"github.com",
	"medium.com",
	"twitter.com",
	"linkedin.com",
	"remoteok.com",
	"techcrunch.com",
}

// RegistrableDomain returns the eTLD+1 of a URL's host ("https://www.acme.io/x"
// -> "acme.io"), or "" when none can be derived.
func RegistrableDomain(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return d
}

func deniedDomain(d string) bool {
	for _, b := range domainDenylist {
		if d == b || strings.HasSuffix(d, "."+b) {
			return true
		}
	}
	return false
}

// CompanyFromURLs guesses a company from the first URL whose registrable
// domain is not a known platform. Name guess is the domain's leftmost label,
// title-cased.
func CompanyFromURLs(urls []string) (name, website, domain string) {
	for _, u := range urls {
		d := RegistrableDomain(u)
		if d == "" || deniedDomain(d) {
			continue
		}
		base := d[:strings.Index(d, ".")]
		return titleCase(base), "https://" + d, d
	}
	return "", "", ""
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
