// Package enrich upgrades classified Client leads with contact data scraped
// from their guessed company site, then rescores them. Every page fetch is
// best-effort: a failure contributes nothing and is never retried.
package enrich

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"leadradar-engine/internal/domain"
	"leadradar-engine/internal/extract"
	"leadradar-engine/internal/fetch"
	"leadradar-engine/internal/rank"
)

// Guessed contact-page suffixes, tried in order. "" is the site root, which
// also supplies the page title and meta description.
var contactPaths = []string{"", "/contact", "/contact-us", "/about", "/team", "/careers", "/company"}

type SiteEnricher struct {
	Limiter *fetch.HostLimiter

	hc *http.Client
}

func NewSiteEnricher(limiter *fetch.HostLimiter) *SiteEnricher {
	return &SiteEnricher{
		Limiter: limiter,
		hc:      &http.Client{Timeout: 12 * time.Second},
	}
}

// Enrich crawls the lead's guessed site for contacts, unions them with the
// inline-extracted sets and recomputes the score with the post-enrichment
// weights. With no site guess the contact sets stay inline-only.
func (e *SiteEnricher) Enrich(ctx context.Context, win domain.Window, lead *domain.ClientLead) {
	var foundEmails, foundPhones []string

	if site := lead.CompanyWebsite; site != "" {
		base := strings.TrimRight(site, "/")
		for i, suffix := range contactPaths {
			doc := e.fetchDoc(ctx, base+suffix)
			if doc == nil {
				continue
			}
			if i == 0 {
				lead.SiteTitle = fetch.CleanText(doc.Find("title").First().Text())
				if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
					lead.SiteDescription = fetch.CleanText(desc)
				}
			}

			doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
				href, _ := a.Attr("href")
				low := strings.ToLower(href)
				switch {
				case strings.HasPrefix(low, "mailto:"):
					foundEmails = appendUnique(foundEmails, href[len("mailto:"):])
				case strings.HasPrefix(low, "tel:"):
					foundPhones = appendUnique(foundPhones, href[len("tel:"):])
				}
			})

			text := visibleText(doc)
			for _, em := range extract.Emails(text) {
				foundEmails = appendUnique(foundEmails, em)
			}
			for _, ph := range extract.Phones(text) {
				foundPhones = appendUnique(foundPhones, ph)
			}

			if len(foundEmails) >= extract.MaxContacts && len(foundPhones) >= extract.MaxContacts {
				break
			}
		}
	}

	finalize(win, lead, foundEmails, foundPhones)
}

// EnrichOffline settles a client lead without any crawling: contacts stay
// inline-only and the post-enrichment weights still apply.
func (e *SiteEnricher) EnrichOffline(win domain.Window, lead *domain.ClientLead) {
	finalize(win, lead, nil, nil)
}

func finalize(win domain.Window, lead *domain.ClientLead, foundEmails, foundPhones []string) {
	lead.Emails = extract.MergeContacts(lead.EmailsInline, foundEmails)
	lead.Phones = extract.MergeContacts(lead.PhonesInline, foundPhones)

	lead.Score = rank.Score(win, rank.Signals{
		Text:      lead.Text(),
		CreatedAt: lead.CreatedAt,
		Points:    lead.Points,
		Comments:  lead.Comments,
		HasEmail:  len(lead.Emails) > 0,
		HasPhone:  len(lead.Phones) > 0,
	}, rank.PostEnrich)
}

func (e *SiteEnricher) fetchDoc(ctx context.Context, pageURL string) *goquery.Document {
	if e.Limiter != nil {
		if err := e.Limiter.WaitURL(ctx, pageURL); err != nil {
			return nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", fetch.UserAgent)

	resp, err := e.hc.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("[enrich] parse err url=%s err=%v", pageURL, err)
		return nil
	}
	return doc
}

// visibleText flattens a page with script/style content excluded.
func visibleText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()
	return fetch.CleanText(doc.Text())
}

func appendUnique(list []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return list
	}
	for _, have := range list {
		if strings.EqualFold(have, v) {
			return list
		}
	}
	return append(list, v)
}
