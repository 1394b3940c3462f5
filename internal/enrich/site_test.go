package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadradar-engine/internal/domain"
	"leadradar-engine/internal/fetch"
	"leadradar-engine/internal/rank"
)

func newClientLead(site string, createdAt *time.Time) *domain.ClientLead {
	return &domain.ClientLead{Lead: domain.Lead{
		RawItem: domain.RawItem{
			Title:     "Looking for developer",
			Body:      "we raised funding, contact sales@acme.io",
			CreatedAt: createdAt,
		},
		Label:          domain.LabelClient,
		CompanyWebsite: site,
		EmailsInline:   []string{"sales@acme.io"},
	}}
}

func TestEnrichCrawlsContactPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			fmt.Fprint(w, `<html><head>
				<title> Acme | Build faster </title>
				<meta name="description" content="Acme builds fintech tooling.">
			</head><body>
				<script>var hidden = "nope@hidden.io";</script>
				<a href="mailto:hello@acme.io">email us</a>
			</body></html>`)
		case "/contact":
			fmt.Fprint(w, `<html><body>
				<a href="tel:+14155552671">call</a>
				<p>or write founders@acme.io</p>
			</body></html>`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	created := now.Add(-3 * time.Hour)
	lead := newClientLead(srv.URL, &created)

	e := NewSiteEnricher(fetch.NewHostLimiter(100, 100))
	e.Enrich(context.Background(), domain.NewWindow(now), lead)

	assert.Equal(t, "Acme | Build faster", lead.SiteTitle)
	assert.Equal(t, "Acme builds fintech tooling.", lead.SiteDescription)

	// inline first, crawled after
	require.NotEmpty(t, lead.Emails)
	assert.Equal(t, "sales@acme.io", lead.Emails[0])
	assert.Contains(t, lead.Emails, "hello@acme.io")
	assert.Contains(t, lead.Emails, "founders@acme.io")
	assert.NotContains(t, lead.Emails, "nope@hidden.io")
	assert.Contains(t, lead.Phones, "+14155552671")
	assert.Greater(t, lead.Score, 0.0)
}

func TestEnrichOfflineStillRescores(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	created := now.Add(-3 * time.Hour)
	lead := newClientLead("", &created)

	e := NewSiteEnricher(nil)
	e.EnrichOffline(domain.NewWindow(now), lead)

	assert.Equal(t, []string{"sales@acme.io"}, lead.Emails)
	assert.Empty(t, lead.Phones)

	want := rank.Score(domain.NewWindow(now), rank.Signals{
		Text:      lead.Text(),
		CreatedAt: lead.CreatedAt,
		HasEmail:  true,
	}, rank.PostEnrich)
	assert.Equal(t, want, lead.Score)
}

func TestEnrichDeadSiteKeepsInlineContacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	created := now.Add(-3 * time.Hour)
	lead := newClientLead(srv.URL, &created)

	e := NewSiteEnricher(fetch.NewHostLimiter(100, 100))
	e.Enrich(context.Background(), domain.NewWindow(now), lead)

	assert.Equal(t, []string{"sales@acme.io"}, lead.Emails)
	assert.Empty(t, lead.Phones)
}
