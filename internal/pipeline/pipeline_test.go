package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadradar-engine/internal/config"
	"leadradar-engine/internal/domain"
	"leadradar-engine/internal/enrich"
	"leadradar-engine/internal/fetch"
)

type stubFetcher struct {
	name  string
	items []domain.RawItem
	err   error
}

func (s stubFetcher) Name() string { return s.name }

func (s stubFetcher) Fetch(context.Context) (fetch.Result, error) {
	return fetch.Result{Source: s.name, Items: s.items}, s.err
}

func testPipeline(cfg config.Config, win domain.Window, fetchers ...fetch.Fetcher) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		win:      win,
		fetchers: fetchers,
		site:     enrich.NewSiteEnricher(fetch.NewHostLimiter(100, 100)),
		provider: enrich.ProviderByName(""),
	}
}

func TestRunClassifiesEnrichesAndRanks(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	win := domain.NewWindow(now)
	recent := now.Add(-6 * time.Hour)

	items := []domain.RawItem{
		{
			Source:    "Hacker News",
			Title:     "Looking for developer to build our mvp",
			Body:      "We raised a seed round. Reach us at founders@acme.io, site https://acme.io",
			URL:       "https://news.ycombinator.com/item?id=1",
			Author:    "founder",
			CreatedAt: &recent,
			Points:    40,
			Comments:  12,
		},
		{
			Source:    "Reddit r/forhire",
			Title:     "[For Hire] React and Node developer, 5 years",
			Body:      "available now, portfolio https://github.com/dev1",
			URL:       "https://reddit.com/r/forhire/1",
			Author:    "dev1",
			CreatedAt: &recent,
			Channel:   "forhire",
		},
		{
			Source:    "Hacker News",
			Title:     "Show HN: my weekend raytracer",
			Body:      "just a toy",
			URL:       "https://news.ycombinator.com/item?id=2",
			CreatedAt: &recent,
		},
	}

	var cfg config.Config
	cfg.Enrichment.Sites = false

	p := testPipeline(cfg, win, stubFetcher{name: "stub", items: items})
	clients, candidates, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, clients, 1)
	c := clients[0]
	assert.Equal(t, domain.LabelClient, c.Label)
	assert.Equal(t, "Acme", c.CompanyName)
	assert.Equal(t, "acme.io", c.CompanyDomain)
	assert.Equal(t, "funding", c.Trigger)
	assert.Contains(t, c.Emails, "founders@acme.io")
	assert.Greater(t, c.Score, 0.0)
	assert.LessOrEqual(t, c.Score, 1.0)

	require.Len(t, candidates, 1)
	d := candidates[0]
	assert.Equal(t, domain.LabelCandidate, d.Label)
	assert.Contains(t, d.Skills, "react")
	assert.Contains(t, d.Skills, "node")
	require.NotNil(t, d.YearsExperience)
	assert.Equal(t, 5, *d.YearsExperience)
	assert.Equal(t, domain.AvailImmediate, d.Availability)
	assert.Equal(t, []string{"https://github.com/dev1"}, d.Portfolios)
}

func TestRunSurvivesFailingSource(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	win := domain.NewWindow(now)
	recent := now.Add(-time.Hour)

	good := stubFetcher{name: "good", items: []domain.RawItem{{
		Source:    "Reddit r/forhire",
		Title:     "[For Hire] Python developer",
		Body:      "open to work",
		URL:       "https://reddit.com/r/forhire/2",
		Author:    "dev2",
		CreatedAt: &recent,
		Channel:   "forhire",
	}}}
	bad := stubFetcher{name: "bad", err: context.DeadlineExceeded}

	var cfg config.Config
	cfg.Enrichment.Sites = false

	p := testPipeline(cfg, win, good, bad)
	clients, candidates, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clients)
	assert.Len(t, candidates, 1)
}

func TestRunEmptySources(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var cfg config.Config
	p := testPipeline(cfg, domain.NewWindow(now))

	clients, candidates, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clients)
	assert.Empty(t, candidates)
}

func TestRunOrdersByScoreDescending(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	win := domain.NewWindow(now)
	fresh := now.Add(-time.Hour)
	stale := now.AddDate(0, 0, -25)

	items := []domain.RawItem{
		{
			Source:    "Hacker News",
			Title:     "Need app developer, no rush",
			Body:      "small mvp, see https://slowco.dev",
			URL:       "https://news.ycombinator.com/item?id=3",
			CreatedAt: &stale,
		},
		{
			Source:    "Hacker News",
			Title:     "Looking for developer urgently",
			Body:      "we raised funding for our mvp https://fastco.dev hello@fastco.dev",
			URL:       "https://news.ycombinator.com/item?id=4",
			CreatedAt: &fresh,
			Points:    80,
			Comments:  30,
		},
	}

	var cfg config.Config
	cfg.Enrichment.Sites = false

	p := testPipeline(cfg, win, stubFetcher{name: "stub", items: items})
	clients, _, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, clients, 2)
	assert.Equal(t, "fastco.dev", clients[0].CompanyDomain)
	assert.GreaterOrEqual(t, clients[0].Score, clients[1].Score)
}
