// Package pipeline wires the whole run: concurrent source fetch, per-item
// classification + extraction + scoring, concurrent client enrichment,
// candidate profiling, dedup and ranking. Fetch and enrichment are the only
// stages that touch the network; everything between runs synchronously over
// the gathered in-memory list.
package pipeline

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"leadradar-engine/internal/classify"
	"leadradar-engine/internal/config"
	"leadradar-engine/internal/domain"
	"leadradar-engine/internal/enrich"
	"leadradar-engine/internal/events"
	"leadradar-engine/internal/extract"
	"leadradar-engine/internal/fetch"
	"leadradar-engine/internal/profile"
	"leadradar-engine/internal/rank"
	"leadradar-engine/internal/secrets"
)

const fetcherTimeout = 60 * time.Second

type Pipeline struct {
	cfg      config.Config
	win      domain.Window
	fetchers []fetch.Fetcher
	site     *enrich.SiteEnricher
	provider enrich.Provider
	hub      *events.Hub
}

// New builds a pipeline from config. The hub may be nil (one-shot CLI runs).
func New(cfg config.Config, win domain.Window, hub *events.Hub) *Pipeline {
	limiter := fetch.NewHostLimiter(2.0, 4)

	var fetchers []fetch.Fetcher

	if cfg.Sources.HackerNews.Enabled {
		kws := append(append([]string{}, cfg.Keywords.Client...), cfg.Keywords.Candidate...)
		fetchers = append(fetchers, fetch.NewHackerNews(kws, cfg.Sources.HackerNews.MaxPages, win, limiter))
	}
	if cfg.Sources.Reddit.Enabled {
		for _, sub := range cfg.Sources.Reddit.Subreddits {
			fetchers = append(fetchers, fetch.NewReddit(sub, cfg.Sources.Reddit.Limit, win, limiter))
		}
	}
	if cfg.Sources.RSS.Enabled {
		for _, feedURL := range cfg.Sources.RSS.Feeds {
			fetchers = append(fetchers, fetch.NewFeed(feedURL, win, limiter))
		}
	}
	if cfg.Sources.Email.Enabled {
		pw, err := secrets.GetIMAPPassword(secrets.IMAPAccount(cfg))
		if err != nil {
			log.Printf("[email] source enabled but no password in keyring: %v", err)
		} else {
			fetchers = append(fetchers, &fetch.Email{
				Host:       cfg.Sources.Email.IMAPHost,
				Port:       cfg.Sources.Email.IMAPPort,
				Username:   cfg.Sources.Email.Username,
				Password:   pw,
				Mailbox:    cfg.Sources.Email.Mailbox,
				SubjectAny: cfg.Sources.Email.SubjectAny,
				Window:     win,
			})
		}
	}

	return &Pipeline{
		cfg:      cfg,
		win:      win,
		fetchers: fetchers,
		site:     enrich.NewSiteEnricher(limiter),
		provider: enrich.ProviderByName(cfg.Enrichment.Provider),
		hub:      hub,
	}
}

// Fetchers exposes the built source list (serve-mode status reporting).
func (p *Pipeline) Fetchers() []fetch.Fetcher { return p.fetchers }

// Run executes one full discovery pass and returns the two ranked lists.
// The worst case across total source failure is two empty lists, not an
// error: err is reserved for context cancellation.
func (p *Pipeline) Run(ctx context.Context) (clients []domain.ClientLead, candidates []domain.CandidateLead, err error) {
	p.hub.Publish(events.Make(events.TypeRunStarted, map[string]any{"sources": len(p.fetchers)}))

	items := p.fetchAll(ctx)

	for _, it := range items {
		label, ok := classify.Classify(it.Title, it.Body, it.Channel)
		if !ok {
			label, ok = classify.MatchKeywords(it.Text(), p.cfg.Keywords.Client, p.cfg.Keywords.Candidate)
		}
		if !ok {
			continue
		}

		lead := p.buildLead(it, label)
		switch label {
		case domain.LabelClient:
			clients = append(clients, domain.ClientLead{Lead: lead})
		case domain.LabelCandidate:
			candidates = append(candidates, domain.CandidateLead{Lead: lead})
		}
	}

	if err := p.enrichClients(ctx, clients); err != nil {
		return nil, nil, err
	}

	for i := range candidates {
		profile.Profile(&candidates[i])
	}

	clients = dedupeClients(clients)
	candidates = dedupeCandidates(candidates)

	rank.SortClients(clients)
	rank.SortCandidates(candidates)

	p.hub.Publish(events.Make(events.TypeRunFinished, map[string]any{
		"clients":    len(clients),
		"candidates": len(candidates),
	}))
	return clients, candidates, nil
}

// fetchAll fans the fetchers out and gathers whatever arrived. Each task
// writes only its own Result; the coordinator merges after completion, so no
// lead record is ever shared between tasks.
func (p *Pipeline) fetchAll(ctx context.Context) []domain.RawItem {
	var g errgroup.Group
	results := make(chan fetch.Result, len(p.fetchers))

	for _, f := range p.fetchers {
		f := f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, fetcherTimeout)
			defer cancel()

			res, err := f.Fetch(fctx)
			if err != nil {
				log.Printf("[%s] fetch error: %v", f.Name(), err)
				// best-effort: a dead source must not cancel siblings
			}
			if len(res.Items) > 0 {
				results <- res
			}
			p.hub.Publish(events.Make(events.TypeSourceDone, map[string]any{
				"source": f.Name(),
				"items":  len(res.Items),
			}))
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	var items []domain.RawItem
	for res := range results {
		log.Printf("[pipeline] source=%s items=%d", res.Source, len(res.Items))
		items = append(items, res.Items...)
	}
	return items
}

// buildLead derives every signal field exactly once and applies the
// pre-enrichment score.
func (p *Pipeline) buildLead(it domain.RawItem, label domain.Label) domain.Lead {
	text := it.Text()
	urls := extract.URLs(text + " " + it.URL)
	name, site, dom := extract.CompanyFromURLs(urls)

	lead := domain.Lead{
		RawItem:        it,
		Label:          label,
		URLs:           urls,
		CompanyName:    name,
		CompanyWebsite: site,
		CompanyDomain:  dom,
		Trigger:        extract.Trigger(text),
		Industry:       extract.Industry(text),
		EmailsInline:   extract.Emails(it.Body),
		PhonesInline:   extract.Phones(it.Body),
	}

	lead.Score = rank.Score(p.win, rank.Signals{
		Text:      text,
		CreatedAt: it.CreatedAt,
		Points:    it.Points,
		Comments:  it.Comments,
		HasEmail:  len(lead.EmailsInline) > 0,
		HasPhone:  len(lead.PhonesInline) > 0,
	}, rank.PreEnrich)

	return lead
}

// enrichClients runs the site crawler over client leads in its own bounded
// pool. Every task owns exactly one lead; the provider (if any) runs after
// the free site pass.
func (p *Pipeline) enrichClients(ctx context.Context, clients []domain.ClientLead) error {
	if len(clients) == 0 {
		return nil
	}

	var g errgroup.Group
	g.SetLimit(p.cfg.EnrichWorkers())

	for i := range clients {
		lead := &clients[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if p.cfg.Enrichment.Sites {
				p.site.Enrich(ctx, p.win, lead)
			} else {
				p.site.EnrichOffline(p.win, lead)
			}
			if err := p.provider.Enrich(ctx, lead); err != nil {
				log.Printf("[enrich:%s] provider err company=%q err=%v", p.provider.Name(), lead.CompanyName, err)
			}
			return nil
		})
	}
	return g.Wait()
}
