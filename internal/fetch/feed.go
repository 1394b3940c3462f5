package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"leadradar-engine/internal/domain"
	"leadradar-engine/internal/extract"
)

// Feed fetches one RSS/Atom feed. Markup in titles and summaries is
// flattened to plain text before anything downstream sees it.
type Feed struct {
	URL     string
	Window  domain.Window
	Limiter *HostLimiter

	hc *http.Client
}

func NewFeed(feedURL string, win domain.Window, limiter *HostLimiter) *Feed {
	return &Feed{
		URL:     feedURL,
		Window:  win,
		Limiter: limiter,
		hc:      newHTTPClient(),
	}
}

func (f *Feed) Name() string { return "rss:" + f.URL }

func (f *Feed) Fetch(ctx context.Context) (Result, error) {
	source := "RSS feed"
	if d := extract.RegistrableDomain(f.URL); d != "" {
		source = "RSS " + d
	}
	res := Result{Source: source}

	if f.Limiter != nil {
		if err := f.Limiter.WaitURL(ctx, f.URL); err != nil {
			return res, err
		}
	}

	req, err := newRequest(ctx, f.URL)
	if err != nil {
		return res, err
	}
	resp, err := f.hc.Do(req)
	if err != nil {
		return res, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("feed %s status %d", f.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return res, err
	}

	parsed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return res, fmt.Errorf("feed %s parse: %w", f.URL, err)
	}

	for _, entry := range parsed.Items {
		created := entryTime(entry)
		if !f.Window.Within(created) {
			continue
		}
		author := ""
		if entry.Author != nil {
			author = entry.Author.Name
		}
		res.Items = append(res.Items, domain.RawItem{
			Source:    source,
			Title:     HTMLToText(entry.Title),
			Body:      HTMLToText(entry.Description),
			URL:       entry.Link,
			Author:    author,
			CreatedAt: created,
		})
	}

	return res, nil
}

func entryTime(entry *gofeed.Item) *time.Time {
	for _, t := range []*time.Time{entry.PublishedParsed, entry.UpdatedParsed} {
		if t != nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}
