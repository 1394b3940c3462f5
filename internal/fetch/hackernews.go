package fetch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"context"

	"leadradar-engine/internal/domain"
)

const hnDefaultBaseURL = "https://hn.algolia.com/api/v1/search_by_date"

// HackerNews queries the Algolia search API for recent stories matching an
// OR-combination of the configured keyword phrases, time-bounded by the run
// window and paginated up to MaxPages.
type HackerNews struct {
	Keywords []string
	MaxPages int
	Window   domain.Window
	BaseURL  string // test override
	Limiter  *HostLimiter

	hc *http.Client
}

func NewHackerNews(keywords []string, maxPages int, win domain.Window, limiter *HostLimiter) *HackerNews {
	if maxPages <= 0 {
		maxPages = 3
	}
	return &HackerNews{
		Keywords: keywords,
		MaxPages: maxPages,
		Window:   win,
		BaseURL:  hnDefaultBaseURL,
		Limiter:  limiter,
		hc:       newHTTPClient(),
	}
}

func (h *HackerNews) Name() string { return "hackernews" }

type hnHit struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	CreatedAt   string `json:"created_at"`
	Points      int    `json:"points"`
	NumComments int    `json:"num_comments"`
	ObjectID    string `json:"objectID"`
}

type hnPage struct {
	Hits []hnHit `json:"hits"`
}

func (h *HackerNews) Fetch(ctx context.Context) (Result, error) {
	res := Result{Source: "Hacker News"}

	quoted := make([]string, 0, len(h.Keywords))
	for _, k := range h.Keywords {
		k = strings.TrimSpace(k)
		if k != "" {
			quoted = append(quoted, `"`+k+`"`)
		}
	}
	query := strings.Join(quoted, " OR ")

	for page := 0; page < h.MaxPages; page++ {
		if h.Limiter != nil {
			if err := h.Limiter.WaitURL(ctx, h.BaseURL); err != nil {
				return res, err
			}
		}

		params := url.Values{}
		params.Set("query", query)
		params.Set("tags", "story")
		params.Set("numericFilters", fmt.Sprintf("created_at_i>%d", h.Window.Earliest.Unix()))
		params.Set("hitsPerPage", "100")
		params.Set("page", fmt.Sprint(page))

		req, err := newRequest(ctx, h.BaseURL+"?"+params.Encode())
		if err != nil {
			return res, err
		}
		resp, err := h.hc.Do(req)
		if err != nil {
			return res, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			break
		}

		var data hnPage
		err = json.NewDecoder(resp.Body).Decode(&data)
		resp.Body.Close()
		if err != nil {
			return res, fmt.Errorf("hn decode page %d: %w", page, err)
		}
		if len(data.Hits) == 0 {
			break
		}

		for _, hit := range data.Hits {
			created := parseTime(hit.CreatedAt)
			if !h.Window.Within(created) {
				continue
			}
			link := hit.URL
			if link == "" {
				link = "https://news.ycombinator.com/item?id=" + hit.ObjectID
			}
			res.Items = append(res.Items, domain.RawItem{
				Source:    res.Source,
				Title:     hit.Title,
				URL:       link,
				Author:    hit.Author,
				CreatedAt: created,
				Points:    hit.Points,
				Comments:  hit.NumComments,
			})
		}
	}

	return res, nil
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
