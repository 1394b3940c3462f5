package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"

	"leadradar-engine/internal/domain"
)

const redditDefaultBaseURL = "https://www.reddit.com"

// Reddit fetches the newest listing of one subreddit. Titles and bodies are
// entity-encoded on the wire and get decoded here; each item is tagged with
// its community name so the classifier can apply posting conventions.
type Reddit struct {
	Subreddit string
	Limit     int
	Window    domain.Window
	BaseURL   string // test override
	Limiter   *HostLimiter

	hc *http.Client
}

func NewReddit(subreddit string, limit int, win domain.Window, limiter *HostLimiter) *Reddit {
	if limit <= 0 {
		limit = 120
	}
	return &Reddit{
		Subreddit: subreddit,
		Limit:     limit,
		Window:    win,
		BaseURL:   redditDefaultBaseURL,
		Limiter:   limiter,
		hc:        newHTTPClient(),
	}
}

func (r *Reddit) Name() string { return "reddit:" + r.Subreddit }

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title       string  `json:"title"`
				Selftext    string  `json:"selftext"`
				CreatedUTC  float64 `json:"created_utc"`
				Permalink   string  `json:"permalink"`
				Author      string  `json:"author"`
				Score       int     `json:"score"`
				NumComments int     `json:"num_comments"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (r *Reddit) Fetch(ctx context.Context) (Result, error) {
	res := Result{Source: "Reddit r/" + r.Subreddit}

	u := fmt.Sprintf("%s/r/%s/new.json?limit=%d", r.BaseURL, r.Subreddit, r.Limit)
	if r.Limiter != nil {
		if err := r.Limiter.WaitURL(ctx, u); err != nil {
			return res, err
		}
	}

	req, err := newRequest(ctx, u)
	if err != nil {
		return res, err
	}
	resp, err := r.hc.Do(req)
	if err != nil {
		return res, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("reddit r/%s status %d", r.Subreddit, resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return res, fmt.Errorf("reddit r/%s decode: %w", r.Subreddit, err)
	}

	for _, child := range listing.Data.Children {
		d := child.Data
		created := unixTime(d.CreatedUTC)
		if !r.Window.Within(created) {
			continue
		}
		res.Items = append(res.Items, domain.RawItem{
			Source:    res.Source,
			Title:     html.UnescapeString(d.Title),
			Body:      html.UnescapeString(d.Selftext),
			URL:       "https://www.reddit.com" + d.Permalink,
			Author:    d.Author,
			CreatedAt: created,
			Points:    d.Score,
			Comments:  d.NumComments,
			Channel:   r.Subreddit,
		})
	}

	return res, nil
}

func unixTime(ts float64) *time.Time {
	if ts <= 0 {
		return nil
	}
	t := time.Unix(int64(ts), 0).UTC()
	return &t
}
