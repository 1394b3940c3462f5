package fetch

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
)

func TestFeedFetch(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	win := domain.NewWindow(now)
	recent := now.Add(-12 * time.Hour).Format(time.RFC1123Z)
	ancient := now.AddDate(0, 0, -40).Format(time.RFC1123Z)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, `<?xml version="1.0"?>
<rss version="2.0"><channel>
<title>Funding News</title>
<item>
  <title>Acme raises &lt;b&gt;$5M&lt;/b&gt; seed</title>
  <link>https://techsite.example/acme-seed</link>
  <description>&lt;p&gt;Acme raised a seed round to build an mvp.&lt;/p&gt;</description>
  <pubDate>%s</pubDate>
</item>
<item>
  <title>Old news</title>
  <link>https://techsite.example/old</link>
  <description>stale</description>
  <pubDate>%s</pubDate>
</item>
</channel></rss>`, recent, ancient)
	}))
	defer srv.Close()

	f := NewFeed(srv.URL+"/feed", win, nil)

	res, err := f.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	it := res.Items[0]
	assert.Equal(t, "Acme raises $5M seed", it.Title)
	assert.Equal(t, "Acme raised a seed round to build an mvp.", it.Body)
	assert.Equal(t, "https://techsite.example/acme-seed", it.URL)
	assert.True(t, win.Within(it.CreatedAt))
}

func TestFeedFetchBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not a feed")
	}))
	defer srv.Close()

	f := NewFeed(srv.URL, domain.NewWindow(time.Now()), nil)
	_, err := f.Fetch(context.Background())
	assert.Error(t, err)
}
