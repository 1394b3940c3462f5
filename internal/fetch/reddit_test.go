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

func TestRedditFetch(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	win := domain.NewWindow(now)
	recent := now.Add(-48 * time.Hour).Unix()
	ancient := now.AddDate(0, 0, -45).Unix()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/forhire/new.json", r.URL.Path)
		assert.Equal(t, "120", r.URL.Query().Get("limit"))

		fmt.Fprintf(w, `{"data":{"children":[
			{"data":{"title":"[For Hire] React &amp; Node dev","selftext":"5 years, available now","created_utc":%d,"permalink":"/r/forhire/comments/abc/","author":"dev1","score":4,"num_comments":1}},
			{"data":{"title":"Ancient post","selftext":"","created_utc":%d,"permalink":"/r/forhire/comments/old/","author":"dev2"}}
		]}}`, recent, ancient)
	}))
	defer srv.Close()

	r := NewReddit("forhire", 0, win, nil)
	r.BaseURL = srv.URL

	res, err := r.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Reddit r/forhire", res.Source)
	require.Len(t, res.Items, 1)

	it := res.Items[0]
	assert.Equal(t, "[For Hire] React & Node dev", it.Title)
	assert.Equal(t, "https://www.reddit.com/r/forhire/comments/abc/", it.URL)
	assert.Equal(t, "forhire", it.Channel)
	assert.Equal(t, "dev1", it.Author)
	assert.True(t, win.Within(it.CreatedAt))
}

func TestRedditFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	r := NewReddit("forhire", 50, domain.NewWindow(time.Now()), nil)
	r.BaseURL = srv.URL

	res, err := r.Fetch(context.Background())
	assert.Error(t, err)
	assert.Empty(t, res.Items)
}

func TestRedditMissingTimestampExcluded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"children":[
			{"data":{"title":"no timestamp","selftext":"","created_utc":0,"permalink":"/r/forhire/comments/x/","author":"z"}}
		]}}`)
	}))
	defer srv.Close()

	r := NewReddit("forhire", 50, domain.NewWindow(time.Now()), nil)
	r.BaseURL = srv.URL

	res, err := r.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}
