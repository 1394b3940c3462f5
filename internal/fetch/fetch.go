// Package fetch retrieves raw candidate items from each free source,
// normalized to domain.RawItem. A fetcher never aborts the run: network or
// payload failures surface as an error that the pipeline logs and drops.
package fetch

import (
	"context"
	"net/http"
	"time"

	"leadradar-engine/internal/domain"
)

// UserAgent identifies every outbound request.
const UserAgent = "LeadRadar/1.0 (+https://leadradar.local)"

type Result struct {
	Source string
	Items  []domain.RawItem
}

type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (Result, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 20 * time.Second}
}

func newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	return req, nil
}
