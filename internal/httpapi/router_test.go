package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadradar-engine/internal/config"
	"leadradar-engine/internal/domain"
	"leadradar-engine/internal/events"
)

func testDeps(t *testing.T, run func(context.Context, config.Config) (*Results, error)) Deps {
	t.Helper()

	var cfgVal atomic.Value
	cfgVal.Store(config.Config{})
	var status atomic.Value
	status.Store(RunStatus{})
	var latest atomic.Value
	latest.Store((*Results)(nil))

	return Deps{
		Hub:       events.NewHub(),
		CfgVal:    &cfgVal,
		RunStatus: &status,
		Latest:    &latest,
		LoadCfg:   func() (config.Config, error) { return config.Config{}, nil },

		RunDiscovery: run,
	}
}

func TestHealth(t *testing.T) {
	mux := NewMux(testDeps(t, nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewMux(testDeps(t, nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestResultsBeforeAnyRun(t *testing.T) {
	mux := NewMux(testDeps(t, nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunLifecycle(t *testing.T) {
	res := &Results{
		Clients:    []domain.ClientLead{{Lead: domain.Lead{CompanyName: "Acme"}}},
		FinishedAt: time.Now().UTC(),
	}
	deps := testDeps(t, func(context.Context, config.Config) (*Results, error) {
		return res, nil
	})
	mux := NewMux(deps)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/run", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)

	require.Eventually(t, func() bool {
		st := deps.RunStatus.Load().(RunStatus)
		return !st.Running && st.LastOkAt != ""
	}, 2*time.Second, 10*time.Millisecond)

	st := deps.RunStatus.Load().(RunStatus)
	assert.Empty(t, st.LastError)
	assert.Equal(t, 1, st.LastTotals.Clients)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got Results
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "Acme", got.Clients[0].CompanyName)
}

func TestRunRejectedWhileRunning(t *testing.T) {
	block := make(chan struct{})
	deps := testDeps(t, func(context.Context, config.Config) (*Results, error) {
		<-block
		return &Results{}, nil
	})
	mux := NewMux(deps)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/run", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/run", nil))
	assert.Contains(t, rec.Body.String(), "already running")

	close(block)
}

func TestConfigPutRejectsBadJSON(t *testing.T) {
	mux := NewMux(testDeps(t, nil))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(`{"nope":`))
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfigGet(t *testing.T) {
	mux := NewMux(testDeps(t, nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
