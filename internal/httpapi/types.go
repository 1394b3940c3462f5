package httpapi

import (
	"time"

	"leadradar-engine/internal/domain"
)

// RunStatus is the serve-mode view of the discovery loop, stored in an
// atomic.Value so handlers never race a running pipeline.
type RunStatus struct {
	LastRunAt  string `json:"last_run_at"`
	LastOkAt   string `json:"last_ok_at"`
	LastError  string `json:"last_error"`
	LastTotals Totals `json:"last_totals"`
	Running    bool   `json:"running"`
}

type Totals struct {
	Clients    int `json:"clients"`
	Candidates int `json:"candidates"`
}

// Results is the latest completed run, kept whole so /results and the CSV
// endpoints always serve a consistent pair of lists.
type Results struct {
	Clients    []domain.ClientLead    `json:"clients"`
	Candidates []domain.CandidateLead `json:"candidates"`
	FinishedAt time.Time              `json:"finished_at"`
}
