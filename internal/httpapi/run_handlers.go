package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"leadradar-engine/internal/config"
	"leadradar-engine/internal/events"
)

type RunHandler struct {
	CfgVal       *atomic.Value // config.Config
	RunStatus    *atomic.Value // httpapi.RunStatus
	Latest       *atomic.Value // *httpapi.Results
	Hub          *events.Hub
	RunDiscovery func(ctx context.Context, cfg config.Config) (*Results, error)
}

func (h RunHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.RunStatus.Load().(RunStatus)
	writeJSON(w, st)
}

func (h RunHandler) Run(w http.ResponseWriter, r *http.Request) {
	st := h.RunStatus.Load().(RunStatus)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	h.RunStatus.Store(RunStatus{
		LastRunAt:  time.Now().Format(time.RFC3339),
		Running:    true,
		LastError:  "",
		LastTotals: Totals{},
		LastOkAt:   st.LastOkAt,
	})

	go func() {
		cfg := h.CfgVal.Load().(config.Config)
		res, err := h.RunDiscovery(context.Background(), cfg)

		now := time.Now().Format(time.RFC3339)
		next := h.RunStatus.Load().(RunStatus)
		next.Running = false
		next.LastRunAt = now
		if err != nil {
			next.LastError = err.Error()
		} else {
			next.LastError = ""
			next.LastOkAt = now
			next.LastTotals = Totals{Clients: len(res.Clients), Candidates: len(res.Candidates)}
			h.Latest.Store(res)
		}
		h.RunStatus.Store(next)
	}()

	writeJSON(w, map[string]any{"ok": true})
}
