package httpapi

import (
	"net/http"
	"sync/atomic"

	"leadradar-engine/internal/render"
)

type ResultsHandler struct {
	Latest *atomic.Value // *httpapi.Results
}

func (h ResultsHandler) load(w http.ResponseWriter, r *http.Request) (*Results, bool) {
	res, _ := h.Latest.Load().(*Results)
	if res == nil {
		WriteError(w, r, http.StatusNotFound, "no_results", "no completed run yet")
		return nil, false
	}
	return res, true
}

func (h ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, res)
}

func (h ResultsHandler) Markdown(w http.ResponseWriter, r *http.Request) {
	res, ok := h.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(render.Markdown(res.Clients, res.Candidates, 30, 30)))
}

func (h ResultsHandler) ClientsCSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	_ = render.ClientsCSV(w, res.Clients)
}

func (h ResultsHandler) CandidatesCSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	_ = render.CandidatesCSV(w, res.Candidates)
}
