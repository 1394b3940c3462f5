package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/imap", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetIMAPPassword,
	}))

	// Discovery runs
	rh := RunHandler{
		CfgVal:       d.CfgVal,
		RunStatus:    d.RunStatus,
		Latest:       d.Latest,
		Hub:          d.Hub,
		RunDiscovery: d.RunDiscovery,
	}
	mux.HandleFunc("/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))
	mux.HandleFunc("/run/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Status,
	}))

	// Results of the latest run
	resh := ResultsHandler{Latest: d.Latest}
	mux.HandleFunc("/results", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: resh.Get,
	}))
	mux.HandleFunc("/results/markdown", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: resh.Markdown,
	}))
	mux.HandleFunc("/results/clients.csv", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: resh.ClientsCSV,
	}))
	mux.HandleFunc("/results/candidates.csv", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: resh.CandidatesCSV,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
