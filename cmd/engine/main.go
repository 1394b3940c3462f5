package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"leadradar-engine/internal/config"
	"leadradar-engine/internal/domain"
	"leadradar-engine/internal/events"
	"leadradar-engine/internal/httpapi"
	"leadradar-engine/internal/pipeline"
	"leadradar-engine/internal/render"
)

func main() {
	cfgFlag := flag.String("config", "", "path to config.yml (default: bootstrap into data dir)")
	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot discovery")
	outFlag := flag.String("out", "", "output directory override for one-shot runs")
	flag.Parse()

	// Engine data dir: env wins, else local folder.
	dataDir := os.Getenv("LEADRADAR_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	userCfgPath := *cfgFlag
	if userCfgPath == "" {
		defaultCfgPath := filepath.Join("config", "config.yml")
		p, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
		userCfgPath = p
	}

	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, w := range vr.Warnings {
		log.Printf("[config] warn: %s", w)
	}
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %s", userCfgPath, vr.Errors[0])
	}

	if *serve {
		runServe(cfg, userCfgPath, loadCfg)
		return
	}
	runOnce(cfg, *outFlag)
}

// runOnce runs a single discovery pass and writes markdown + CSV files.
func runOnce(cfg config.Config, outOverride string) {
	outDir := cfg.App.OutputDir
	if outOverride != "" {
		outDir = outOverride
	}
	if outDir == "" {
		outDir = "out"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	p := pipeline.New(cfg, domain.NewWindow(time.Now()), nil)
	clients, candidates, err := p.Run(ctx)
	if err != nil {
		log.Fatalf("discovery failed: %v", err)
	}

	f := render.Filters{
		MinScore:       cfg.Output.MinScore,
		Industries:     cfg.Output.Industries,
		RequireContact: cfg.Output.RequireContact,
	}
	clients = f.ApplyClients(clients)
	candidates = f.ApplyCandidates(candidates)

	md := render.Markdown(clients, candidates, cfg.Output.TopClients, cfg.Output.TopCandidates)
	mdPath := filepath.Join(outDir, "leads.md")
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		log.Fatal(err)
	}
	if err := writeCSV(filepath.Join(outDir, "clients.csv"), func(f *os.File) error {
		return render.ClientsCSV(f, clients)
	}); err != nil {
		log.Fatal(err)
	}
	if err := writeCSV(filepath.Join(outDir, "candidates.csv"), func(f *os.File) error {
		return render.CandidatesCSV(f, candidates)
	}); err != nil {
		log.Fatal(err)
	}

	log.Printf("[engine] run done clients=%d candidates=%d out=%s", len(clients), len(candidates), outDir)
	fmt.Println(mdPath)
}

func runServe(cfg config.Config, userCfgPath string, loadCfg func() (config.Config, error)) {
	hub := events.NewHub()

	var cfgVal atomic.Value
	cfgVal.Store(cfg)
	var runStatus atomic.Value
	runStatus.Store(httpapi.RunStatus{})
	var latest atomic.Value
	latest.Store((*httpapi.Results)(nil))

	runDiscovery := func(ctx context.Context, cfg config.Config) (*httpapi.Results, error) {
		p := pipeline.New(cfg, domain.NewWindow(time.Now()), hub)
		clients, candidates, err := p.Run(ctx)
		if err != nil {
			return nil, err
		}
		f := render.Filters{
			MinScore:       cfg.Output.MinScore,
			Industries:     cfg.Output.Industries,
			RequireContact: cfg.Output.RequireContact,
		}
		return &httpapi.Results{
			Clients:    f.ApplyClients(clients),
			Candidates: f.ApplyCandidates(candidates),
			FinishedAt: time.Now().UTC(),
		}, nil
	}

	mux := httpapi.NewMux(httpapi.Deps{
		Hub:          hub,
		CfgVal:       &cfgVal,
		RunStatus:    &runStatus,
		Latest:       &latest,
		UserCfgPath:  userCfgPath,
		LoadCfg:      loadCfg,
		RunDiscovery: runDiscovery,
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.Cors,
			httpapi.RequestID,
			httpapi.Recover,
			httpapi.AccessLog,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))

	log.Printf("[engine] listening on http://%s (config=%s)", addr, userCfgPath)
	fmt.Printf("SHUTDOWN_TOKEN=%s\n", token)
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func writeCSV(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
