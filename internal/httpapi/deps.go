package httpapi

import (
	"context"
	"sync/atomic"

	"leadradar-engine/internal/config"
	"leadradar-engine/internal/events"
)

type Deps struct {
	Hub *events.Hub

	// Atomic stores
	CfgVal    *atomic.Value // stores config.Config
	RunStatus *atomic.Value // stores httpapi.RunStatus
	Latest    *atomic.Value // stores *httpapi.Results

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Discovery entrypoint (inject for testability)
	RunDiscovery func(ctx context.Context, cfg config.Config) (*Results, error)
}
