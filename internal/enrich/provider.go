package enrich

import (
	"context"
	"log"

	"leadradar-engine/internal/domain"
)

// Provider is the seam for authenticated contact-enrichment services.
// None ship by default; the free site crawl is the only built-in. A provider
// gets the lead after the site pass and may fill in whatever the crawl
// missed. Provider failures are ignored the same way fetch failures are.
type Provider interface {
	Name() string
	Enrich(ctx context.Context, lead *domain.ClientLead) error
}

type noopProvider struct{}

func (noopProvider) Name() string                                       { return "none" }
func (noopProvider) Enrich(context.Context, *domain.ClientLead) error   { return nil }

// ProviderByName resolves a configured provider name. No paid providers are
// bundled, so unknown and empty names alike resolve to the no-op.
func ProviderByName(name string) Provider {
	if name != "" {
		log.Printf("[enrich] no provider registered for %q, paid enrichment off", name)
	}
	return noopProvider{}
}
