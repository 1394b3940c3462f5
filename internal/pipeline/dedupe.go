package pipeline

import (
	"leadradar-engine/internal/domain"
	"leadradar-engine/internal/extract"
)

// First-seen-wins dedup. A lead with no identity key at all is always kept;
// dropping distinct leads that merely lack a signal would be worse than the
// occasional duplicate.

func dedupeClients(in []domain.ClientLead) []domain.ClientLead {
	seen := map[string]bool{}
	out := make([]domain.ClientLead, 0, len(in))
	for _, l := range in {
		key := l.CompanyDomain
		if key == "" {
			key = extract.RegistrableDomain(l.URL)
		}
		if key == "" {
			key = l.URL
		}
		if key == "" {
			out = append(out, l)
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, l)
	}
	return out
}

func dedupeCandidates(in []domain.CandidateLead) []domain.CandidateLead {
	type identity struct{ author, title string }
	seen := map[identity]bool{}
	out := make([]domain.CandidateLead, 0, len(in))
	for _, l := range in {
		if l.Author == "" && l.Title == "" {
			out = append(out, l)
			continue
		}
		key := identity{l.Author, l.Title}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, l)
	}
	return out
}
