package rank

import (
	"sort"

	"leadradar-engine/internal/domain"
)

// Stable sorts, score descending. Ties keep their post-dedupe order; there is
// no secondary key.

func SortClients(leads []domain.ClientLead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].Score > leads[j].Score
	})
}

func SortCandidates(leads []domain.CandidateLead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].Score > leads[j].Score
	})
}
