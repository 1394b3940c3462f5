// Package render is the presentation edge: post-run result filters plus
// markdown and CSV output of the two ranked lists. The pipeline hands the
// lists over and never sees anything here.
package render

import "leadradar-engine/internal/domain"

// Filters narrow the ranked lists before rendering. MinScore uses the 0..100
// display scale.
type Filters struct {
	MinScore       float64
	Industries     []string
	RequireContact bool
}

func (f Filters) ApplyClients(in []domain.ClientLead) []domain.ClientLead {
	out := make([]domain.ClientLead, 0, len(in))
	for _, c := range in {
		if c.Score*100 < f.MinScore {
			continue
		}
		if len(f.Industries) > 0 && !contains(f.Industries, c.Industry) {
			continue
		}
		if f.RequireContact && len(c.Emails) == 0 && len(c.Phones) == 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f Filters) ApplyCandidates(in []domain.CandidateLead) []domain.CandidateLead {
	out := make([]domain.CandidateLead, 0, len(in))
	for _, d := range in {
		if d.Score*100 < f.MinScore {
			continue
		}
		out = append(out, d)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
