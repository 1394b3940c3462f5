// Package rank turns a lead's signals into a single [0,1] score and orders
// the output lists. The weights are tuned constants carried over verbatim;
// parity matters more than elegance here.
package rank

import (
	"math"
	"strings"
	"time"

	"leadradar-engine/internal/domain"
	"leadradar-engine/internal/extract"
)

// Weights combine the four normalized sub-scores.
type Weights struct {
	Trigger       float64
	Recency       float64
	Engagement    float64
	Accessibility float64
}

var (
	// PreEnrich applies right after extraction.
	PreEnrich = Weights{Trigger: 0.38, Recency: 0.30, Engagement: 0.18, Accessibility: 0.14}
	// PostEnrich applies after the site enricher updates client contacts;
	// accessibility counts for more once contacts are site-confirmed.
	PostEnrich = Weights{Trigger: 0.36, Recency: 0.28, Engagement: 0.16, Accessibility: 0.20}
)

// Signals is everything the scorer reads off a lead.
type Signals struct {
	Text      string
	CreatedAt *time.Time
	Points    int
	Comments  int
	HasEmail  bool
	HasPhone  bool
}

// Score computes the weighted sum, clamped to [0,1] and rounded to 4 places.
func Score(win domain.Window, s Signals, w Weights) float64 {
	v := w.Trigger*TriggerStrength(s.Text) +
		w.Recency*Recency(win, s.CreatedAt) +
		w.Engagement*Engagement(s.Points, s.Comments) +
		w.Accessibility*Accessibility(s.HasEmail, s.HasPhone)
	return round4(clamp01(v))
}

// Recency decays linearly over the run window. A missing timestamp scores 0.
func Recency(win domain.Window, t *time.Time) float64 {
	if t == nil {
		return 0
	}
	days := win.Now.Sub(*t).Seconds() / 86400
	return clamp01(1 - days/domain.MaxAgeDays)
}

// TriggerStrength sums bucket_weight * min(hits, 3) over every trigger bucket
// with at least one hit, divided by 3 and clamped.
func TriggerStrength(text string) float64 {
	if text == "" {
		return 0
	}
	t := strings.ToLower(text)
	score := 0.0
	for _, b := range extract.TriggerBuckets {
		hits := 0
		for _, term := range b.Terms {
			if strings.Contains(t, term) {
				hits++
			}
		}
		if hits > 0 {
			score += b.Weight * math.Min(float64(hits), 3)
		}
	}
	return math.Min(1, score/3)
}

// Engagement is log-damped: min(1, log1p(points + 0.6*comments) / 5).
func Engagement(points, comments int) float64 {
	v := math.Log1p(float64(points) + 0.6*float64(comments))
	return math.Min(1, v/5)
}

// Accessibility: 0.3 for any email, +0.4 for any phone, clamped.
func Accessibility(hasEmail, hasPhone bool) float64 {
	base := 0.0
	if hasEmail {
		base = 0.3
	}
	if hasPhone {
		base += 0.4
	}
	return math.Min(1, base)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
