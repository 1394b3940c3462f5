package rank

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leadradar-engine/internal/domain"
)

func TestAccessibility(t *testing.T) {
	assert.Equal(t, 0.0, Accessibility(false, false))
	assert.Equal(t, 0.3, Accessibility(true, false))
	assert.Equal(t, 0.4, Accessibility(false, true))
	assert.InDelta(t, 0.7, Accessibility(true, true), 1e-9)
}

func TestRecency(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	win := domain.NewWindow(now)

	fresh := now.Add(-1 * time.Hour)
	old := now.AddDate(0, 0, -29)
	boundary := win.Earliest

	assert.Greater(t, Recency(win, &fresh), 0.9)
	assert.Greater(t, Recency(win, &old), 0.0)
	assert.InDelta(t, 0.0, Recency(win, &boundary), 1e-9)
	assert.Equal(t, 0.0, Recency(win, nil))
}

func TestWindowBoundaryInclusive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	win := domain.NewWindow(now)

	exactly := win.Earliest
	justOutside := win.Earliest.Add(-time.Second)

	assert.True(t, win.Within(&exactly))
	assert.False(t, win.Within(&justOutside))
	assert.False(t, win.Within(nil))
}

func TestTriggerStrength(t *testing.T) {
	assert.Equal(t, 0.0, TriggerStrength(""))
	assert.Equal(t, 0.0, TriggerStrength("nothing interesting here"))

	// one funding hit: 1.0*1/3
	assert.InDelta(t, 1.0/3, TriggerStrength("we just raised capital"), 1e-9)

	// hits inside a bucket saturate at 3
	saturated := TriggerStrength("raised seed round, series a, funding secured, just funded")
	assert.InDelta(t, 1.0, saturated, 1e-9)
}

func TestEngagement(t *testing.T) {
	assert.Equal(t, 0.0, Engagement(0, 0))
	assert.Greater(t, Engagement(10, 5), Engagement(2, 1))
	assert.Equal(t, 1.0, Engagement(100000, 0))
}

func TestScoreBoundsAndRounding(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	win := domain.NewWindow(now)
	created := now.Add(-2 * time.Hour)

	s := Signals{
		Text:      "we raised a series a and are hiring an agency to build our mvp",
		CreatedAt: &created,
		Points:    140,
		Comments:  60,
		HasEmail:  true,
		HasPhone:  true,
	}

	for _, w := range []Weights{PreEnrich, PostEnrich} {
		got := Score(win, s, w)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
		// rounded to 4 places
		assert.InDelta(t, math.Round(got*10000), got*10000, 1e-6)
	}

	// post-enrich weighs accessibility heavier than pre-enrich
	assert.Greater(t, PostEnrich.Accessibility, PreEnrich.Accessibility)
}

func TestSortClientsStable(t *testing.T) {
	a := domain.ClientLead{Lead: domain.Lead{RawItem: domain.RawItem{Title: "a"}, Score: 0.5}}
	b := domain.ClientLead{Lead: domain.Lead{RawItem: domain.RawItem{Title: "b"}, Score: 0.5}}
	c := domain.ClientLead{Lead: domain.Lead{RawItem: domain.RawItem{Title: "c"}, Score: 0.9}}

	leads := []domain.ClientLead{a, b, c}
	SortClients(leads)

	assert.Equal(t, "c", leads[0].Title)
	assert.Equal(t, "a", leads[1].Title)
	assert.Equal(t, "b", leads[2].Title)
}
