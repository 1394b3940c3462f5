package domain

import "time"

// MaxAgeDays is the recency horizon. Items older than this never enter the
// pipeline, and recency scoring decays linearly across it.
const MaxAgeDays = 30

// Window pins "now" and the earliest acceptable timestamp for one run.
// It is computed once at startup and threaded into every component that
// needs it, so tests can inject a fixed clock.
type Window struct {
	Now      time.Time
	Earliest time.Time
}

func NewWindow(now time.Time) Window {
	now = now.UTC()
	return Window{
		Now:      now,
		Earliest: now.Add(-MaxAgeDays * 24 * time.Hour),
	}
}

// Within reports whether t exists and is at or after the earliest boundary.
// The boundary instant itself is accepted.
func (w Window) Within(t *time.Time) bool {
	return t != nil && !t.Before(w.Earliest)
}
