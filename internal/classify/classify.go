// Package classify labels harvested items as sales leads or developer
// candidates using layered substring heuristics: community convention markers
// are authoritative where known, hint-phrase voting is the general case, and
// raw containment is the last resort before the caller's keyword fallback.
package classify

import (
	"strings"

	"leadradar-engine/internal/domain"
)

// Communities whose posting conventions use [Hiring]/[For Hire] markers.
var markerChannels = map[string]bool{
	"forhire": true,
}

var clientHints = []string{
	"need developer",
	"looking for developer",
	"hiring contractor",
	"outsourcing",
	"agency",
	"mvp",
	"prototype",
	"poc",
	"[hiring]",
	"contract",
	"consultant needed",
}

var candidateHints = []string{
	"for hire",
	"open to work",
	"available for freelance",
	"available for contract",
	"[for hire]",
	"hire me",
	"seeking projects",
}

// Classify decides the lead class for an item. First matching rule wins;
// ok is false when no rule matched and the caller should try its own
// keyword lists before dropping the item.
func Classify(title, body, channel string) (label domain.Label, ok bool) {
	s := strings.ToLower(strings.TrimSpace(title + " " + body))

	if markerChannels[strings.ToLower(channel)] {
		if strings.Contains(s, "[for hire]") {
			return domain.LabelCandidate, true
		}
		if strings.Contains(s, "[hiring]") {
			return domain.LabelClient, true
		}
	}

	clientHits := countHits(s, clientHints)
	candHits := countHits(s, candidateHints)
	if candHits > clientHits && candHits > 0 {
		return domain.LabelCandidate, true
	}
	if clientHits > 0 {
		return domain.LabelClient, true
	}

	if strings.Contains(s, "hire") && strings.Contains(s, "developer") {
		return domain.LabelClient, true
	}
	if (strings.Contains(s, "available") || strings.Contains(s, "for hire")) && strings.Contains(s, "developer") {
		return domain.LabelCandidate, true
	}

	return "", false
}

// MatchKeywords is the final fallback applied by the pipeline with the
// configured keyword lists. Client keywords are checked first.
func MatchKeywords(text string, clientKWs, candidateKWs []string) (domain.Label, bool) {
	blob := strings.ToLower(text)
	for _, k := range clientKWs {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && strings.Contains(blob, k) {
			return domain.LabelClient, true
		}
	}
	for _, k := range candidateKWs {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && strings.Contains(blob, k) {
			return domain.LabelCandidate, true
		}
	}
	return "", false
}

func countHits(s string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if strings.Contains(s, p) {
			n++
		}
	}
	return n
}
