package domain

import (
	"strings"
	"time"
)

type Label string

const (
	LabelClient    Label = "Potential Client"
	LabelCandidate Label = "Developer Candidate"
)

type Availability string

const (
	AvailImmediate Availability = "Immediate"
	AvailNotice    Availability = "Notice Period"
)

// RawItem is what a fetcher produces. Immutable once emitted.
type RawItem struct {
	Source    string // "Hacker News", "Reddit r/forhire", "RSS techcrunch.com", ...
	Title     string
	Body      string
	URL       string
	Author    string
	CreatedAt *time.Time // nil when the source gave no usable timestamp
	Points    int
	Comments  int
	Channel   string // originating sub-forum name, e.g. "forhire"
}

// Text joins title and body the way every heuristic consumes them.
func (it RawItem) Text() string {
	return strings.TrimSpace(it.Title + " " + it.Body)
}

// Lead is the classified core shared by both lead classes. Signal fields are
// derived once at classification time and never re-derived.
type Lead struct {
	RawItem

	Label          Label
	URLs           []string
	CompanyName    string
	CompanyWebsite string
	CompanyDomain  string
	Trigger        string // "", "funding", "launch", "hiring freeze", "scale up", "deadline"
	Industry       string
	EmailsInline   []string
	PhonesInline   []string
	Score          float64
}

// ClientLead adds the fields the site enricher fills in.
type ClientLead struct {
	Lead

	SiteTitle       string
	SiteDescription string
	Emails          []string // inline + site-scraped union, capped
	Phones          []string
}

// CandidateLead adds the fields the profiler fills in.
type CandidateLead struct {
	Lead

	Skills          []string
	Availability    Availability
	YearsExperience *int
	Location        string
	Portfolios      []string
}
