package extract

import "strings"

// TriggerBucket is one entry of the trigger-event taxonomy. Order in
// TriggerBuckets is the tie-break priority: when several buckets hit, the
// first declared wins regardless of hit counts.
type TriggerBucket struct {
	Label  string
	Weight float64 // strength weight used by the scorer
	Terms  []string
}

var TriggerBuckets = []TriggerBucket{
	{"funding", 1.0, []string{"seed", "pre-seed", "series a", "series b", "venture funding", "raised", "funding", "round"}},
	{"launch", 0.8, []string{"launched", "launching", "product hunt", "beta", "v1", "public launch", "go live"}},
	{"hiring freeze", 0.7, []string{"hiring freeze", "budget freeze", "cost cutting", "contractors only", "backfill with contractors"}},
	{"scale up", 0.6, []string{"scale", "scaling", "increasing demand", "rapid growth", "high growth"}},
	{"deadline", 0.5, []string{"deadline", "urgent", "immediately", "asap", "deliver by", "time sensitive"}},
}

type industryBucket struct {
	label string
	terms []string
}

// Checked in declared order; first bucket with any hit wins, not the bucket
// with the most hits.
var industryBuckets = []industryBucket{
	{"Fintech", []string{"fintech", "payments", "banking", "trading", "ledger", "crypto", "defi"}},
	{"Healthtech", []string{"health", "med", "clinic", "ehr", "wellness", "fitness"}},
	{"E-commerce", []string{"shopify", "ecommerce", "storefront", "marketplace", "checkout"}},
	{"SaaS", []string{"saas", "b2b", "multi-tenant", "subscription"}},
	{"Edtech", []string{"education", "learning", "edtech", "course", "lms"}},
	{"AI/ML", []string{"ai", "ml", "model", "llm", "computer vision", "nlp"}},
	{"Logistics", []string{"logistics", "fleet", "delivery", "supply chain"}},
	{"Real Estate", []string{"real estate", "property", "proptech"}},
	{"Travel", []string{"travel", "booking", "itinerary"}},
	{"Social", []string{"social", "community", "messaging", "feed"}},
}

// Trigger returns the highest-priority trigger bucket with any substring hit,
// or "".
func Trigger(text string) string {
	t := strings.ToLower(text)
	for _, b := range TriggerBuckets {
		for _, term := range b.Terms {
			if strings.Contains(t, term) {
				return b.Label
			}
		}
	}
	return ""
}

// Industry returns the first industry bucket with any substring hit, or "".
func Industry(text string) string {
	t := strings.ToLower(text)
	for _, b := range industryBuckets {
		for _, term := range b.terms {
			if strings.Contains(t, term) {
				return b.label
			}
		}
	}
	return ""
}
