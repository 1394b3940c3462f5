package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedupes the list fields and sanity-checks
// the rest. Malformed list entries are not errors; they simply never match
// anything downstream.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Keywords.Client = trimList(out.Keywords.Client)
	out.Keywords.Candidate = trimList(out.Keywords.Candidate)
	out.Sources.Reddit.Subreddits = trimList(out.Sources.Reddit.Subreddits)
	out.Sources.RSS.Feeds = trimList(out.Sources.RSS.Feeds)
	out.Sources.Email.SubjectAny = trimList(out.Sources.Email.SubjectAny)
	out.Output.Industries = trimList(out.Output.Industries)

	if out.App.Port != 0 && (out.App.Port < 0 || out.App.Port > 65535) {
		res.addErr("app.port must be 1..65535")
	}
	if out.App.Port == 0 {
		out.App.Port = 38561
	}
	if out.Output.TopClients <= 0 {
		out.Output.TopClients = 30
	}
	if out.Output.TopCandidates <= 0 {
		out.Output.TopCandidates = 30
	}

	if out.Output.MinScore < 0 || out.Output.MinScore > 100 {
		res.addErr("output.min_score must be 0..100")
	}

	if !out.Sources.HackerNews.Enabled && !out.Sources.Reddit.Enabled &&
		!out.Sources.RSS.Enabled && !out.Sources.Email.Enabled {
		res.addWarn("no sources enabled; a run will produce two empty lists.")
	}

	if out.Sources.HackerNews.Enabled && len(out.Keywords.Client)+len(out.Keywords.Candidate) == 0 {
		res.addWarn("hackernews search has no keywords to query.")
	}

	if out.Sources.Reddit.Enabled && len(out.Sources.Reddit.Subreddits) == 0 {
		res.addWarn("reddit is enabled but no subreddits are configured.")
	}

	for _, f := range out.Sources.RSS.Feeds {
		if u, err := url.Parse(f); err != nil || u.Scheme == "" || u.Host == "" {
			res.addWarn("rss feed does not look like a URL: %q", f)
		}
	}

	if out.Sources.Email.Enabled {
		if strings.TrimSpace(out.Sources.Email.IMAPHost) == "" {
			res.addErr("sources.email.imap_host is required when email is enabled")
		}
		if strings.TrimSpace(out.Sources.Email.Username) == "" {
			res.addErr("sources.email.username is required when email is enabled")
		}
	}

	if out.Enrichment.Workers < 0 {
		res.addErr("enrichment.workers must be >= 0")
	}

	return out, res
}
