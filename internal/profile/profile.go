// Package profile derives a developer candidate's skills, availability,
// experience and location purely from post text. No rescoring happens here.
package profile

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"leadradar-engine/internal/domain"
)

const (
	maxSkills     = 15
	maxPortfolios = 5
)

var skillLibrary = []string{
	"python", "django", "flask", "fastapi", "pandas",
	"javascript", "typescript", "react", "node", "next.js", "vue", "angular", "svelte",
	"java", "spring", "kotlin", "swift", "objective-c",
	"ios", "android", "react native", "flutter",
	"php", "laravel", "symfony", "ruby", "rails", "go", "rust", "c#", ".net", "c++",
	"aws", "gcp", "azure", "devops", "docker", "kubernetes", "terraform",
	"postgres", "mysql", "mariadb", "mongodb", "redis", "elasticsearch", "graphql",
	"ai", "ml", "llm", "nlp", "computer vision", "pytorch", "tensorflow",
}

var immediatePhrases = []string{"immediate", "asap", "available now"}

// Domains that count as a portfolio/code-hosting/social presence.
var portfolioHosts = []string{
	"github.com", "gitlab.com", "behance.net", "dribbble.com",
	"codepen.io", "linkedin.com", "portfolio", "notion.site",
}

var (
	reYearsExp = regexp.MustCompile(`(\d{1,2})\+?\s*(?:years|yrs|y)`)
	reLocation = regexp.MustCompile(`(remote|india|usa|europe|uk|canada|australia|singapore|germany|netherlands|uae|dubai)`)
)

// Profile fills in the candidate-only fields from the lead's text and
// previously extracted URLs.
func Profile(lead *domain.CandidateLead) {
	t := strings.ToLower(lead.Text())

	var skills []string
	for _, s := range skillLibrary {
		if strings.Contains(t, s) {
			skills = append(skills, s)
		}
	}
	sort.Strings(skills)
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	lead.Skills = skills

	lead.Availability = domain.AvailNotice
	for _, p := range immediatePhrases {
		if strings.Contains(t, p) {
			lead.Availability = domain.AvailImmediate
			break
		}
	}

	if m := reYearsExp.FindStringSubmatch(t); m != nil {
		if yoe, err := strconv.Atoi(m[1]); err == nil {
			lead.YearsExperience = &yoe
		}
	}

	lead.Location = "Remote/Unspecified"
	if m := reLocation.FindStringSubmatch(t); m != nil {
		lead.Location = titleCase(m[1])
	}

	for _, u := range lead.URLs {
		if isPortfolioURL(u) {
			lead.Portfolios = append(lead.Portfolios, u)
			if len(lead.Portfolios) >= maxPortfolios {
				break
			}
		}
	}
}

func isPortfolioURL(u string) bool {
	low := strings.ToLower(u)
	for _, h := range portfolioHosts {
		if strings.Contains(low, h) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
