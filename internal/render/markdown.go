package render

import (
	"fmt"
	"strings"

	"leadradar-engine/internal/domain"
)

// Markdown renders the two ranked lists as a briefing document, truncated to
// the configured top-N per list.
func Markdown(clients []domain.ClientLead, candidates []domain.CandidateLead, topClients, topCandidates int) string {
	var b strings.Builder

	b.WriteString("## Potential Clients\n")
	if len(clients) == 0 {
		b.WriteString("- No results found in the last 30 days.\n")
	}
	for i, c := range clients {
		if i >= topClients {
			break
		}
		name := c.CompanyName
		if name == "" {
			name = "(Company TBD)"
		}
		website := c.CompanyWebsite
		if website == "" {
			website = c.URL
		}
		industry := c.Industry
		if industry == "" {
			industry = "Unknown"
		}
		snippet := c.Text()
		if snippet == "" {
			snippet = c.SiteDescription
		}
		if snippet == "" {
			snippet = c.Title
		}
		snippet = Shorten(snippet, 280)
		contact := contactLine(c, website)
		trigger := c.Trigger
		if trigger == "" {
			trigger = "Not specified"
		}
		fmt.Fprintf(&b, "- **%s:** %s | %s | Score %v\n", name, website, industry, c.Score)
		fmt.Fprintf(&b, "  - **%s – Opportunity Summary:** %s (Source: %s)\n", name, snippet, c.Source)
		fmt.Fprintf(&b, "  - **Contact:** %s\n", contact)
		fmt.Fprintf(&b, "  - **Trigger Event:** %s\n", trigger)
		fmt.Fprintf(&b, "  - **Post:** %s | %s\n\n", c.Title, c.URL)
	}

	b.WriteString("## Developer Candidates\n")
	if len(candidates) == 0 {
		b.WriteString("- No results found in the last 30 days.\n")
	}
	for i, d := range candidates {
		if i >= topCandidates {
			break
		}
		author := d.Author
		if author == "" {
			author = "Developer"
		}
		name := author + " (" + d.Source + ")"
		skills := strings.Join(capList(d.Skills, 10), ", ")
		if skills == "" {
			skills = "Skills not specified"
		}
		portfolios := d.Portfolios
		if len(portfolios) == 0 {
			portfolios = []string{d.URL}
		}
		avail := string(d.Availability)
		if avail == "" {
			avail = string(domain.AvailNotice)
		}
		yoe := "N/A"
		if d.YearsExperience != nil {
			yoe = fmt.Sprintf("%d years", *d.YearsExperience)
		}
		loc := d.Location
		if loc == "" {
			loc = "Remote/Unspecified"
		}
		fmt.Fprintf(&b, "- **%s – Skills Summary:** %s\n", name, skills)
		fmt.Fprintf(&b, "  - **Portfolio:** %s\n", strings.Join(capList(portfolios, 3), " | "))
		fmt.Fprintf(&b, "  - **Availability:** %s | **Experience:** %s | **Location:** %s\n", avail, yoe, loc)
		fmt.Fprintf(&b, "  - **Post:** %s | %s\n\n", d.Title, d.URL)
	}

	return b.String()
}

func contactLine(c domain.ClientLead, fallback string) string {
	var bits []string
	if len(c.Emails) > 0 {
		bits = append(bits, c.Emails[0])
	}
	if len(c.Phones) > 0 {
		bits = append(bits, c.Phones[0])
	}
	if len(bits) == 0 {
		return fallback
	}
	return strings.Join(bits, " | ")
}

// Shorten collapses whitespace and trims s to at most n runes, appending an
// ellipsis when it had to cut.
func Shorten(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimRight(string(r[:n-1]), " ") + "…"
}

func capList(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
