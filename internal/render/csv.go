package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"leadradar-engine/internal/domain"
)

var clientHeader = []string{
	"Company", "Website", "Industry", "Trigger", "Emails", "Phones",
	"Score", "Source", "Post Title", "Post URL", "Created",
}

var candidateHeader = []string{
	"Handle", "Skills", "Availability", "YoE", "Location", "Portfolios",
	"Score", "Source", "Post Title", "Post URL", "Created",
}

// ClientsCSV writes the client list as a flat table, one row per lead.
func ClientsCSV(w io.Writer, clients []domain.ClientLead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(clientHeader); err != nil {
		return err
	}
	for _, c := range clients {
		website := c.CompanyWebsite
		if website == "" {
			website = c.URL
		}
		row := []string{
			c.CompanyName,
			website,
			c.Industry,
			c.Trigger,
			strings.Join(c.Emails, ", "),
			strings.Join(c.Phones, ", "),
			formatScore(c.Score),
			c.Source,
			c.Title,
			c.URL,
			formatCreated(c.RawItem),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CandidatesCSV writes the candidate list as a flat table, one row per lead.
func CandidatesCSV(w io.Writer, cands []domain.CandidateLead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(candidateHeader); err != nil {
		return err
	}
	for _, d := range cands {
		yoe := ""
		if d.YearsExperience != nil {
			yoe = fmt.Sprintf("%d", *d.YearsExperience)
		}
		row := []string{
			d.Author,
			strings.Join(d.Skills, ", "),
			string(d.Availability),
			yoe,
			d.Location,
			strings.Join(d.Portfolios, ", "),
			formatScore(d.Score),
			d.Source,
			d.Title,
			d.URL,
			formatCreated(d.RawItem),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatScore(s float64) string {
	return fmt.Sprintf("%g", s)
}

func formatCreated(it domain.RawItem) string {
	if it.CreatedAt == nil {
		return ""
	}
	return it.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
}
