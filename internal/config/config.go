package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port      int    `yaml:"port"`
		DataDir   string `yaml:"data_dir"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"app"`

	Keywords struct {
		Client    []string `yaml:"client"`
		Candidate []string `yaml:"candidate"`
	} `yaml:"keywords"`

	Sources struct {
		HackerNews struct {
			Enabled  bool `yaml:"enabled"`
			MaxPages int  `yaml:"max_pages"`
		} `yaml:"hackernews"`

		Reddit struct {
			Enabled    bool     `yaml:"enabled"`
			Subreddits []string `yaml:"subreddits"`
			Limit      int      `yaml:"limit"`
		} `yaml:"reddit"`

		RSS struct {
			Enabled bool     `yaml:"enabled"`
			Feeds   []string `yaml:"feeds"`
		} `yaml:"rss"`

		Email struct {
			Enabled    bool     `yaml:"enabled"`
			IMAPHost   string   `yaml:"imap_host"`
			IMAPPort   int      `yaml:"imap_port"`
			Username   string   `yaml:"username"`
			Mailbox    string   `yaml:"mailbox"`
			SubjectAny []string `yaml:"search_subject_any"`
		} `yaml:"email"`
	} `yaml:"sources"`

	Enrichment struct {
		Sites    bool   `yaml:"sites"`
		Workers  int    `yaml:"workers"`
		Provider string `yaml:"provider"` // paid provider name; empty = disabled
	} `yaml:"enrichment"`

	Output struct {
		MinScore       float64  `yaml:"min_score"` // 0..100, UI scale
		Industries     []string `yaml:"industries"`
		RequireContact bool     `yaml:"require_contact"`
		TopClients     int      `yaml:"top_clients"`
		TopCandidates  int      `yaml:"top_candidates"`
	} `yaml:"output"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// EnrichWorkers returns the client-enrichment pool size with the default
// applied.
func (c Config) EnrichWorkers() int {
	if c.Enrichment.Workers > 0 {
		return c.Enrichment.Workers
	}
	return 10
}
