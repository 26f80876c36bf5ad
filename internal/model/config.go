package model

import "time"

// Config is the complete runtime configuration.
type Config struct {
	Source      SourceConfig      `yaml:"source"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	Narrative   NarrativeConfig   `yaml:"narrative"`

	// CatalogPath points to a YAML field catalog. Empty means the
	// built-in default catalog.
	CatalogPath string `yaml:"catalog_path"`
}

// SourceConfig configures the record-source HTTP client.
type SourceConfig struct {
	BaseURL           string        `yaml:"base_url"`
	APIKey            string        `yaml:"api_key"`
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// CacheConfig configures payload and schema caching.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig configures batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Verbose       bool   `yaml:"verbose"`
	IncludeFooter bool   `yaml:"include_footer"`
	Dir           string `yaml:"dir"`
}

// NarrativeConfig configures sentence composition. Subject is the
// sentence subject for the temporal rule; verb agreement follows from
// it ("They have", "She has") and is never inferred from data.
type NarrativeConfig struct {
	Subject string `yaml:"subject"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "caseglance/0.1 (+https://github.com/caseglance/caseglance)",
			MaxBodyBytes:      5_000_000,
			RequestsPerSecond: 4, // Airtable-style APIs allow 5 rps per base
			Burst:             4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 5 * time.Minute,
			DiskTTL:   time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
			Dir:           "./caseglance-reports",
		},
		Narrative: NarrativeConfig{
			Subject: "They",
		},
	}
}
