// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error kinds.
package config

import (
	"github.com/okian/lineup/internal/domain/model"
)

// QuotaConfig is one pool quota entry of a format.
type QuotaConfig struct {
	Pool  string `koanf:"pool"`
	Count int    `koanf:"count"`
}

// FormatConfig declares one event format: its year tag, roster capacity,
// and ordered pool quotas.
type FormatConfig struct {
	Year     int           `koanf:"year"`
	Capacity int           `koanf:"capacity"`
	Quotas   []QuotaConfig `koanf:"quotas"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SeasonFile points at the YAML season definition (pools, events,
	// blackouts, locked rosters).
	SeasonFile string `koanf:"season_file"`

	// HomeVenue is the regexp classifying a venue as "home".
	HomeVenue string `koanf:"home_venue"`

	// Seed initializes the tie-breaking random source. Runs with equal
	// input and seed produce identical rosters.
	Seed int64 `koanf:"seed"`

	// StrictKeys appends the venue to event keys used for blackout and
	// locked-roster lookups.
	StrictKeys bool `koanf:"strict_keys"`

	// Formats declares the event formats. Quota order within a format is
	// the fill order.
	Formats []FormatConfig `koanf:"formats"`
}

// New creates a Config with the built-in season defaults.
func New() *Config {
	c := &Config{
		LogLevel:   "info",
		SeasonFile: "season.yaml",
		HomeVenue:  `(?i)^sk.ndalshallen`,
		Seed:       42,
		StrictKeys: false,
		Formats: []FormatConfig{
			{
				Year:     2012,
				Capacity: 16,
				Quotas: []QuotaConfig{
					{Pool: "p12-rutin", Count: 6},
					{Pool: "p12-junior", Count: 3},
					{Pool: "p13-stark", Count: 3},
					{Pool: "p13-mellan", Count: 4},
				},
			},
			{
				Year:     2013,
				Capacity: 11,
				Quotas: []QuotaConfig{
					{Pool: "p13-stark", Count: 2},
					{Pool: "p13-mellan", Count: 7},
					{Pool: "p13-junior", Count: 2},
				},
			},
		},
	}
	return c
}

// FormatTable converts the declared formats into the domain table.
func (c *Config) FormatTable() model.FormatTable {
	t := make(model.FormatTable, len(c.Formats))
	for _, f := range c.Formats {
		quotas := make([]model.PoolQuota, 0, len(f.Quotas))
		for _, q := range f.Quotas {
			quotas = append(quotas, model.PoolQuota{Pool: q.Pool, Count: q.Count})
		}
		t[f.Year] = model.Format{Capacity: f.Capacity, Quotas: quotas}
	}
	return t
}
