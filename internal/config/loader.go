package config

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if LINEUP_CONFIG is set
//  3. env (prefix LINEUP_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("LINEUP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: LINEUP_SEASON_FILE, LINEUP_SEED, ...
	// Map env keys like LINEUP_SEASON_FILE -> season_file (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("LINEUP_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "lineup_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks structural invariants the engine relies on.
func (c *Config) validate() error {
	if c.SeasonFile == "" {
		return fmt.Errorf("%w: season_file must not be empty", ErrInvalidConfig)
	}
	if _, err := regexp.Compile(c.HomeVenue); err != nil {
		return fmt.Errorf("%w: home_venue: %v", ErrInvalidConfig, err)
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("%w: at least one format is required", ErrInvalidConfig)
	}
	for _, f := range c.Formats {
		if f.Capacity <= 0 {
			return fmt.Errorf("%w: format %d: capacity must be positive", ErrInvalidConfig, f.Year)
		}
		sum := 0
		for _, q := range f.Quotas {
			if q.Pool == "" || q.Count <= 0 {
				return fmt.Errorf("%w: format %d: quotas need a pool name and a positive count", ErrInvalidConfig, f.Year)
			}
			sum += q.Count
		}
		if sum > f.Capacity {
			return fmt.Errorf("%w: format %d: quota sum %d exceeds capacity %d", ErrInvalidConfig, f.Year, sum, f.Capacity)
		}
	}
	return nil
}
