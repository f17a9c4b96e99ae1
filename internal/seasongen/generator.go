// Package seasongen generates synthetic season files for exercising the
// allocator at scale: pools of named players, a weekend fixture list, and a
// sprinkling of blackouts.
package seasongen

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/okian/lineup/internal/adapters/schedule"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/pkg/logger"
)

// Default generation constants.
const (
	defaultPlayersPerPool = 8
	defaultEvents         = 12
	defaultBlackoutRate   = 0.1
	defaultPriorityRate   = 0.15
	nameFragmentLen       = 8
	hoursPerDay           = 24
	daysPerWeek           = 7
)

// Config holds configuration for season generation.
type Config struct {
	Pools          []string  // pool names to populate
	PlayersPerPool int       // players generated per pool
	Events         int       // number of fixtures
	Years          []int     // format tags cycled across fixtures
	Start          time.Time // first fixture start
	HomeVenue      string    // venue matching the home pattern
	AwayVenues     []string  // venues cycled for away fixtures
	BlackoutRate   float64   // fraction of (player, event) pairs blacked out
	PriorityRate   float64   // fraction of players marked priority
	Seed           int64     // random seed
}

// Generate builds a synthetic season document.
func Generate(ctx context.Context, cfg *Config) *schedule.File {
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // synthetic data only

	if cfg.PlayersPerPool <= 0 {
		cfg.PlayersPerPool = defaultPlayersPerPool
	}
	if cfg.Events <= 0 {
		cfg.Events = defaultEvents
	}

	f := &schedule.File{
		Pools:     make(map[string][]string, len(cfg.Pools)),
		Blackouts: make(map[string][]string),
	}

	var names []string
	for _, pool := range cfg.Pools {
		for i := 0; i < cfg.PlayersPerPool; i++ {
			name := "player-" + uuid.New().String()[:nameFragmentLen]
			if rng.Float64() < cfg.PriorityRate {
				name += "*"
			}
			f.Pools[pool] = append(f.Pools[pool], name)
			names = append(names, name)
		}
	}

	// One fixture per weekend, alternating venues at random.
	for i := 0; i < cfg.Events; i++ {
		start := cfg.Start.Add(time.Duration(i) * daysPerWeek * hoursPerDay * time.Hour)
		venue := cfg.HomeVenue
		if len(cfg.AwayVenues) > 0 && rng.Intn(2) == 0 {
			venue = cfg.AwayVenues[rng.Intn(len(cfg.AwayVenues))]
		}
		year := 0
		if len(cfg.Years) > 0 {
			year = cfg.Years[i%len(cfg.Years)]
		}
		f.Events = append(f.Events, schedule.EventSpec{
			Start: start,
			End:   start.Add(time.Hour),
			Venue: venue,
			Year:  year,
		})

		for _, name := range names {
			if rng.Float64() < cfg.BlackoutRate {
				f.Blackouts[name] = append(f.Blackouts[name], start.Format(model.KeyLayout))
			}
		}
	}

	logger.Get().Info(ctx, "season generated",
		logger.Int("pools", len(f.Pools)),
		logger.Int("players", len(names)),
		logger.Int("events", len(f.Events)),
		logger.Int("blackouts", len(f.Blackouts)))
	return f
}

// Write generates a season and marshals it to path.
func Write(ctx context.Context, cfg *Config, path string) error {
	f := Generate(ctx, cfg)
	raw, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal season: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil { //nolint:gosec // fixture file
		return fmt.Errorf("write season: %w", err)
	}
	return nil
}
