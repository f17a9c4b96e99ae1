// Package service composes the season inputs, the allocation engine, and
// the console report into one run-level session.
package service

import (
	"context"
	"io"
	"math/rand"
	"os"

	"github.com/okian/lineup/internal/adapters/report"
	"github.com/okian/lineup/internal/adapters/schedule"
	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/internal/domain/engine"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/pkg/logger"
)

// Service owns the in-memory model for the duration of one allocation run.
// It is single-writer by design; nothing here is safe for concurrent use.
type Service struct {
	cfg *config.Config
	out io.Writer
	rng engine.Rand
	log logger.Logger

	data *schedule.SeasonData
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithOutput redirects the console report. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithRand sets the tie-breaking random source. Defaults to a source seeded
// from the configuration.
func WithRand(r engine.Rand) Option {
	return func(s *Service) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a Service over the given configuration.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		cfg: cfg,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic seed for reproducible allocation
	}
	return s
}

// Run loads the season file, allocates every event, and renders the report.
func (s *Service) Run(ctx context.Context) (*engine.Result, error) {
	if s.log == nil {
		s.log = logger.Get().Named("service")
	}

	s.log.Debug(ctx, "loading season",
		logger.String("season_file", s.cfg.SeasonFile),
		logger.Bool("strict_keys", s.cfg.StrictKeys))

	data, err := schedule.Load(ctx, s.cfg.SeasonFile,
		model.WithFormats(s.cfg.FormatTable()),
		model.WithHomePattern(s.cfg.HomeVenue),
		model.WithStrictKeys(s.cfg.StrictKeys),
	)
	if err != nil {
		return nil, err
	}
	s.data = data

	alloc := engine.New(data.Season, data.Registry, data.Avail,
		engine.WithRand(s.rng),
		engine.WithLogger(s.log.Named("engine")),
	)
	res, err := alloc.Run(ctx)
	if err != nil {
		return nil, err
	}

	report.Players(s.out, data.Season)
	report.Events(s.out, data.Season)
	report.Underfills(s.out, res)
	return res, nil
}

// Season exposes the allocated model after Run, for callers that render or
// persist results themselves.
func (s *Service) Season() *model.Season {
	if s.data == nil {
		return nil
	}
	return s.data.Season
}
