package engine

import (
	"github.com/okian/lineup/pkg/logger"
)

// Option applies a configuration option to the Allocator.
type Option func(*Allocator)

// WithRand sets the random source used for tie-breaking. Tests pass a
// seeded or stubbed source to make selection outcomes reproducible.
func WithRand(r Rand) Option {
	return func(a *Allocator) {
		if r != nil {
			a.rng = r
		}
	}
}

// WithLogger sets a custom logger for the allocator.
func WithLogger(l logger.Logger) Option {
	return func(a *Allocator) {
		if l != nil {
			a.log = l
		}
	}
}
