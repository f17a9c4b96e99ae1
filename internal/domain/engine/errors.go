package engine

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrUnknownFormat marks an event whose year has no format table entry.
	ErrUnknownFormat = errors.New("unknown event format")
	// ErrUnknownPool marks a quota referencing a pool absent from the registry.
	ErrUnknownPool = errors.New("unknown pool")
	// ErrLockedRoster marks a pre-seeded roster entry that cannot be
	// resolved against the registry's identity space.
	ErrLockedRoster = errors.New("inconsistent locked roster")
)
