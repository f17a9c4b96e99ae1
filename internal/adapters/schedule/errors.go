package schedule

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrLoadSeason wraps file and YAML decoding failures.
	ErrLoadSeason = errors.New("load season failed")
	// ErrDuplicatePlayer marks a player name appearing in more than one pool.
	ErrDuplicatePlayer = errors.New("duplicate player")
	// ErrUnknownPlayer marks a blackout or locked-roster entry naming an
	// undeclared player.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrUnknownEvent marks a locked-roster key matching no event.
	ErrUnknownEvent = errors.New("unknown event")
)
