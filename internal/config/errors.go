package config

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidConfig marks a config that parsed but violates a structural
	// invariant (empty season file, broken venue pattern, bad format table).
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig marks a failure to read or decode a config source.
	ErrLoadConfig = errors.New("load config failed")
)
