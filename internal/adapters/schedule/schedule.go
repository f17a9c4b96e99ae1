// Package schedule loads a season definition from a YAML file and resolves
// it into the in-memory model the engine consumes: the season arenas, the
// pool registry, and the availability index.
//
// Example file:
//
//	pools:
//	  p13-stark: [Alva, Ebba*]
//	  p13-mellan: [Stina, Moa, Lova]
//	events:
//	  - start: 2024-10-05T10:00:00+02:00
//	    end: 2024-10-05T11:00:00+02:00
//	    venue: Skändalshallen
//	    year: 2013
//	blackouts:
//	  Stina: ["2024-10-05 10:00"]
//	locked:
//	  "2024-10-05 10:00": [Ebba*]
package schedule

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/roster"
)

// File mirrors the YAML season document.
type File struct {
	Pools     map[string][]string `yaml:"pools"`
	Events    []EventSpec         `yaml:"events"`
	Blackouts map[string][]string `yaml:"blackouts"`
	Locked    map[string][]string `yaml:"locked"`
}

// EventSpec is one scheduled fixture in the season document.
type EventSpec struct {
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
	Venue string    `yaml:"venue"`
	Year  int       `yaml:"year"`
}

// SeasonData bundles the resolved inputs for one allocation run.
type SeasonData struct {
	Season   *model.Season
	Registry *roster.Registry
	Avail    *roster.Availability
}

// Load reads and resolves the season file. Events are ordered
// chronologically; players are added pool by pool in sorted pool-name order
// so that ids are stable across runs.
func Load(_ context.Context, path string, opts ...model.Option) (*SeasonData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadSeason, err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadSeason, err)
	}
	return Resolve(&f, opts...)
}

// Resolve builds the in-memory model from a decoded season document.
func Resolve(f *File, opts ...model.Option) (*SeasonData, error) {
	season := model.NewSeason(opts...)
	registry := roster.NewRegistry()
	avail := roster.NewAvailability()

	byName := make(map[string]model.PlayerID)

	pools := make([]string, 0, len(f.Pools))
	for name := range f.Pools {
		pools = append(pools, name)
	}
	sort.Strings(pools)

	for _, pool := range pools {
		for _, name := range f.Pools[pool] {
			if _, ok := byName[name]; ok {
				return nil, fmt.Errorf("%w: %q declared twice", ErrDuplicatePlayer, name)
			}
			id := season.AddPlayer(name, pool)
			registry.Add(pool, id)
			byName[name] = id
		}
	}

	events := make([]EventSpec, len(f.Events))
	copy(events, f.Events)
	sort.Slice(events, func(a, b int) bool {
		return events[a].Start.Before(events[b].Start)
	})

	byKey := make(map[string]model.EventID)
	for _, spec := range events {
		id := season.AddEvent(spec.Start, spec.End, spec.Venue, spec.Year)
		byKey[season.Key(id)] = id
	}

	for player, keys := range f.Blackouts {
		if _, ok := byName[player]; !ok {
			return nil, fmt.Errorf("%w: blackout for %q", ErrUnknownPlayer, player)
		}
		for _, key := range keys {
			avail.Block(player, key)
		}
	}

	lockedKeys := make([]string, 0, len(f.Locked))
	for key := range f.Locked {
		lockedKeys = append(lockedKeys, key)
	}
	sort.Strings(lockedKeys)

	for _, key := range lockedKeys {
		ev, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("%w: locked roster for %q", ErrUnknownEvent, key)
		}
		for _, name := range f.Locked[key] {
			id, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("%w: locked roster entry %q for %q", ErrUnknownPlayer, name, key)
			}
			season.Lock(ev, id)
		}
	}

	return &SeasonData{Season: season, Registry: registry, Avail: avail}, nil
}
