// Package roster provides the static lookup structures consumed by the
// allocation engine: the pool registry (named candidate groups) and the
// availability index (per-player event blackouts). Both are read-only once
// allocation starts.
package roster

import (
	"sort"

	"github.com/okian/lineup/internal/domain/model"
)

// Registry maps pool names to their member players.
type Registry struct {
	pools map[string][]model.PlayerID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pools: make(map[string][]model.PlayerID)}
}

// FromSeason builds a registry from each player's declared pool membership.
// Members keep arena order within a pool.
func FromSeason(s *model.Season) *Registry {
	r := NewRegistry()
	for i := range s.Players {
		r.Add(s.Players[i].Pool, model.PlayerID(i))
	}
	return r
}

// Add appends a player to the named pool.
func (r *Registry) Add(pool string, id model.PlayerID) {
	r.pools[pool] = append(r.pools[pool], id)
}

// Pool returns the full member set of the named pool. The returned slice is
// shared; callers must not mutate it.
func (r *Registry) Pool(name string) ([]model.PlayerID, bool) {
	members, ok := r.pools[name]
	return members, ok
}

// Contains reports whether the player belongs to the named pool.
func (r *Registry) Contains(pool string, id model.PlayerID) bool {
	for _, m := range r.pools[pool] {
		if m == id {
			return true
		}
	}
	return false
}

// Pools returns all pool names, sorted.
func (r *Registry) Pools() []string {
	names := make([]string, 0, len(r.pools))
	for name := range r.pools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
