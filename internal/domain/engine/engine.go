// Package engine implements the roster allocation engine: for each event in
// catalog order, and each pool quota of the event's format in declared
// order, it iteratively fills the roster from the pool's candidates using
// the fairness statistics and the selection cascade.
//
// The engine is single-threaded by design. Sequential ordering is
// load-bearing: later fills must observe the participation counts produced
// by earlier fills, which is what balances the season.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/okian/lineup/internal/domain/fairness"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/internal/domain/selection"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

// defaultRandomSeed makes runs reproducible unless a caller injects its own
// source.
const defaultRandomSeed = 42

// Rand is the pluggable random source for tie-breaking. *math/rand.Rand
// satisfies it; tests may substitute a deterministic stub.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0, n).
	Intn(n int) int
}

// Decision records one pick for the structured trace returned by Run.
type Decision struct {
	Event      string         // canonical event key
	Pool       string         // pool the quota draws from
	Tier       selection.Tier // cascade rung that produced the shortlist
	Candidates int            // shortlist size when the pick was made
	Player     string         // chosen player name
}

// Underfill reports a quota whose candidates ran out before it was met.
type Underfill struct {
	Event   string
	Pool    string
	Missing int
}

// Result is the outcome of one allocation run. Rosters and histories are
// mutated in place on the season; Result carries the introspection data.
type Result struct {
	RunID      string
	Decisions  []Decision
	Underfills []Underfill
}

// Allocator fills event rosters for one season.
type Allocator struct {
	season   *model.Season
	registry *roster.Registry
	avail    *roster.Availability
	rng      Rand
	log      logger.Logger
}

// New constructs an Allocator over the season's arenas. The registry and
// availability index are read-only for the allocator's lifetime.
func New(season *model.Season, registry *roster.Registry, avail *roster.Availability, opts ...Option) *Allocator {
	a := &Allocator{
		season:   season,
		registry: registry,
		avail:    avail,
		rng:      seededRand(defaultRandomSeed),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run validates preconditions and allocates every event in catalog order.
// Precondition violations abort before any mutation; quota underfill is
// recorded on the Result and never aborts the run.
func (a *Allocator) Run(ctx context.Context) (*Result, error) {
	if a.log == nil {
		a.log = logger.Get().Named("engine")
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.New().String()}
	a.log.Info(ctx, "allocation run starting",
		logger.String("run_id", res.RunID),
		logger.Int("events", len(a.season.Events)),
		logger.Int("players", len(a.season.Players)))

	for i := range a.season.Events {
		a.allocate(ctx, model.EventID(i), res)
	}

	metrics.UpdateSeasonPlayers(len(a.season.Players))
	metrics.UpdateSeasonEvents(len(a.season.Events))
	a.log.Info(ctx, "allocation run finished",
		logger.String("run_id", res.RunID),
		logger.Int("decisions", len(res.Decisions)),
		logger.Int("underfills", len(res.Underfills)))
	return res, nil
}

// validate fails fast on inconsistent input so no partial mutation can
// happen: unknown formats, quotas over unknown pools, oversized pre-seeded
// rosters, and locked entries outside the registry's identity space.
func (a *Allocator) validate() error {
	for i := range a.season.Events {
		ev := model.EventID(i)
		e := a.season.Event(ev)
		f, ok := a.season.Formats[e.Year]
		if !ok {
			return fmt.Errorf("event %s year %d: %w", a.season.Key(ev), e.Year, ErrUnknownFormat)
		}
		for _, q := range f.Quotas {
			if _, ok := a.registry.Pool(q.Pool); !ok {
				return fmt.Errorf("event %s pool %q: %w", a.season.Key(ev), q.Pool, ErrUnknownPool)
			}
		}
		if len(e.Roster) > f.Capacity {
			return fmt.Errorf("event %s: pre-seeded roster exceeds capacity %d: %w",
				a.season.Key(ev), f.Capacity, ErrLockedRoster)
		}
		for p := range e.Locked {
			if int(p) < 0 || int(p) >= len(a.season.Players) {
				return fmt.Errorf("event %s: locked player id %d: %w", a.season.Key(ev), p, ErrLockedRoster)
			}
			pl := a.season.Player(p)
			if !a.registry.Contains(pl.Pool, p) {
				return fmt.Errorf("event %s: locked player %q not in pool %q: %w",
					a.season.Key(ev), pl.Name, pl.Pool, ErrLockedRoster)
			}
		}
	}
	return nil
}

// allocate fills one event's quotas in declared order.
func (a *Allocator) allocate(ctx context.Context, ev model.EventID, res *Result) {
	e := a.season.Event(ev)
	f := a.season.Formats[e.Year]

	a.log.Debug(ctx, "allocating event",
		logger.String("event", a.season.Key(ev)),
		logger.Int("year", e.Year),
		logger.Int("capacity", f.Capacity),
		logger.Int("locked", len(e.Locked)))

	for _, q := range f.Quotas {
		a.fill(ctx, ev, q.Pool, q.Count, res)
	}

	metrics.RecordEventAllocated()
	if len(e.Roster) < f.Capacity {
		a.log.Warn(ctx, "event roster short of capacity",
			logger.String("event", a.season.Key(ev)),
			logger.Int("roster", len(e.Roster)),
			logger.Int("capacity", f.Capacity))
	}
}

// fill draws players from one pool until the quota is met, the event
// capacity is reached, or candidates run out. Pre-seeded roster entries
// belonging to the pool count toward the quota.
func (a *Allocator) fill(ctx context.Context, ev model.EventID, pool string, quota int, res *Result) {
	e := a.season.Event(ev)
	capacity := a.season.Formats[e.Year].Capacity
	key := a.season.Key(ev)

	members, _ := a.registry.Pool(pool)
	candidates := a.eligible(ev, members)

	need := quota - a.rosteredFrom(ev, pool)
	if need < 0 {
		need = 0
	}

	filled := 0
	iterations := 0
	for filled < need && len(e.Roster) < capacity && len(candidates) > 0 {
		iterations++
		tiers := selection.Cascade(a.season, ev, candidates)

		var short selection.Shortlist
		for _, t := range tiers {
			if len(t.Players) > 0 {
				short = t
				break
			}
		}
		metrics.RecordCascadeTier(short.Tier.String())

		// Drain the winning shortlist in ascending order of the player's
		// participation in this capacity class before recomputing the
		// cascade against the updated statistics.
		for _, group := range groupByFormatCount(a.season, short.Players, capacity) {
			for len(group) > 0 && filled < need && len(e.Roster) < capacity {
				i := a.rng.Intn(len(group))
				pick := group[i]
				group = append(group[:i], group[i+1:]...)

				a.season.Assign(ev, pick)
				candidates = remove(candidates, pick)
				filled++

				metrics.RecordPlayerAssigned()
				res.Decisions = append(res.Decisions, Decision{
					Event:      key,
					Pool:       pool,
					Tier:       short.Tier,
					Candidates: len(short.Players),
					Player:     a.season.Player(pick).Name,
				})
				a.log.Debug(ctx, "player assigned",
					logger.String("event", key),
					logger.String("pool", pool),
					logger.String("player", a.season.Player(pick).Name),
					logger.String("tier", short.Tier.String()))
			}
		}
	}
	metrics.RecordFillIterations(float64(iterations))

	if filled < need {
		res.Underfills = append(res.Underfills, Underfill{Event: key, Pool: pool, Missing: need - filled})
		metrics.RecordQuotaUnderfill()
		a.log.Warn(ctx, "quota underfilled",
			logger.String("event", key),
			logger.String("pool", pool),
			logger.Int("missing", need-filled))
	}
}

// eligible filters out players already rostered for the event and players
// blocked for its key.
func (a *Allocator) eligible(ev model.EventID, members []model.PlayerID) []model.PlayerID {
	key := a.season.Key(ev)
	var out []model.PlayerID
	for _, id := range members {
		if a.season.Rostered(ev, id) {
			continue
		}
		if a.avail.IsUnavailable(a.season.Player(id).Name, key) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// rosteredFrom counts roster entries belonging to the pool, i.e. locked or
// previously seeded players that already satisfy part of the quota.
func (a *Allocator) rosteredFrom(ev model.EventID, pool string) int {
	n := 0
	for _, id := range a.season.Event(ev).Roster {
		if a.season.Player(id).Pool == pool {
			n++
		}
	}
	return n
}

// groupByFormatCount splits players into groups of equal participation in
// the given capacity class, returned in ascending count order. Grouping is
// computed once per cascade pass: picked players leave the groups, and the
// remaining players' counts cannot change until the next pass.
func groupByFormatCount(s *model.Season, players []model.PlayerID, capacity int) [][]model.PlayerID {
	byCount := make(map[int][]model.PlayerID)
	var counts []int
	for _, id := range players {
		n := fairness.FormatCount(s, id, capacity)
		if _, ok := byCount[n]; !ok {
			counts = append(counts, n)
		}
		byCount[n] = append(byCount[n], id)
	}
	sort.Ints(counts)

	groups := make([][]model.PlayerID, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, byCount[n])
	}
	return groups
}

func seededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible allocation
}

func remove(ids []model.PlayerID, id model.PlayerID) []model.PlayerID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
