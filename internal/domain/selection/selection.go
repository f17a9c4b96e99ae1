// Package selection implements the tie-break cascade that narrows an
// event's candidate set to prioritized shortlists. The cascade is pure: it
// never mutates the season, so the engine can re-run it after every batch of
// picks.
package selection

import (
	"github.com/okian/lineup/internal/domain/fairness"
	"github.com/okian/lineup/internal/domain/model"
)

// Tier identifies which rung of the cascade produced a shortlist.
type Tier int

const (
	// TierRestedBalanced holds venue-balanced least-played candidates with
	// no other assignment in the event's ISO week.
	TierRestedBalanced Tier = iota
	// TierRested holds least-played candidates with no other assignment in
	// the event's ISO week.
	TierRested
	// TierBalanced holds least-played candidates minimizing the venue
	// metric (home games for home events, away games otherwise).
	TierBalanced
	// TierLeastPlayed holds the plain least-played candidates.
	TierLeastPlayed
)

// String returns the tier name for logs and traces.
func (t Tier) String() string {
	switch t {
	case TierRestedBalanced:
		return "rested_balanced"
	case TierRested:
		return "rested"
	case TierBalanced:
		return "balanced"
	case TierLeastPlayed:
		return "least_played"
	default:
		return "unknown"
	}
}

// Shortlist is one cascade rung with the candidates it retained.
type Shortlist struct {
	Tier    Tier
	Players []model.PlayerID
}

// Cascade narrows candidates for filling ev's roster and returns the four
// shortlists in priority order. The first non-empty shortlist wins; the
// final tier is non-empty whenever candidates is.
//
// While the roster holds fewer than two players, least-played priority
// players crowd out their non-priority peers so that trainer-linked players
// are represented early in every event.
func Cascade(s *model.Season, ev model.EventID, candidates []model.PlayerID) []Shortlist {
	least := fairness.LeastBy(s, candidates, fairness.Games)

	if len(s.Event(ev).Roster) < 2 {
		if pri := priorityOnly(s, least); len(pri) > 0 {
			least = pri
		}
	}

	metric := fairness.AwayGames
	if s.IsHome(ev) {
		metric = fairness.HomeGames
	}
	balanced := fairness.LeastBy(s, least, metric)

	return []Shortlist{
		{Tier: TierRestedBalanced, Players: rested(s, ev, balanced)},
		{Tier: TierRested, Players: rested(s, ev, least)},
		{Tier: TierBalanced, Players: balanced},
		{Tier: TierLeastPlayed, Players: least},
	}
}

// rested keeps players whose every history entry falls outside the event's
// ISO week. A player already scheduled that week is deprioritized here, not
// excluded from the lower tiers.
func rested(s *model.Season, ev model.EventID, players []model.PlayerID) []model.PlayerID {
	start := s.Event(ev).Start
	var out []model.PlayerID
	for _, id := range players {
		free := true
		for _, h := range s.Player(id).History {
			if model.SameISOWeek(s.Event(h).Start, start) {
				free = false
				break
			}
		}
		if free {
			out = append(out, id)
		}
	}
	return out
}

func priorityOnly(s *model.Season, players []model.PlayerID) []model.PlayerID {
	var out []model.PlayerID
	for _, id := range players {
		if s.Player(id).Priority() {
			out = append(out, id)
		}
	}
	return out
}
