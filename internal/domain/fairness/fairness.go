// Package fairness computes participation statistics from a player's
// history. All functions are pure and recompute from the history on every
// call: histories mutate during allocation, so cached values would go stale
// between fills.
package fairness

import (
	"github.com/okian/lineup/internal/domain/model"
)

// Metric selects which participation count to evaluate.
type Metric int

const (
	// Games counts every history entry.
	Games Metric = iota
	// HomeGames counts history entries at a home venue.
	HomeGames
	// AwayGames counts history entries at an away venue.
	AwayGames
)

// String returns the metric name for logs and traces.
func (m Metric) String() string {
	switch m {
	case Games:
		return "games"
	case HomeGames:
		return "home_games"
	case AwayGames:
		return "away_games"
	default:
		return "unknown"
	}
}

// Count evaluates the metric over the player's history.
func Count(s *model.Season, id model.PlayerID, m Metric) int {
	p := s.Player(id)
	switch m {
	case Games:
		return len(p.History)
	case HomeGames, AwayGames:
		n := 0
		for _, ev := range p.History {
			if s.IsHome(ev) == (m == HomeGames) {
				n++
			}
		}
		return n
	default:
		return 0
	}
}

// GamesCount returns the player's total assignment count.
func GamesCount(s *model.Season, id model.PlayerID) int {
	return Count(s, id, Games)
}

// HomeGamesCount returns the player's home assignment count.
func HomeGamesCount(s *model.Season, id model.PlayerID) int {
	return Count(s, id, HomeGames)
}

// AwayGamesCount returns the player's away assignment count.
func AwayGamesCount(s *model.Season, id model.PlayerID) int {
	return Count(s, id, AwayGames)
}

// SameWeekendPairCount returns the number of unordered pairs of history
// entries falling in the same ISO calendar week. Reporting statistic only.
func SameWeekendPairCount(s *model.Season, id model.PlayerID) int {
	hist := s.Player(id).History
	count := 0
	for i, a := range hist {
		for _, b := range hist[i+1:] {
			if model.SameISOWeek(s.Event(a).Start, s.Event(b).Start) {
				count++
			}
		}
	}
	return count
}

// FormatCount returns how many history entries belong to events whose format
// capacity equals capacity.
func FormatCount(s *model.Season, id model.PlayerID, capacity int) int {
	n := 0
	for _, ev := range s.Player(id).History {
		if c, ok := s.Capacity(ev); ok && c == capacity {
			n++
		}
	}
	return n
}

// LeastBy returns the subset of candidates with the minimum value of the
// metric, ties included. Input order is preserved so callers keep
// deterministic iteration.
func LeastBy(s *model.Season, candidates []model.PlayerID, m Metric) []model.PlayerID {
	var least []model.PlayerID
	best := 0
	for _, id := range candidates {
		n := Count(s, id, m)
		switch {
		case len(least) == 0 || n < best:
			least = append(least[:0], id)
			best = n
		case n == best:
			least = append(least, id)
		}
	}
	return least
}
