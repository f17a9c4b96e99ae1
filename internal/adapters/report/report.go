// Package report renders allocation outcomes for the console: a per-player
// participation table, a per-event roster summary, and the list of quotas
// left short. It only reads the season; all numbers are recomputed from
// player histories.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/okian/lineup/internal/domain/engine"
	"github.com/okian/lineup/internal/domain/fairness"
	"github.com/okian/lineup/internal/domain/model"
)

// Players writes the per-player season statistics, one row per player in
// name order, with one trailing column per roster-capacity class.
func Players(w io.Writer, s *model.Season) {
	caps := s.Formats.Capacities()

	table := tablewriter.NewWriter(w)
	headers := []string{"Player", "Pool", "Games", "Home", "Away", "Same weekend"}
	for _, c := range caps {
		headers = append(headers, fmt.Sprintf("Cap %d", c))
	}
	table.SetHeader(headers)

	for _, id := range s.SortedPlayers() {
		p := s.Player(id)
		row := []string{
			p.Name,
			p.Pool,
			strconv.Itoa(fairness.GamesCount(s, id)),
			strconv.Itoa(fairness.HomeGamesCount(s, id)),
			strconv.Itoa(fairness.AwayGamesCount(s, id)),
			strconv.Itoa(fairness.SameWeekendPairCount(s, id)),
		}
		for _, c := range caps {
			row = append(row, strconv.Itoa(fairness.FormatCount(s, id, c)))
		}
		table.Append(row)
	}
	table.Render()
}

// Events writes one row per event with roster size, per-pool counts, and
// the number of priority players on the roster.
func Events(w io.Writer, s *model.Season) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Event", "Venue", "Side", "Year", "Roster", "Pools", "Priority"})

	for i := range s.Events {
		id := model.EventID(i)
		ev := s.Event(id)

		side := "away"
		if s.IsHome(id) {
			side = "home"
		}

		priority := 0
		perPool := make(map[string]int)
		for _, p := range ev.Roster {
			pl := s.Player(p)
			perPool[pl.Pool]++
			if pl.Priority() {
				priority++
			}
		}

		capacity, _ := s.Capacity(id)
		table.Append([]string{
			s.Key(id),
			ev.Venue,
			side,
			strconv.Itoa(ev.Year),
			fmt.Sprintf("%d/%d", len(ev.Roster), capacity),
			poolSummary(perPool),
			strconv.Itoa(priority),
		})
	}
	table.Render()
}

// Underfills writes one line per quota left short. Nothing is written when
// every quota was met.
func Underfills(w io.Writer, res *engine.Result) {
	for _, u := range res.Underfills {
		fmt.Fprintf(w, "short: %s pool %s missing %d\n", u.Event, u.Pool, u.Missing)
	}
}

func poolSummary(perPool map[string]int) string {
	names := make([]string, 0, len(perPool))
	for name := range perPool {
		names = append(names, name)
	}
	sort.Strings(names)

	out := ""
	for i, name := range names {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s:%d", name, perPool[name])
	}
	return out
}
