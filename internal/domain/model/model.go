// Package model contains the in-memory season model shared across the
// allocation engine: players, events, and the format table.
//
// Players and events live in two arenas owned by Season and reference each
// other by index (PlayerID, EventID). Event rosters and player histories
// store indices, never pointers, so the bidirectional relation carries no
// ownership cycle.
package model

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// KeyLayout is the canonical layout for event keys used by blackout and
// locked-roster lookups, e.g. "2024-10-05 10:00".
const KeyLayout = "2006-01-02 15:04"

// defaultHomePattern matches the original club hall spelling variants.
const defaultHomePattern = `(?i)^sk.ndalshallen`

// PlayerID indexes Season.Players.
type PlayerID int

// EventID indexes Season.Events.
type EventID int

// Player is one selectable individual. History is append-only during a run.
type Player struct {
	Name    string
	Pool    string
	History []EventID
}

// Priority reports whether the player belongs to the privileged subset that
// is guaranteed early representation in each roster. A trailing asterisk on
// the name marks a trainer-linked player.
func (p *Player) Priority() bool {
	return strings.HasSuffix(p.Name, "*")
}

// Event is one scheduled fixture. Roster holds the assigned players; Locked
// marks the subset that was pre-seeded from a prior record and is never
// touched by the engine.
type Event struct {
	Start  time.Time
	End    time.Time
	Venue  string
	Year   int
	Roster []PlayerID
	Locked map[PlayerID]struct{}
}

// Season owns the player and event arenas for one allocation run.
type Season struct {
	Players []Player
	Events  []Event
	Formats FormatTable

	homeRe     *regexp.Regexp
	strictKeys bool
}

// Option applies a configuration option to a Season.
type Option func(*Season)

// WithHomePattern sets the regexp that classifies a venue as "home".
func WithHomePattern(pattern string) Option {
	return func(s *Season) {
		if pattern != "" {
			s.homeRe = regexp.MustCompile(pattern)
		}
	}
}

// WithFormats replaces the default format table.
func WithFormats(t FormatTable) Option {
	return func(s *Season) {
		if len(t) > 0 {
			s.Formats = t
		}
	}
}

// WithStrictKeys appends the venue to event keys so that events sharing a
// start time at different venues stay distinct.
func WithStrictKeys(strict bool) Option {
	return func(s *Season) {
		s.strictKeys = strict
	}
}

// NewSeason creates an empty season with configuration options applied.
func NewSeason(opts ...Option) *Season {
	s := &Season{
		Formats: DefaultFormats(),
		homeRe:  regexp.MustCompile(defaultHomePattern),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddPlayer appends a player to the arena and returns its id.
func (s *Season) AddPlayer(name, pool string) PlayerID {
	s.Players = append(s.Players, Player{Name: name, Pool: pool})
	return PlayerID(len(s.Players) - 1)
}

// AddEvent appends an event to the arena and returns its id.
func (s *Season) AddEvent(start, end time.Time, venue string, year int) EventID {
	s.Events = append(s.Events, Event{Start: start, End: end, Venue: venue, Year: year})
	return EventID(len(s.Events) - 1)
}

// Player returns the player for id. The pointer stays valid for the life of
// the season; the arena is never compacted.
func (s *Season) Player(id PlayerID) *Player {
	return &s.Players[id]
}

// Event returns the event for id.
func (s *Season) Event(id EventID) *Event {
	return &s.Events[id]
}

// IsHome reports whether the event's venue matches the home pattern.
func (s *Season) IsHome(id EventID) bool {
	return s.homeRe.MatchString(s.Events[id].Venue)
}

// Capacity returns the roster capacity for the event's format.
func (s *Season) Capacity(id EventID) (int, bool) {
	f, ok := s.Formats[s.Events[id].Year]
	return f.Capacity, ok
}

// Key returns the canonical lookup key for the event.
func (s *Season) Key(id EventID) string {
	ev := &s.Events[id]
	key := ev.Start.Format(KeyLayout)
	if s.strictKeys {
		key += " @ " + ev.Venue
	}
	return key
}

// Rostered reports whether the player is already on the event's roster.
func (s *Season) Rostered(ev EventID, p PlayerID) bool {
	for _, id := range s.Events[ev].Roster {
		if id == p {
			return true
		}
	}
	return false
}

// Assign adds the player to the event roster and the event to the player's
// history. It is the single mutation point of the bidirectional relation.
func (s *Season) Assign(ev EventID, p PlayerID) {
	s.Events[ev].Roster = append(s.Events[ev].Roster, p)
	s.Players[p].History = append(s.Players[p].History, ev)
}

// Lock pre-seeds the player onto the event roster and marks the entry as
// locked so the engine never selects or removes it.
func (s *Season) Lock(ev EventID, p PlayerID) {
	s.Assign(ev, p)
	e := &s.Events[ev]
	if e.Locked == nil {
		e.Locked = make(map[PlayerID]struct{})
	}
	e.Locked[p] = struct{}{}
}

// SortedPlayers returns all player ids ordered by name, for deterministic
// iteration and reporting.
func (s *Season) SortedPlayers() []PlayerID {
	ids := make([]PlayerID, len(s.Players))
	for i := range ids {
		ids[i] = PlayerID(i)
	}
	sort.Slice(ids, func(a, b int) bool {
		return s.Players[ids[a]].Name < s.Players[ids[b]].Name
	})
	return ids
}

// SameISOWeek reports whether two timestamps fall in the same ISO calendar
// week of the same ISO year.
func SameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}
