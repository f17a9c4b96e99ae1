package roster

// Availability is the per-player blackout index. Keys are player names and
// canonical event keys (model.KeyLayout, venue-suffixed in strict mode) so
// that equivalent events compare equal across data sources.
type Availability struct {
	blocked map[string]map[string]struct{}
}

// NewAvailability creates an empty index.
func NewAvailability() *Availability {
	return &Availability{blocked: make(map[string]map[string]struct{})}
}

// Block marks the player as unavailable for the event key.
func (a *Availability) Block(player, eventKey string) {
	keys, ok := a.blocked[player]
	if !ok {
		keys = make(map[string]struct{})
		a.blocked[player] = keys
	}
	keys[eventKey] = struct{}{}
}

// IsUnavailable reports whether the player is blocked for the event key.
func (a *Availability) IsUnavailable(player, eventKey string) bool {
	_, ok := a.blocked[player][eventKey]
	return ok
}
