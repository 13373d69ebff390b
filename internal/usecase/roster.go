package usecase

// Roster maps the names a feed uses for people to resolved player ids and
// the team each of them plays for in this match.
type Roster struct {
	entries map[string]rosterEntry
}

type rosterEntry struct {
	playerID string
	teamID   string
}

func NewRoster() *Roster {
	return &Roster{entries: make(map[string]rosterEntry)}
}

func (r *Roster) Add(name, playerID, teamID string) {
	r.entries[name] = rosterEntry{playerID: playerID, teamID: teamID}
}

func (r *Roster) PlayerID(name string) (string, bool) {
	e, ok := r.entries[name]
	return e.playerID, ok
}

func (r *Roster) TeamID(name string) string {
	return r.entries[name].teamID
}

func (r *Roster) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

func (r *Roster) Len() int {
	return len(r.entries)
}
