package series

import "slices"

// Key is the natural key of a series.
type Key struct {
	Name      string
	Season    string
	Gender    string
	MatchType string
}

// Series groups matches of one event edition. Teams accumulates every side
// that has played in it.
type Series struct {
	ID        string   `json:"-"`
	Name      string   `json:"name" validate:"required"`
	Season    string   `json:"season" validate:"required"`
	Gender    string   `json:"gender" validate:"required"`
	MatchType string   `json:"match_type" validate:"required"`
	Teams     []string `json:"teams" validate:"dive,required"`
}

func New(key Key) Series {
	return Series{
		Name:      key.Name,
		Season:    key.Season,
		Gender:    key.Gender,
		MatchType: key.MatchType,
		Teams:     []string{},
	}
}

func (s Series) Key() Key {
	return Key{Name: s.Name, Season: s.Season, Gender: s.Gender, MatchType: s.MatchType}
}

// AddTeam appends teamID when absent and reports whether the set changed.
func (s *Series) AddTeam(teamID string) bool {
	if teamID == "" || slices.Contains(s.Teams, teamID) {
		return false
	}
	s.Teams = append(s.Teams, teamID)
	return true
}
