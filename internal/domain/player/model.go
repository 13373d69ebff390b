package player

import "slices"

// Player is a person listed in a match registry. CricSheetID is the feed's
// stable identifier and is unique across the store.
type Player struct {
	ID           string   `json:"-"`
	Name         string   `json:"name" validate:"required"`
	FullName     string   `json:"full_name"`
	CricSheetID  string   `json:"cric_sheet_id" validate:"required"`
	Teams        []string `json:"teams" validate:"min=1,dive,required"`
	Role         string   `json:"role"`
	BattingStyle string   `json:"batting_style"`
	BowlingStyle string   `json:"bowling_style"`
	DateOfBirth  string   `json:"date_of_birth,omitempty"`
}

func (p Player) PlaysFor(teamID string) bool {
	return slices.Contains(p.Teams, teamID)
}

// AddTeam appends teamID to the player's teams and reports whether it was new.
// Teams are never removed.
func (p *Player) AddTeam(teamID string) bool {
	if teamID == "" || p.PlaysFor(teamID) {
		return false
	}
	p.Teams = append(p.Teams, teamID)
	return true
}
