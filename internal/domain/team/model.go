package team

const (
	TypeClub          = "club"
	TypeInternational = "international"
)

// Team is a side that appears in match feeds, unique by (name, team_type).
type Team struct {
	ID       string `json:"-"`
	Name     string `json:"name" validate:"required"`
	Country  string `json:"country"`
	TeamType string `json:"team_type" validate:"required,oneof=club international"`
}

// New builds a team record from its natural key. International sides carry
// their own name as the country.
func New(name, teamType string) Team {
	t := Team{Name: name, TeamType: teamType}
	if teamType == TypeInternational {
		t.Country = name
	}
	return t
}
