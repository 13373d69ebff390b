package cricsheet

import (
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// ErrInvalidFeed marks documents that decode but cannot describe a match.
var ErrInvalidFeed = crerr.New("invalid match feed")

// LoadFile reads and decodes one match file.
func LoadFile(path string) (Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return Match{}, crerr.Wrapf(err, "open match file %s", path)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return Match{}, crerr.Wrapf(err, "load %s", path)
	}
	return m, nil
}

func Decode(r io.Reader) (Match, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Match{}, crerr.Wrap(err, "read match feed")
	}

	var m Match
	if err := sonic.Unmarshal(raw, &m); err != nil {
		return Match{}, crerr.Mark(crerr.Wrap(err, "decode match feed"), ErrInvalidFeed)
	}
	if err := m.validate(); err != nil {
		return Match{}, crerr.Mark(err, ErrInvalidFeed)
	}
	return m, nil
}

func (m Match) validate() error {
	info := m.Info
	if len(info.Teams) != 2 {
		return crerr.Newf("expected 2 teams, got %d", len(info.Teams))
	}
	for _, name := range info.Teams {
		if strings.TrimSpace(name) == "" {
			return crerr.New("team name is empty")
		}
		if _, ok := info.Players[name]; !ok {
			return crerr.Newf("no players listed for team %q", name)
		}
	}
	if strings.TrimSpace(info.Venue) == "" {
		return crerr.New("venue is required")
	}
	if strings.TrimSpace(info.Event.Name) == "" {
		return crerr.New("event name is required")
	}
	if len(info.Dates) == 0 {
		return crerr.New("at least one match date is required")
	}
	for i, in := range m.Innings {
		if !info.hasTeam(in.Team) {
			return crerr.Newf("innings %d: unknown batting team %q", i+1, in.Team)
		}
		for _, over := range in.Overs {
			for j, d := range over.Deliveries {
				if d.Batter == "" || d.Bowler == "" || d.NonStriker == "" {
					return crerr.Newf("innings %d over %d delivery %d: batter, bowler and non_striker are required", i+1, over.Over, j+1)
				}
			}
		}
	}
	return nil
}

func (info Info) hasTeam(name string) bool {
	for _, team := range info.Teams {
		if team == name {
			return true
		}
	}
	return false
}

// SquadOf returns the team whose squad lists player, or "" when no squad does.
func (info Info) SquadOf(player string) string {
	for _, team := range info.Teams {
		for _, name := range info.Players[team] {
			if name == player {
				return team
			}
		}
	}
	return ""
}

// Opponent returns the other team of a two team match.
func (info Info) Opponent(team string) string {
	if len(info.Teams) != 2 {
		return ""
	}
	switch team {
	case info.Teams[0]:
		return info.Teams[1]
	case info.Teams[1]:
		return info.Teams[0]
	default:
		return ""
	}
}
