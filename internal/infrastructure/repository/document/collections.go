// Package document implements the domain repositories on top of a
// docstore.Store, one collection per record type.
package document

const (
	TeamsCollection      = "teams"
	PlayersCollection    = "players"
	UmpiresCollection    = "umpires"
	StadiumsCollection   = "stadiums"
	SeriesCollection     = "series"
	MatchesCollection    = "matches"
	InningsCollection    = "innings"
	DeliveriesCollection = "deliveries"
	ScorecardsCollection = "player_scorecards"
)
