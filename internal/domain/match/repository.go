package match

import "context"

// Key identifies a match inside its series. Stage only takes part for
// unnumbered matches such as finals.
type Key struct {
	SeriesID    string
	MatchNumber int
	Stage       string
}

func NewKey(seriesID string, matchNumber int, stage string) Key {
	k := Key{SeriesID: seriesID, MatchNumber: matchNumber}
	if matchNumber == 0 {
		k.Stage = stage
	}
	return k
}

func (m Match) Key() Key {
	return NewKey(m.SeriesID, m.MatchNumber, m.Stage)
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	FindByKey(ctx context.Context, key Key) (Match, bool, error)
	Create(ctx context.Context, m Match) (Match, error)
	DeleteByKey(ctx context.Context, key Key) (int64, error)
}
