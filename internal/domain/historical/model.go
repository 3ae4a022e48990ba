package historical

import "github.com/suomipoikas/poikas-stats/internal/domain/season"

// SeasonStats is the arena's published record of one league season. It is
// scraped from the arena site and never modified by the pipeline.
type SeasonStats struct {
	Key       season.Key
	Title     string
	Standings []TeamStanding
	Players   []PlayerTotals
	Goalies   []GoalieTotals
}

type TeamStanding struct {
	Team           string
	Points         int
	Wins           int
	Losses         int
	Ties           int
	GamesPlayed    int
	OvertimeLosses int
	GoalsFor       int
	GoalsAgainst   int
	GoalDiff       int
}

// PlayerTotals is a skater's season line as reported by the arena.
type PlayerTotals struct {
	Name           string
	Number         string
	GamesPlayed    int
	Goals          int
	Assists        int
	Points         int
	PenaltyMinutes int
}

type GoalieTotals struct {
	Name           string
	Number         string
	GamesPlayed    int
	Wins           int
	Losses         int
	OvertimeLosses int
	Saves          int
	GoalsAgainst   int
	GAA            float64
	SavePercentage float64
	Shutouts       int
}

// Player returns the reported totals for name, if the arena listed them.
func (s *SeasonStats) Player(name string) (*PlayerTotals, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Players {
		if s.Players[i].Name == name {
			return &s.Players[i], true
		}
	}
	return nil, false
}

func (s *SeasonStats) Goalie(name string) (*GoalieTotals, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Goalies {
		if s.Goalies[i].Name == name {
			return &s.Goalies[i], true
		}
	}
	return nil, false
}
