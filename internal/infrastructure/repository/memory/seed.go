package memory

import (
	"time"

	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/player"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
)

// The seed club is small but touches every derived field: a champion season,
// a current season, a goalie with shot counts and an arena line that beats
// the tracked totals.

func SeedPlayers() []player.Player {
	return []player.Player{
		{Name: "Aki Virtanen", Number: intPtr(9), Position: player.PositionCenter, Shoots: "L", Born: intPtr(1990), Role: player.RoleCaptain},
		{Name: "Mikko Laine", Number: intPtr(31), Position: player.PositionGoalie, Shoots: "L", Born: intPtr(2002)},
		{Name: "Juha Niemi", Number: intPtr(4), Position: player.PositionDefense, Shoots: "R", Born: intPtr(1985)},
		{Name: "Pekka Salo", Number: intPtr(17), Position: player.PositionLeftWing, Shoots: "R"},
	}
}

func SeedSeasons() []season.Season {
	return []season.Season{
		{
			Year:     2023,
			Name:     season.NameFall,
			League:   season.LeagueRec,
			Playoffs: season.PlayoffsChampions,
			Roster:   []string{"Aki Virtanen", "Mikko Laine", "Juha Niemi"},
			Games: []season.Game{
				{
					Opponent: "Ice Hogs", Us: intPtr(5), Them: intPtr(2),
					ShotsFor: intPtr(31), ShotsAgainst: intPtr(24),
					Result: season.ResultWon, Goalie: "Mikko Laine", Sisu: "Juha Niemi",
					Date: seedDate("2023-09-17"),
					Stats: map[string]season.PlayerGameStats{
						"Aki Virtanen": {Goals: 2, Assists: 1},
						"Juha Niemi":   {Assists: 2, Penalties: 1},
					},
				},
				{
					Opponent: "Puck Dynasty", Us: intPtr(3), Them: intPtr(3),
					Result: season.ResultTied, Goalie: "Mikko Laine",
					Date: seedDate("2023-09-24"),
					Stats: map[string]season.PlayerGameStats{
						"Aki Virtanen": {Goals: 1},
					},
				},
			},
		},
		{
			Year:     2024,
			Name:     season.NameSpring,
			League:   season.LeagueC,
			Playoffs: "eliminated",
			Roster:   []string{"Aki Virtanen", "Pekka Salo"},
			Wins:     intPtr(4),
			Losses:   intPtr(6),
		},
		{
			Year:     2024,
			Name:     season.NameFall,
			League:   season.LeagueRec,
			Playoffs: season.PlayoffsPending,
			Roster:   []string{"Aki Virtanen", "Mikko Laine", "Pekka Salo"},
			Games: []season.Game{
				{
					Opponent: "Ice Hogs", Us: intPtr(2), Them: intPtr(0),
					ShotsFor: intPtr(22), ShotsAgainst: intPtr(18),
					Result: season.ResultWon, Goalie: "Mikko Laine", Sisu: "Pekka Salo",
					Date: seedDate("2024-09-15"),
					Stats: map[string]season.PlayerGameStats{
						"Pekka Salo": {Goals: 1, Assists: 1},
					},
				},
				{Opponent: "Puck Dynasty", Result: season.ResultPending, Date: seedDate("2024-09-22")},
			},
		},
	}
}

func SeedHistorical() []historical.SeasonStats {
	return []historical.SeasonStats{
		{
			Key:   season.Key{Year: 2023, Name: season.NameFall, League: season.LeagueRec},
			Title: "Fall 2023 Rec League",
			Standings: []historical.TeamStanding{
				{Team: "Suomi Poikas", Points: 11, Wins: 5, Ties: 1, GamesPlayed: 6},
			},
			Players: []historical.PlayerTotals{
				{Name: "Aki Virtanen", Number: "9", GamesPlayed: 6, Goals: 7, Assists: 4, Points: 11},
			},
		},
	}
}

func seedDate(value string) *time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func intPtr(v int) *int {
	return &v
}
