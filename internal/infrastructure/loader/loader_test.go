package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/suomipoikas/poikas-stats/internal/domain/season"
	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
)

const clubJSON = `{
  "players": [
    {"name": "Aki Virtanen", "number": 9, "pos": "C", "shoots": "L", "wt": 185, "born": 1990, "role": "captain"},
    {"name": "Mikko Laine", "pos": "G"}
  ],
  "leagues": [
    {
      "year": 2023, "season": "Fall", "level": "Rec", "playoffs": "champions",
      "roster": ["Aki Virtanen", "Mikko Laine"],
      "description": "Back to back.",
      "games": [
        {"vs": "Ice Hogs", "us": 5, "them": 2, "shotsUs": 31, "shotsThem": 24, "emptyNet": 1,
         "result": "won", "sisu": "Aki Virtanen", "goalie": "Mikko Laine", "date": "2023-09-17",
         "stats": {"Aki Virtanen": {"goals": 2, "assists": 1, "penalties": 1}}},
        {"vs": "Puck Dynasty", "result": "pending", "date": "2023-09-24T19:30:00Z"}
      ]
    },
    {"year": 2019, "season": "Spring", "level": "C", "playoffs": "eliminated", "roster": ["Aki Virtanen"], "wins": 3, "losses": 7}
  ]
}`

const recHistoryJSON = `{
  "Fall 2023 Rec League": {
    "year": 2023, "season": "Fall", "level": "Rec",
    "standings": [{"team_name": "Suomi Poikas", "points": 11, "wins": 5, "losses": 0, "ties": 1, "games_played": 6, "otl": 0, "goals_for": 30, "goals_against": 12, "goal_differential": 18}],
    "players": [{"name": "Aki Virtanen", "number": "9", "games_played": 6, "goals": 7, "assists": 4, "points": 11, "penalty_minutes": 3}],
    "goalies": [{"name": "Mikko Laine", "number": "G", "games_played": 6, "wins": 5, "losses": 0, "ot_losses": 1, "saves": 140, "goals_against": 12, "gaa": 2.0, "save_percentage": 0.921, "shutouts": 1}]
  },
  "Unknown Level": {"year": 2023, "season": "Summer", "level": null, "standings": [], "players": [], "goalies": []}
}`

const cHistoryJSON = `{
  "Spring 2019 C League": {"year": 2019, "season": "Spring", "level": "C", "standings": [], "players": [], "goalies": []}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoader_LoadClub(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	l := New(Options{DataFile: writeFile(t, dir, "poikas.json", clubJSON)}, logging.NewNop())

	club, err := l.LoadClub(context.Background())
	require.NoError(t, err)
	require.Len(t, club.Players, 2)
	require.Len(t, club.Seasons, 2)

	aki := club.Players[0]
	require.Equal(t, "185", aki.Weight)
	require.True(t, aki.IsCaptain())
	require.Equal(t, 1990, *aki.Born)

	fall := club.Seasons[0]
	require.Equal(t, season.Key{Year: 2023, Name: "Fall", League: "Rec"}, fall.Key())
	require.Equal(t, "Back to back.", fall.Description)
	require.Len(t, fall.Games, 2)

	won := fall.Games[0]
	require.Equal(t, "Ice Hogs", won.Opponent)
	require.Equal(t, 31, *won.ShotsFor)
	require.Equal(t, 24, *won.ShotsAgainst)
	require.Equal(t, 1, won.EmptyNetAgainst)
	require.Equal(t, season.ResultWon, won.Result)
	require.Equal(t, "2023-09-17", won.Date.Format("2006-01-02"))
	line, ok := won.StatsFor("Aki Virtanen")
	require.True(t, ok)
	require.Equal(t, season.PlayerGameStats{Goals: 2, Assists: 1, Penalties: 1}, line)

	require.Equal(t, 19, fall.Games[1].Date.Hour())

	spring := club.Seasons[1]
	require.False(t, spring.HasGames())
	require.Equal(t, 3, *spring.Wins)
	require.Equal(t, 7, *spring.Losses)
	require.Nil(t, spring.Ties)
}

func TestLoader_LoadClubRejectsInvalidData(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `{"players": [`},
		{name: "missing player name", content: `{"players": [{"pos": "C"}], "leagues": []}`},
		{name: "unknown result", content: `{"players": [], "leagues": [{"year": 2020, "season": "Fall", "level": "Rec", "roster": [], "games": [{"vs": "X", "result": "abandoned"}]}]}`},
		{name: "bad date", content: `{"players": [], "leagues": [{"year": 2020, "season": "Fall", "level": "Rec", "roster": [], "games": [{"vs": "X", "date": "last tuesday"}]}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), "poikas.json", tc.content)
			_, err := New(Options{DataFile: path}, logging.NewNop()).LoadClub(context.Background())
			if !crerr.Is(err, ErrInvalidData) {
				t.Fatalf("expected ErrInvalidData, got %v", err)
			}
		})
	}
}

func TestLoader_LoadClubMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := New(Options{DataFile: path}, logging.NewNop()).LoadClub(context.Background())
	if err == nil {
		t.Fatalf("expected read error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoader_LoadHistoricalKeepsFileOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	l := New(Options{
		HistoricalFiles: []string{
			writeFile(t, dir, "rec.json", recHistoryJSON),
			writeFile(t, dir, "c.json", cHistoryJSON),
		},
		Workers: 2,
	}, logging.NewNop())

	items, err := l.LoadHistorical(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	rec := items[0]
	require.Equal(t, season.Key{Year: 2023, Name: "Fall", League: "Rec"}, rec.Key)
	require.Equal(t, "Fall 2023 Rec League", rec.Title)
	totals, ok := rec.Player("Aki Virtanen")
	require.True(t, ok)
	require.Equal(t, 7, totals.Goals)
	goalie, ok := rec.Goalie("Mikko Laine")
	require.True(t, ok)
	require.Equal(t, 1, goalie.OvertimeLosses)
	require.Equal(t, "Suomi Poikas", rec.Standings[0].Team)
	require.Equal(t, 18, rec.Standings[0].GoalDiff)

	require.Equal(t, season.LeagueC, items[1].Key.League)
}

func TestLoader_HistoricalRepositoryGet(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "c.json", cHistoryJSON)
	repo := NewHistoricalRepository(New(Options{HistoricalFiles: []string{path}}, logging.NewNop()))

	got, ok, err := repo.Get(context.Background(), season.Key{Year: 2019, Name: "Spring", League: "C"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Spring 2019 C League", got.Title)

	_, ok, err = repo.Get(context.Background(), season.Key{Year: 2019, Name: "Fall", League: "C"})
	require.NoError(t, err)
	require.False(t, ok)
}
