package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/suomipoikas/poikas-stats/internal/domain/graph"
	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/player"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
)

func intPtr(v int) *int {
	return &v
}

func wonGame(opponent string, us, them int) season.Game {
	return season.Game{
		Opponent: opponent,
		Us:       intPtr(us),
		Them:     intPtr(them),
		Result:   season.ResultWon,
	}
}

// scenarioSeason is a finished Rec season with Alice and Bob and a single win
// where Alice scored twice.
func scenarioSeason() season.Season {
	game := wonGame("Team X", 4, 2)
	game.Stats = map[string]season.PlayerGameStats{
		"Alice": {Goals: 2, Assists: 1},
	}
	return season.Season{
		Year:     2022,
		Name:     season.NameFall,
		League:   season.LeagueRec,
		Playoffs: "eliminated",
		Roster:   []string{"Alice", "Bob"},
		Games:    []season.Game{game},
	}
}

func identities(names ...string) []player.Player {
	out := make([]player.Player, 0, len(names))
	for _, name := range names {
		out = append(out, player.Player{Name: name})
	}
	return out
}

func graphPlayers(names ...string) []*graph.Player {
	out := make([]*graph.Player, 0, len(names))
	for _, identity := range identities(names...) {
		out = append(out, graph.NewPlayer(identity))
	}
	return out
}

// staticRepos serves fixed data and counts how often it is read.
type staticRepos struct {
	players    []player.Player
	seasons    []season.Season
	history    []historical.SeasonStats
	playerErr  error
	playerRead int
}

func (r *staticRepos) Players() player.Repository        { return playerRepoFunc(r.listPlayers) }
func (r *staticRepos) Seasons() season.Repository        { return seasonRepoFunc(r.listSeasons) }
func (r *staticRepos) Historical() historical.Repository { return historyRepo{r} }

func (r *staticRepos) listPlayers(context.Context) ([]player.Player, error) {
	r.playerRead++
	if r.playerErr != nil {
		return nil, r.playerErr
	}
	return r.players, nil
}

func (r *staticRepos) listSeasons(context.Context) ([]season.Season, error) {
	return r.seasons, nil
}

type playerRepoFunc func(context.Context) ([]player.Player, error)

func (f playerRepoFunc) List(ctx context.Context) ([]player.Player, error) { return f(ctx) }

type seasonRepoFunc func(context.Context) ([]season.Season, error)

func (f seasonRepoFunc) List(ctx context.Context) ([]season.Season, error) { return f(ctx) }

type historyRepo struct{ r *staticRepos }

func (h historyRepo) List(context.Context) ([]historical.SeasonStats, error) {
	return h.r.history, nil
}

func (h historyRepo) Get(ctx context.Context, key season.Key) (historical.SeasonStats, bool, error) {
	return historyTable(h.r.history).Get(ctx, key)
}

// historyTable is a keyed historical source over a fixed slice; the first
// record for a key wins.
type historyTable []historical.SeasonStats

func (h historyTable) Get(_ context.Context, key season.Key) (historical.SeasonStats, bool, error) {
	for _, item := range h {
		if item.Key == key {
			return item, true, nil
		}
	}
	return historical.SeasonStats{}, false, nil
}

// sequenceIDs hands out prefix-1, prefix-2, ... so build IDs are predictable.
type sequenceIDs struct {
	prefix string
	next   atomic.Uint64
}

func (g *sequenceIDs) NewID() (string, error) {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1)), nil
}
