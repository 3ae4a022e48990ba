package graph

import (
	"time"

	"github.com/suomipoikas/poikas-stats/internal/domain/season"
)

// GameRef is a game together with its resolved cross-references.
type GameRef struct {
	Season       *Season
	Index        int
	Game         season.Game
	SisuPlayer   *Player
	GoaliePlayer *Player
	OpponentSlug string
	OpponentURL  string
	OpponentLink string
}

func (g GameRef) League() string {
	if g.Season == nil {
		return ""
	}
	return g.Season.League
}

// Index is the cross-reference side table filled by the season builder:
// which players a season resolved to, which seasons listed a player, and the
// linked games of each season.
type Index struct {
	rosters map[season.Key][]*Player
	teams   map[string][]season.Key
	games   map[season.Key][]GameRef
}

func NewIndex() *Index {
	return &Index{
		rosters: make(map[season.Key][]*Player),
		teams:   make(map[string][]season.Key),
		games:   make(map[season.Key][]GameRef),
	}
}

// SetRoster records the resolved players of a season and appends the season
// to each player's list of teams.
func (x *Index) SetRoster(key season.Key, players []*Player) {
	x.rosters[key] = players
	for _, p := range players {
		x.teams[p.Name] = append(x.teams[p.Name], key)
	}
}

// Roster returns the resolved players of a season. ok is false until the
// roster has been resolved.
func (x *Index) Roster(key season.Key) (players []*Player, ok bool) {
	players, ok = x.rosters[key]
	return players, ok
}

// Teams lists the seasons whose roster resolved to the named player.
func (x *Index) Teams(name string) []season.Key {
	return x.teams[name]
}

func (x *Index) SetGames(key season.Key, games []GameRef) {
	x.games[key] = games
}

func (x *Index) Games(key season.Key) []GameRef {
	return x.games[key]
}

// FindPlayer looks a name up among a season's resolved players.
func (x *Index) FindPlayer(key season.Key, name string) *Player {
	if name == "" {
		return nil
	}
	for _, p := range x.rosters[key] {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// gameSortTime orders games by date when both have one.
func gameSortTime(g GameRef) (time.Time, bool) {
	if g.Game.Date == nil {
		return time.Time{}, false
	}
	return *g.Game.Date, true
}
