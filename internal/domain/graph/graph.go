package graph

import (
	"sort"

	"github.com/suomipoikas/poikas-stats/internal/domain/season"
)

// Graph is the finished club data graph.
type Graph struct {
	Leagues     map[string]*League
	LeagueNames []string
	Players     []*Player
	Seasons     []*Season
	Index       *Index

	playersBySlug map[string]*Player
	seasonsByKey  map[season.Key]*Season
}

// New assembles a graph from already-built parts and indexes them for lookup.
func New(leagues map[string]*League, leagueNames []string, players []*Player, seasons []*Season, index *Index) *Graph {
	g := &Graph{
		Leagues:       leagues,
		LeagueNames:   leagueNames,
		Players:       players,
		Seasons:       seasons,
		Index:         index,
		playersBySlug: make(map[string]*Player, len(players)),
		seasonsByKey:  make(map[season.Key]*Season, len(seasons)),
	}
	for _, p := range players {
		if _, exists := g.playersBySlug[p.Slug]; !exists {
			g.playersBySlug[p.Slug] = p
		}
	}
	for _, s := range seasons {
		g.seasonsByKey[s.Key()] = s
	}
	return g
}

// PlayerBySlug returns the first player (by name order) with the slug.
func (g *Graph) PlayerBySlug(slug string) (*Player, bool) {
	p, ok := g.playersBySlug[slug]
	return p, ok
}

func (g *Graph) Season(key season.Key) (*Season, bool) {
	s, ok := g.seasonsByKey[key]
	return s, ok
}

// GamesAgainst returns every game against the opponent whose slug matches,
// partitioned by league and in season order.
func (g *Graph) GamesAgainst(slug string) map[string][]GameRef {
	out := make(map[string][]GameRef)
	if slug == "" {
		return out
	}
	for _, s := range g.Seasons {
		for _, ref := range g.Index.Games(s.Key()) {
			if ref.OpponentSlug == slug {
				out[s.League] = append(out[s.League], ref)
			}
		}
	}
	return out
}

// OpponentName returns the display name of the first game matching slug.
func (g *Graph) OpponentName(slug string) (string, bool) {
	for _, s := range g.Seasons {
		for _, ref := range g.Index.Games(s.Key()) {
			if ref.OpponentSlug == slug {
				return ref.Game.Opponent, true
			}
		}
	}
	return "", false
}

// SisuGames lists the games where the player received the sisu award, by date
// when both games are dated and by season otherwise.
func (g *Graph) SisuGames(p *Player) []GameRef {
	var out []GameRef
	for _, s := range g.Seasons {
		for _, ref := range g.Index.Games(s.Key()) {
			if ref.SisuPlayer == p {
				out = append(out, ref)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := gameSortTime(out[i])
		tj, okJ := gameSortTime(out[j])
		if okI && okJ {
			return ti.Before(tj)
		}
		return out[i].Season.Year < out[j].Season.Year
	})
	return out
}
