package graph

import (
	"sort"
	"time"

	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/player"
	"github.com/suomipoikas/poikas-stats/internal/domain/stats"
	"github.com/suomipoikas/poikas-stats/internal/platform/naming"
)

// ageRoundingCutoff: birth month is unknown, so younger players are assumed
// to have had their birthday by the time the season is tracked.
const ageRoundingCutoff = 24

// PlayerSeason joins a player to one season they were rostered in.
type PlayerSeason struct {
	Year       int
	SeasonName string
	LeagueName string
	Season     *Season
	Stats      stats.Record
	Historical *historical.PlayerTotals
}

// Player is a club member with everything derived from their seasons.
type Player struct {
	player.Player

	Slug          string
	Seasons       map[string][]*PlayerSeason
	Current       map[string]*PlayerSeason
	Active        bool
	Career        stats.Record
	YearsActive   int
	FirstYear     int
	LastYear      int
	Championships int
	ImageURL      string
	ProfileURL    string
	ProfileLink   string
	LeagueLinks   map[string]string
}

// NewPlayer wraps an identity record with empty computed fields.
func NewPlayer(identity player.Player) *Player {
	return &Player{
		Player:      identity,
		Seasons:     make(map[string][]*PlayerSeason),
		Current:     make(map[string]*PlayerSeason),
		Career:      stats.Default(),
		LeagueLinks: make(map[string]string),
	}
}

// SeasonCount is the number of seasons across all leagues.
func (p *Player) SeasonCount() int {
	n := 0
	for _, items := range p.Seasons {
		n += len(items)
	}
	return n
}

// AllSeasons returns every PlayerSeason in chronological order.
func (p *Player) AllSeasons() []*PlayerSeason {
	out := make([]*PlayerSeason, 0, p.SeasonCount())
	for _, items := range p.Seasons {
		out = append(out, items...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return SeasonLess(out[i].Season, out[j].Season)
	})
	return out
}

// AgeAt approximates the player's age during the given year. ok is false when
// no birth year is known.
func (p *Player) AgeAt(year int) (age int, ok bool) {
	if p.Born == nil {
		return 0, false
	}
	return AgeAt(*p.Born, year), true
}

// Age is AgeAt for the calendar year of now.
func (p *Player) Age(now time.Time) (int, bool) {
	return p.AgeAt(now.Year())
}

func AgeAt(born, year int) int {
	age := year - born - 1
	if age < ageRoundingCutoff {
		age++
	}
	return age
}

// CurrentLink renders the link to a player's current season in a league, or
// the placeholder when they are not active there.
func (p *Player) CurrentLink(league string) string {
	if link, ok := p.LeagueLinks[league]; ok {
		return link
	}
	return naming.Placeholder
}
