package main

import (
	"math"
	"strconv"
	"time"

	"github.com/suomipoikas/poikas-stats/internal/domain/graph"
	"github.com/suomipoikas/poikas-stats/internal/domain/stats"
	"github.com/suomipoikas/poikas-stats/internal/platform/naming"
	"github.com/suomipoikas/poikas-stats/internal/usecase"
)

// Output shapes. Ratios are emitted as their formatted text because a goalie
// ratio with nothing to divide by is not representable in JSON.

const notableLimit = 40

type statsView struct {
	Goals          int         `json:"goals"`
	Assists        int         `json:"assists"`
	Points         int         `json:"points"`
	PenaltyMinutes int         `json:"pim"`
	Record         string      `json:"record"`
	Goalie         *goalieView `json:"goalie,omitempty"`
}

type goalieView struct {
	Games               int    `json:"games"`
	Record              string `json:"record"`
	ShotsAgainst        int    `json:"shotsAgainst"`
	Saves               int    `json:"saves"`
	SavePercentage      string `json:"savePercentage"`
	GoalsAgainstAverage string `json:"gaa"`
	AverageShotsAgainst string `json:"avgShotsAgainst"`
	Shutouts            int    `json:"shutouts"`
}

func newStatsView(r stats.Record) statsView {
	out := statsView{
		Goals:          r.Goals,
		Assists:        r.Assists,
		Points:         r.Points,
		PenaltyMinutes: r.PenaltyMinutes,
		Record:         r.Record,
	}
	if r.IsGoalie() {
		out.Goalie = &goalieView{
			Games:               r.GoalieGames,
			Record:              r.GoalieRecord,
			ShotsAgainst:        r.ShotsAgainst,
			Saves:               r.Saves,
			SavePercentage:      r.SavePercentageText,
			GoalsAgainstAverage: ratioText(r.GoalsAgainstAverage, r.GoalsAgainstAverageText),
			AverageShotsAgainst: r.AverageShotsAgainstText,
			Shutouts:            r.Shutouts,
		}
	}
	return out
}

func ratioText(v float64, text string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return naming.Placeholder
	}
	return text
}

type summaryView struct {
	Players       int                 `json:"players"`
	ActivePlayers int                 `json:"activePlayers"`
	Seasons       int                 `json:"seasons"`
	Leagues       []leagueSummaryView `json:"leagues"`
}

type leagueSummaryView struct {
	Name          string `json:"name"`
	Seasons       int    `json:"seasons"`
	Championships int    `json:"championships"`
	Record        string `json:"record"`
	Current       string `json:"current"`
}

func newSummaryView(s usecase.Summary) summaryView {
	out := summaryView{
		Players:       s.Players,
		ActivePlayers: s.ActivePlayers,
		Seasons:       s.Seasons,
		Leagues:       make([]leagueSummaryView, 0, len(s.Leagues)),
	}
	for _, l := range s.Leagues {
		out.Leagues = append(out.Leagues, leagueSummaryView{
			Name:          l.FullName,
			Seasons:       l.Seasons,
			Championships: l.Championships,
			Record:        l.Record.String(),
			Current:       l.Current,
		})
	}
	return out
}

type playerSeasonView struct {
	Season   string    `json:"season"`
	URL      string    `json:"url"`
	Playoffs string    `json:"playoffs"`
	Current  bool      `json:"current"`
	Stats    statsView `json:"stats"`
	Reported bool      `json:"reported"`
}

type playerView struct {
	Name          string             `json:"name"`
	Slug          string             `json:"slug"`
	Number        string             `json:"number"`
	Position      string             `json:"position"`
	Shoots        string             `json:"shoots"`
	Height        string             `json:"height"`
	Weight        string             `json:"weight"`
	Age           string             `json:"age"`
	Captain       bool               `json:"captain"`
	Active        bool               `json:"active"`
	Years         int                `json:"years"`
	FirstYear     int                `json:"firstYear"`
	LastYear      int                `json:"lastYear"`
	Championships int                `json:"championships"`
	ImageURL      string             `json:"imageUrl"`
	ProfileURL    string             `json:"profileUrl"`
	LeagueLinks   map[string]string  `json:"leagueLinks"`
	Seasons       []playerSeasonView `json:"seasons"`
	Career        statsView          `json:"career"`
	SisuAwards    []string           `json:"sisuAwards"`
}

func newPlayerView(g *graph.Graph, p *graph.Player) playerView {
	out := playerView{
		Name:          p.Name,
		Slug:          p.Slug,
		Number:        naming.Placeholder,
		Position:      naming.FullPos(string(p.Position)),
		Shoots:        naming.FullShoots(p.Shoots),
		Height:        orPlaceholder(p.Height),
		Weight:        orPlaceholder(p.Weight),
		Age:           naming.Placeholder,
		Captain:       p.IsCaptain(),
		Active:        p.Active,
		Years:         p.YearsActive,
		FirstYear:     p.FirstYear,
		LastYear:      p.LastYear,
		Championships: p.Championships,
		ImageURL:      p.ImageURL,
		ProfileURL:    p.ProfileURL,
		LeagueLinks:   make(map[string]string, len(g.LeagueNames)),
		Career:        newStatsView(p.Career),
	}
	if p.Number != nil {
		out.Number = strconv.Itoa(*p.Number)
	}
	if age, ok := p.Age(time.Now()); ok {
		out.Age = strconv.Itoa(age)
	}
	for _, league := range g.LeagueNames {
		out.LeagueLinks[league] = p.CurrentLink(league)
	}
	for _, ps := range p.AllSeasons() {
		out.Seasons = append(out.Seasons, playerSeasonView{
			Season:   ps.Season.Title(),
			URL:      ps.Season.URL,
			Playoffs: naming.FullPlayoffs(ps.Season.Playoffs),
			Current:  ps.Season.Current,
			Stats:    newStatsView(ps.Stats),
			Reported: ps.Historical != nil,
		})
	}
	for _, ref := range g.SisuGames(p) {
		out.SisuAwards = append(out.SisuAwards, ref.Season.Title()+" vs "+ref.Game.Opponent)
	}
	return out
}

type gameView struct {
	Season   string `json:"season,omitempty"`
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Result   string `json:"result"`
	Score    string `json:"score"`
	Shots    string `json:"shots"`
	Goalie   string `json:"goalie"`
	Sisu     string `json:"sisu"`
	Notable  string `json:"notable,omitempty"`
	Upcoming bool   `json:"upcoming,omitempty"`
}

func newGameView(ref graph.GameRef, withSeason bool) gameView {
	g := ref.Game
	out := gameView{
		Date:     naming.Placeholder,
		Opponent: g.Opponent,
		Result:   orPlaceholder(string(g.Result)),
		Score:    naming.Placeholder,
		Shots:    naming.Placeholder,
		Goalie:   naming.Placeholder,
		Sisu:     naming.Placeholder,
		Notable:  naming.NotableAbbr(g.Notable, notableLimit),
		Upcoming: g.IsUpcoming(),
	}
	if withSeason {
		out.Season = ref.Season.Title()
	}
	if g.Date != nil {
		out.Date = g.Date.Format(time.DateOnly)
	}
	if g.Us != nil && g.Them != nil {
		out.Score = strconv.Itoa(g.GoalsFor()) + "-" + strconv.Itoa(g.GoalsAgainst())
	}
	if g.HasShots() {
		out.Shots = strconv.Itoa(*g.ShotsFor) + "-" + strconv.Itoa(*g.ShotsAgainst)
	}
	if ref.GoaliePlayer != nil {
		out.Goalie = naming.ShortenName(ref.GoaliePlayer.Name)
	}
	if ref.SisuPlayer != nil {
		out.Sisu = naming.ShortenName(ref.SisuPlayer.Name)
	}
	if out.Notable == naming.Placeholder {
		out.Notable = ""
	}
	return out
}

type rosterView struct {
	Name   string    `json:"name"`
	Number string    `json:"number"`
	Stats  statsView `json:"stats"`
}

type seasonView struct {
	Title       string       `json:"title"`
	League      string       `json:"league"`
	Playoffs    string       `json:"playoffs"`
	Current     bool         `json:"current"`
	Record      string       `json:"record"`
	Description string       `json:"description,omitempty"`
	Roster      []rosterView `json:"roster"`
	Games       []gameView   `json:"games"`
	Standings   []string     `json:"standings,omitempty"`
}

func newSeasonView(g *graph.Graph, s *graph.Season) seasonView {
	out := seasonView{
		Title:       s.Title(),
		League:      naming.FullLeague(s.League),
		Playoffs:    naming.FullPlayoffs(s.Playoffs),
		Current:     s.Current,
		Record:      s.Record.String(),
		Description: s.Description,
	}

	roster, _ := g.Index.Roster(s.Key())
	for _, p := range roster {
		item := rosterView{Name: p.Name, Number: naming.Placeholder}
		if p.Number != nil {
			item.Number = strconv.Itoa(*p.Number)
		}
		for _, ps := range p.Seasons[s.League] {
			if ps.Season == s {
				item.Stats = newStatsView(ps.Stats)
			}
		}
		out.Roster = append(out.Roster, item)
	}
	for _, ref := range g.Index.Games(s.Key()) {
		out.Games = append(out.Games, newGameView(ref, false))
	}
	if s.Historical != nil {
		for _, row := range s.Historical.Standings {
			out.Standings = append(out.Standings, row.Team+" "+naming.FullRecord(row.Wins, row.Losses, row.Ties))
		}
	}
	return out
}

type opponentView struct {
	Name   string                `json:"name"`
	Slug   string                `json:"slug"`
	Record string                `json:"record"`
	Games  map[string][]gameView `json:"games"`
}

func newOpponentView(h usecase.OpponentHistory) opponentView {
	out := opponentView{
		Name:   h.Name,
		Slug:   h.Slug,
		Record: h.Record.String(),
		Games:  make(map[string][]gameView, len(h.Games)),
	}
	for league, refs := range h.Games {
		for _, ref := range refs {
			out.Games[league] = append(out.Games[league], newGameView(ref, true))
		}
	}
	return out
}

func orPlaceholder(v string) string {
	if v == "" {
		return naming.Placeholder
	}
	return v
}
