package usecase

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/suomipoikas/poikas-stats/internal/domain/graph"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
	"github.com/suomipoikas/poikas-stats/internal/domain/stats"
	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
	"github.com/suomipoikas/poikas-stats/internal/platform/naming"
)

const (
	defaultImageHost = "/images"
	playerURLPrefix  = "/players/"
)

// AggregatorOptions tunes the player pass.
type AggregatorOptions struct {
	ImageHost string
	Workers   int
}

// PlayerAggregator computes each player's per-season and career statistics
// from finished graph seasons. Seasons are only read, so players can be
// aggregated concurrently; each player is written by exactly one worker.
type PlayerAggregator struct {
	seasons   []*graph.Season
	leagues   map[string]*graph.League
	imageHost string
	workers   int
	logger    *logging.Logger
}

func NewPlayerAggregator(
	seasons []*graph.Season,
	leagues map[string]*graph.League,
	opts AggregatorOptions,
	logger *logging.Logger,
) *PlayerAggregator {
	if logger == nil {
		logger = logging.Default()
	}
	imageHost := strings.TrimRight(strings.TrimSpace(opts.ImageHost), "/")
	if imageHost == "" {
		imageHost = defaultImageHost
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	return &PlayerAggregator{
		seasons:   seasons,
		leagues:   leagues,
		imageHost: imageHost,
		workers:   workers,
		logger:    logger,
	}
}

// AggregateAll runs Aggregate for every player, fanning out over a worker
// pool when more than one worker is configured.
func (a *PlayerAggregator) AggregateAll(ctx context.Context, players []*graph.Player) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerAggregator.AggregateAll",
		attribute.Int("aggregate.players", len(players)),
		attribute.Int("aggregate.seasons", len(a.seasons)),
		attribute.Int("aggregate.workers", a.workers),
	)
	defer span.End()

	if a.workers == 1 || len(players) < 2 {
		for _, p := range players {
			if err := ctx.Err(); err != nil {
				return err
			}
			a.Aggregate(p)
		}
		return nil
	}

	pool, err := ants.NewPool(a.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, p := range players {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			a.Aggregate(p)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return fmt.Errorf("submit player %q to worker pool: %w", p.Name, err)
		}
	}
	workers.Wait()

	return ctx.Err()
}

// Aggregate fills in every computed field of p.
func (a *PlayerAggregator) Aggregate(p *graph.Player) {
	for _, s := range a.seasons {
		if !s.Lists(p.Name) {
			continue
		}

		ps := &graph.PlayerSeason{
			Year:       s.Year,
			SeasonName: s.Name,
			LeagueName: s.League,
			Season:     s,
			Stats:      stats.Default(),
		}

		if league, ok := a.leagues[s.League]; ok && league.Current == s {
			p.Active = true
			p.Current[s.League] = ps
		}
		if s.IsChampion() {
			p.Championships++
		}

		a.walkGames(p.Name, s, &ps.Stats)

		if totals, ok := s.Historical.Player(p.Name); ok {
			ps.Historical = totals
		}
		stats.Reconcile(&ps.Stats, ps.Historical)
		ps.Stats.SetTeamRecord(s.Record.Wins, s.Record.Losses, s.Record.Ties)
		ps.Stats.Finalize()

		p.Seasons[s.League] = append(p.Seasons[s.League], ps)

		p.Career.Add(ps.Stats)
		p.Career.Derive()
	}

	a.describe(p)
}

func (a *PlayerAggregator) walkGames(name string, s *graph.Season, rec *stats.Record) {
	for _, g := range s.Games {
		if !g.Counts() {
			continue
		}
		if g.Goalie == name {
			creditGoalie(g, rec)
		}
		if line, ok := g.StatsFor(name); ok {
			rec.Goals += line.Goals
			rec.Assists += line.Assists
			rec.Penalties += line.Penalties
		}
	}
}

func creditGoalie(g season.Game, rec *stats.Record) {
	against := g.GoalsAgainst()

	rec.GoalieGames++
	if g.HasShots() {
		rec.GoalieGamesWithShots++
		rec.ShotsFor += *g.ShotsFor
		rec.ShotsAgainst += *g.ShotsAgainst
		rec.GoalsAgainstWithShots += against
	}
	rec.GoalsAgainstEmptyNet += g.EmptyNetAgainst
	rec.GoalsAgainst += against
	if g.Them != nil && *g.Them == 0 {
		rec.Shutouts++
	}

	switch {
	case g.IsWin():
		rec.GoalieWins++
	case g.IsLoss():
		rec.GoalieLosses++
	case g.IsTie():
		rec.GoalieTies++
	}
}

// describe sets the identity-derived fields once all seasons are folded in.
func (a *PlayerAggregator) describe(p *graph.Player) {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, items := range p.Seasons {
		for _, ps := range items {
			if _, ok := seen[ps.Year]; ok {
				continue
			}
			seen[ps.Year] = struct{}{}
			years = append(years, ps.Year)
		}
	}
	sort.Ints(years)

	p.YearsActive = len(years)
	if len(years) > 0 {
		p.FirstYear = years[0]
		p.LastYear = years[len(years)-1]
	}

	p.Slug = naming.Slugify(p.Name)
	p.ImageURL = fmt.Sprintf("%s/players/%s.jpg", a.imageHost, p.Slug)
	p.ProfileURL = playerURLPrefix + p.Slug
	p.ProfileLink = fmt.Sprintf(`<a href="%s">%s</a>`, p.ProfileURL, html.EscapeString(p.Name))

	for league, ps := range p.Current {
		p.LeagueLinks[league] = fmt.Sprintf(`<a href="%s">%s</a>`, ps.Season.URL, naming.FullLeague(league))
	}
}
