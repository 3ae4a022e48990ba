package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/suomipoikas/poikas-stats/internal/domain/graph"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
	"github.com/suomipoikas/poikas-stats/internal/platform/naming"
)

// GraphSource hands out the finished graph.
type GraphSource interface {
	Get(ctx context.Context) (*graph.Graph, error)
}

// Summary is the club-wide overview.
type Summary struct {
	Players       int
	ActivePlayers int
	Seasons       int
	Leagues       []LeagueSummary
}

type LeagueSummary struct {
	Name          string
	FullName      string
	Seasons       int
	Championships int
	Current       string
	Record        graph.TeamRecord
}

// OpponentHistory is every game played against one opponent.
type OpponentHistory struct {
	Slug   string
	Name   string
	Games  map[string][]graph.GameRef
	Record graph.TeamRecord
}

// ClubService answers read queries against the graph.
type ClubService struct {
	graphs GraphSource
}

func NewClubService(graphs GraphSource) *ClubService {
	return &ClubService{graphs: graphs}
}

func (s *ClubService) Summary(ctx context.Context) (Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Summary")
	defer span.End()

	g, err := s.graphs.Get(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("get graph: %w", err)
	}

	out := Summary{
		Players: len(g.Players),
		Seasons: len(g.Seasons),
		Leagues: make([]LeagueSummary, 0, len(g.LeagueNames)),
	}
	for _, p := range g.Players {
		if p.Active {
			out.ActivePlayers++
		}
	}
	for _, name := range g.LeagueNames {
		league := g.Leagues[name]
		item := LeagueSummary{
			Name:     name,
			FullName: naming.FullLeague(name),
			Seasons:  len(league.Seasons),
			Current:  naming.Placeholder,
		}
		for _, ls := range league.Seasons {
			if ls.IsChampion() {
				item.Championships++
			}
			item.Record.Wins += ls.Record.Wins
			item.Record.Losses += ls.Record.Losses
			item.Record.Ties += ls.Record.Ties
		}
		if league.Current != nil {
			item.Current = league.Current.Title()
		}
		out.Leagues = append(out.Leagues, item)
	}

	return out, nil
}

func (s *ClubService) PlayerBySlug(ctx context.Context, slug string) (*graph.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.PlayerBySlug")
	defer span.End()

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: player slug is required", ErrInvalidInput)
	}

	g, err := s.graphs.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get graph: %w", err)
	}
	p, ok := g.PlayerBySlug(slug)
	if !ok {
		return nil, fmt.Errorf("%w: player=%s", ErrNotFound, slug)
	}

	return p, nil
}

func (s *ClubService) Season(ctx context.Context, year, name, league string) (*graph.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Season")
	defer span.End()

	key, err := parseSeasonKey(year, name, league)
	if err != nil {
		return nil, err
	}

	g, err := s.graphs.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get graph: %w", err)
	}
	found, ok := g.Season(key)
	if !ok {
		return nil, fmt.Errorf("%w: season=%s", ErrNotFound, key)
	}

	return found, nil
}

func (s *ClubService) GamesAgainst(ctx context.Context, slug string) (OpponentHistory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.GamesAgainst")
	defer span.End()

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return OpponentHistory{}, fmt.Errorf("%w: opponent slug is required", ErrInvalidInput)
	}

	g, err := s.graphs.Get(ctx)
	if err != nil {
		return OpponentHistory{}, fmt.Errorf("get graph: %w", err)
	}
	name, ok := g.OpponentName(slug)
	if !ok {
		return OpponentHistory{}, fmt.Errorf("%w: opponent=%s", ErrNotFound, slug)
	}

	out := OpponentHistory{Slug: slug, Name: name, Games: g.GamesAgainst(slug)}
	for _, refs := range out.Games {
		for _, ref := range refs {
			switch {
			case ref.Game.IsWin():
				out.Record.Wins++
			case ref.Game.IsLoss():
				out.Record.Losses++
			case ref.Game.IsTie():
				out.Record.Ties++
			}
		}
	}

	return out, nil
}

// parseSeasonKey accepts names and leagues in any case and normalizes them
// to the canonical spelling when one is known.
func parseSeasonKey(year, name, league string) (season.Key, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y <= 0 {
		return season.Key{}, fmt.Errorf("%w: invalid season year %q", ErrInvalidInput, year)
	}
	name = canonical(season.NameOrder, strings.TrimSpace(name))
	league = canonical(season.LeagueOrder, strings.TrimSpace(league))
	if name == "" {
		return season.Key{}, fmt.Errorf("%w: season name is required", ErrInvalidInput)
	}
	if league == "" {
		return season.Key{}, fmt.Errorf("%w: league is required", ErrInvalidInput)
	}

	return season.Key{Year: y, Name: name, League: league}, nil
}

func canonical(known []string, value string) string {
	for _, k := range known {
		if strings.EqualFold(k, value) {
			return k
		}
	}
	return value
}
