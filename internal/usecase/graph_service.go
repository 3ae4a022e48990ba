package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/suomipoikas/poikas-stats/internal/domain/graph"
	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/player"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
	idgen "github.com/suomipoikas/poikas-stats/internal/platform/id"
	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
)

// GraphService assembles the club graph from the raw repositories.
type GraphService struct {
	playerRepo     player.Repository
	seasonRepo     season.Repository
	historicalRepo historical.Repository
	opts           AggregatorOptions
	ids            idgen.Generator
	logger         *logging.Logger
}

func NewGraphService(
	playerRepo player.Repository,
	seasonRepo season.Repository,
	historicalRepo historical.Repository,
	opts AggregatorOptions,
	ids idgen.Generator,
	logger *logging.Logger,
) *GraphService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = idgen.NewRandomGenerator(0)
	}
	return &GraphService{
		playerRepo:     playerRepo,
		seasonRepo:     seasonRepo,
		historicalRepo: historicalRepo,
		opts:           opts,
		ids:            ids,
		logger:         logger,
	}
}

// Build constructs a fresh graph. Any error aborts the whole build; no
// partial graph is returned.
func (s *GraphService) Build(ctx context.Context) (*graph.Graph, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GraphService.Build")
	defer span.End()

	buildID, err := s.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate build id: %w", err)
	}
	span.SetAttributes(attribute.String("graph.build_id", buildID))
	logger := s.logger.With("build_id", buildID)

	start := time.Now()
	logger.InfoContext(ctx, "graph build started")

	identities, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	rawSeasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	history, err := s.historicalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list historical stats: %w", err)
	}

	players, err := s.preparePlayers(identities)
	if err != nil {
		return nil, err
	}
	rawSeasons, err = prepareSeasons(rawSeasons)
	if err != nil {
		return nil, err
	}

	index := graph.NewIndex()
	builder := NewSeasonBuilder(players, s.historicalRepo, index, logger)
	seasons := make([]*graph.Season, 0, len(rawSeasons))
	for _, raw := range rawSeasons {
		built, err := builder.Build(ctx, raw)
		if err != nil {
			return nil, fmt.Errorf("build season %s: %w", raw.Key(), err)
		}
		seasons = append(seasons, built)
	}

	warnUnmatchedHistory(ctx, logger, history, rawSeasons)
	leagues, leagueNames := groupLeagues(seasons)

	aggregator := NewPlayerAggregator(seasons, leagues, s.opts, logger)
	if err := aggregator.AggregateAll(ctx, players); err != nil {
		return nil, fmt.Errorf("aggregate players: %w", err)
	}

	visible := make([]*graph.Player, 0, len(players))
	for _, p := range players {
		if p.SeasonCount() == 0 {
			logger.DebugContext(ctx, "player has no seasons", "name", p.Name)
			continue
		}
		visible = append(visible, p)
	}
	warnSlugCollisions(ctx, logger, visible)

	span.SetAttributes(
		attribute.Int("graph.players", len(visible)),
		attribute.Int("graph.seasons", len(seasons)),
	)
	logger.InfoContext(ctx, "graph build finished",
		"players", len(visible),
		"dropped_players", len(players)-len(visible),
		"seasons", len(seasons),
		"leagues", len(leagueNames),
		"historical_seasons", len(history),
		"duration", time.Since(start),
	)

	return graph.New(leagues, leagueNames, visible, seasons, index), nil
}

func (s *GraphService) preparePlayers(identities []player.Player) ([]*graph.Player, error) {
	players := make([]*graph.Player, 0, len(identities))
	for _, identity := range identities {
		if err := identity.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		players = append(players, graph.NewPlayer(identity))
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
	return players, nil
}

func prepareSeasons(raw []season.Season) ([]season.Season, error) {
	out := make([]season.Season, 0, len(raw))
	for _, item := range raw {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return graph.KeyLess(out[i].Key(), out[j].Key())
	})
	return out, nil
}

// groupLeagues buckets seasons by league name. The league's current season
// is the latest one still pending.
func groupLeagues(seasons []*graph.Season) (map[string]*graph.League, []string) {
	leagues := make(map[string]*graph.League)
	names := make([]string, 0)
	for _, s := range seasons {
		l, ok := leagues[s.League]
		if !ok {
			l = &graph.League{Name: s.League}
			leagues[s.League] = l
			names = append(names, s.League)
		}
		l.Seasons = append(l.Seasons, s)
		if s.Current {
			l.Current = s
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return graph.LeagueLess(names[i], names[j])
	})
	return leagues, names
}

// Two players sharing a slug cannot both be addressed; the loader is expected
// to keep names unique, so this only reports the problem.
func warnSlugCollisions(ctx context.Context, logger *logging.Logger, players []*graph.Player) {
	seen := make(map[string]string, len(players))
	for _, p := range players {
		if other, ok := seen[p.Slug]; ok {
			logger.WarnContext(ctx, "players share a slug", "slug", p.Slug, "first", other, "second", p.Name)
			continue
		}
		seen[p.Slug] = p.Name
	}
}

// Historical records are attached by season key; one with no club season
// behind it is never shown.
func warnUnmatchedHistory(ctx context.Context, logger *logging.Logger, history []historical.SeasonStats, seasons []season.Season) {
	known := make(map[season.Key]struct{}, len(seasons))
	for _, raw := range seasons {
		known[raw.Key()] = struct{}{}
	}
	for _, item := range history {
		if _, ok := known[item.Key]; ok {
			continue
		}
		logger.WarnContext(ctx, "historical stats have no matching season", "season", item.Key.String(), "title", item.Title)
	}
}
