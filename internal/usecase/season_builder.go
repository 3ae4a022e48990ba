package usecase

import (
	"context"
	"fmt"
	"html"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/suomipoikas/poikas-stats/internal/domain/graph"
	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
	"github.com/suomipoikas/poikas-stats/internal/platform/naming"
)

const (
	seasonURLPrefix   = "/seasons/"
	opponentURLPrefix = "/vs/"
)

// HistoricalLookup resolves the arena statistics recorded for one season.
// historical.Repository satisfies it.
type HistoricalLookup interface {
	Get(ctx context.Context, key season.Key) (historical.SeasonStats, bool, error)
}

// SeasonBuilder turns raw seasons into graph seasons and records their
// cross-references in a shared index. Seasons must go through Describe,
// ResolveRoster and LinkGames in that order; Build does all three.
type SeasonBuilder struct {
	index      *graph.Index
	players    map[string]*graph.Player
	historical HistoricalLookup
	logger     *logging.Logger
}

func NewSeasonBuilder(
	players []*graph.Player,
	history HistoricalLookup,
	index *graph.Index,
	logger *logging.Logger,
) *SeasonBuilder {
	if logger == nil {
		logger = logging.Default()
	}

	byName := make(map[string]*graph.Player, len(players))
	for _, p := range players {
		if _, exists := byName[p.Name]; !exists {
			byName[p.Name] = p
		}
	}
	return &SeasonBuilder{
		index:      index,
		players:    byName,
		historical: history,
		logger:     logger,
	}
}

func (b *SeasonBuilder) Build(ctx context.Context, raw season.Season) (*graph.Season, error) {
	key := raw.Key()
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonBuilder.Build",
		attribute.String("season.key", key.Path()),
		attribute.Int("season.games", len(raw.Games)),
	)
	defer span.End()

	s, err := b.Describe(ctx, raw)
	if err != nil {
		return nil, err
	}
	b.ResolveRoster(s)
	if err := b.LinkGames(s); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("season.historical", s.Historical != nil))
	return s, nil
}

// Describe derives the fields that need nothing but the season itself and
// the historical source.
func (b *SeasonBuilder) Describe(ctx context.Context, raw season.Season) (*graph.Season, error) {
	s := &graph.Season{
		Season:  raw,
		Current: raw.IsCurrent(),
		Record: graph.TeamRecord{
			Wins:   derefInt(raw.Wins),
			Losses: derefInt(raw.Losses),
			Ties:   derefInt(raw.Ties),
		},
	}

	key := raw.Key()
	s.URL = seasonURLPrefix + key.Path()
	s.Link = fmt.Sprintf(`<a href="%s">%s</a>`, s.URL, html.EscapeString(key.String()))
	if b.historical != nil {
		stats, ok, err := b.historical.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("get historical stats %s: %w", key, err)
		}
		if ok {
			s.Historical = &stats
		}
	}

	return s, nil
}

// ResolveRoster maps roster names to players. Names with no identity record
// are dropped.
func (b *SeasonBuilder) ResolveRoster(s *graph.Season) {
	resolved := make([]*graph.Player, 0, len(s.Roster))
	for _, name := range s.Roster {
		p, ok := b.players[name]
		if !ok {
			b.logger.Debug("roster name has no player record", "season", s.Title(), "name", name)
			continue
		}
		resolved = append(resolved, p)
	}
	b.index.SetRoster(s.Key(), resolved)
}

// LinkGames tallies the season record from its games and resolves each
// game's sisu recipient, goalie and opponent link. Names resolve against the
// season's own roster, which must already be resolved.
func (b *SeasonBuilder) LinkGames(s *graph.Season) error {
	key := s.Key()
	if _, ok := b.index.Roster(key); !ok {
		return crerr.WithAssertionFailure(
			crerr.Wrapf(ErrPreconditionViolated, "season %s: games linked before roster was resolved", key),
		)
	}
	if !s.HasGames() {
		return nil
	}

	var record graph.TeamRecord
	refs := make([]graph.GameRef, 0, len(s.Games))
	for i, g := range s.Games {
		switch {
		case g.IsWin():
			record.Wins++
		case g.IsLoss():
			record.Losses++
		case g.IsTie():
			record.Ties++
		}

		slug := naming.Slugify(g.Opponent)
		url := opponentURLPrefix + slug
		refs = append(refs, graph.GameRef{
			Season:       s,
			Index:        i,
			Game:         g,
			SisuPlayer:   b.index.FindPlayer(key, g.Sisu),
			GoaliePlayer: b.index.FindPlayer(key, g.Goalie),
			OpponentSlug: slug,
			OpponentURL:  url,
			OpponentLink: fmt.Sprintf(`<a href="%s">%s</a>`, url, html.EscapeString(g.Opponent)),
		})
	}

	s.Record = record
	b.index.SetGames(key, refs)
	return nil
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
