// Package cache decorates repositories whose reads are expensive, such as
// the file-backed loader sources, with an in-process memo.
package cache

import (
	"context"

	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/player"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
	basecache "github.com/suomipoikas/poikas-stats/internal/platform/cache"
)

const listKey = "list"

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store[[]player.Player]
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store[[]player.Player]) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := r.cache.GetOrLoad(ctx, "player:"+listKey, func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]player.Player(nil), items...), nil
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store[[]season.Season]
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store[[]season.Season]) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	items, err := r.cache.GetOrLoad(ctx, "season:"+listKey, func(ctx context.Context) ([]season.Season, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]season.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]season.Season(nil), items...), nil
}

type HistoricalRepository struct {
	next historical.Repository
	list *basecache.Store[[]historical.SeasonStats]
}

func NewHistoricalRepository(next historical.Repository, list *basecache.Store[[]historical.SeasonStats]) *HistoricalRepository {
	return &HistoricalRepository{next: next, list: list}
}

func (r *HistoricalRepository) List(ctx context.Context) ([]historical.SeasonStats, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	return append([]historical.SeasonStats(nil), items...), nil
}

// Get answers from the memoized list, so keyed lookups never reach the
// underlying files once the list is loaded. The first record for a key wins.
func (r *HistoricalRepository) Get(ctx context.Context, key season.Key) (historical.SeasonStats, bool, error) {
	items, err := r.load(ctx)
	if err != nil {
		return historical.SeasonStats{}, false, err
	}
	for _, item := range items {
		if item.Key == key {
			return item, true, nil
		}
	}

	return historical.SeasonStats{}, false, nil
}

func (r *HistoricalRepository) load(ctx context.Context) ([]historical.SeasonStats, error) {
	return r.list.GetOrLoad(ctx, "historical:"+listKey, func(ctx context.Context) ([]historical.SeasonStats, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]historical.SeasonStats(nil), items...), nil
	})
}
