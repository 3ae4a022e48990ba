package loader

import (
	"context"

	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/player"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
)

// The repositories below re-read their files on every call; wrap them with
// the cache decorators when reads should be shared.

type PlayerRepository struct {
	loader *Loader
}

func NewPlayerRepository(loader *Loader) *PlayerRepository {
	return &PlayerRepository{loader: loader}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	club, err := r.loader.LoadClub(ctx)
	if err != nil {
		return nil, err
	}
	return club.Players, nil
}

type SeasonRepository struct {
	loader *Loader
}

func NewSeasonRepository(loader *Loader) *SeasonRepository {
	return &SeasonRepository{loader: loader}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	club, err := r.loader.LoadClub(ctx)
	if err != nil {
		return nil, err
	}
	return club.Seasons, nil
}

type HistoricalRepository struct {
	loader *Loader
}

func NewHistoricalRepository(loader *Loader) *HistoricalRepository {
	return &HistoricalRepository{loader: loader}
}

func (r *HistoricalRepository) List(ctx context.Context) ([]historical.SeasonStats, error) {
	return r.loader.LoadHistorical(ctx)
}

func (r *HistoricalRepository) Get(ctx context.Context, key season.Key) (historical.SeasonStats, bool, error) {
	items, err := r.loader.LoadHistorical(ctx)
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
