package memory

import (
	"context"
	"sync"

	"github.com/suomipoikas/poikas-stats/internal/domain/season"
)

type SeasonRepository struct {
	mu      sync.RWMutex
	seasons []season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	return &SeasonRepository{seasons: append([]season.Season(nil), seasons...)}
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.seasons))
	out = append(out, r.seasons...)

	return out, nil
}
