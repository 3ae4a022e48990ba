package memory

import (
	"context"
	"sync"

	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
)

// HistoricalRepository keeps the first record seen for each season key.
type HistoricalRepository struct {
	mu    sync.RWMutex
	items []historical.SeasonStats
	byKey map[season.Key]historical.SeasonStats
}

func NewHistoricalRepository(items []historical.SeasonStats) *HistoricalRepository {
	byKey := make(map[season.Key]historical.SeasonStats, len(items))
	kept := make([]historical.SeasonStats, 0, len(items))
	for _, item := range items {
		if _, exists := byKey[item.Key]; exists {
			continue
		}
		byKey[item.Key] = item
		kept = append(kept, item)
	}

	return &HistoricalRepository{items: kept, byKey: byKey}
}

func (r *HistoricalRepository) List(_ context.Context) ([]historical.SeasonStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]historical.SeasonStats, 0, len(r.items))
	out = append(out, r.items...)

	return out, nil
}

func (r *HistoricalRepository) Get(_ context.Context, key season.Key) (historical.SeasonStats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byKey[key]
	return item, ok, nil
}
