package historical

import (
	"context"

	"github.com/suomipoikas/poikas-stats/internal/domain/season"
)

// Repository exposes the historical arena statistics.
type Repository interface {
	List(ctx context.Context) ([]SeasonStats, error)
	Get(ctx context.Context, key season.Key) (SeasonStats, bool, error)
}
