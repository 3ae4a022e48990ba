package usecase

import (
	"context"

	"github.com/suomipoikas/poikas-stats/internal/domain/graph"
	"github.com/suomipoikas/poikas-stats/internal/platform/cache"
)

const graphCacheKey = "graph"

// GraphBuilder produces a complete graph or an error.
type GraphBuilder interface {
	Build(ctx context.Context) (*graph.Graph, error)
}

// GraphCache builds the graph on first use and hands every later caller the
// same instance. A failed build leaves the cache empty so the next call
// retries. Callers must treat the returned graph as read-only.
type GraphCache struct {
	builder GraphBuilder
	store   *cache.Store[*graph.Graph]
	enabled bool
}

func NewGraphCache(builder GraphBuilder, enabled bool) *GraphCache {
	return &GraphCache{
		builder: builder,
		store:   cache.NewStore[*graph.Graph](0),
		enabled: enabled,
	}
}

func (c *GraphCache) Get(ctx context.Context) (*graph.Graph, error) {
	if !c.enabled {
		return c.builder.Build(ctx)
	}
	return c.store.GetOrLoad(ctx, graphCacheKey, c.builder.Build)
}

// Reset forgets the cached graph; the next Get rebuilds it.
func (c *GraphCache) Reset() {
	c.store.Reset()
}
