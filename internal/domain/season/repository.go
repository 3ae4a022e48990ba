package season

import "context"

// Repository describes season lookups needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
}
