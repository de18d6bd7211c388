package tournament

import (
	"context"

	"padelbot/domain/paging"
)

// Repository interface for reading tournaments from the backend.
type Repository interface {
	// List fetches one page of tournaments, newest first.
	List(ctx context.Context, page, pageSize int) ([]*Tournament, paging.Info, error)

	// Get fetches one tournament with pairs and matches expanded.
	Get(ctx context.Context, id string) (*Tournament, error)
}
