package tournament

import (
	"context"

	"padelbot/domain/paging"
	"padelbot/domain/validation"
)

// DefaultPageSize is the page size used for tournament listings.
const DefaultPageSize = 10

// Service holds the tournament read operations.
type Service struct {
	repo Repository
}

// NewService creates a new tournament service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List fetches one page of tournaments, newest first. page must be >= 1.
func (s *Service) List(ctx context.Context, page int) ([]*Tournament, paging.Info, error) {
	if page < 1 {
		return nil, paging.Info{}, validation.Errorf("la página debe ser mayor o igual a 1")
	}
	return s.repo.List(ctx, page, DefaultPageSize)
}

// Get fetches one tournament by id.
func (s *Service) Get(ctx context.Context, id string) (*Tournament, error) {
	return s.repo.Get(ctx, id)
}
