package club

import (
	"context"
	"fmt"
)

// Service holds the club read operations. It knows nothing about the
// transport behind the repository or about the presentation layer.
type Service struct {
	repo Repository
}

// NewService creates a new club service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListClubs fetches all clubs.
func (s *Service) ListClubs(ctx context.Context) ([]*Club, error) {
	return s.repo.ListClubs(ctx)
}

// GetClub returns the club with the given id from a fresh club list.
func (s *Service) GetClub(ctx context.Context, id string) (*Club, error) {
	clubs, err := s.repo.ListClubs(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range clubs {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("club %s not found", id)
}
