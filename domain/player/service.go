package player

import (
	"context"
	"strings"

	"padelbot/domain/paging"
	"padelbot/domain/validation"
)

// DefaultPageSize is the page size used for player searches.
const DefaultPageSize = 25

// Service holds the player read/update operations.
type Service struct {
	repo Repository
}

// NewService creates a new player service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search fetches one page of players. page must be >= 1.
func (s *Service) Search(ctx context.Context, term string, f SearchFilters, page int) ([]*Player, paging.Info, error) {
	if page < 1 {
		return nil, paging.Info{}, validation.Errorf("la página debe ser mayor o igual a 1")
	}
	return s.repo.Search(ctx, strings.TrimSpace(term), f, page, DefaultPageSize)
}

// Get fetches one player by id.
func (s *Service) Get(ctx context.Context, id string) (*Player, error) {
	return s.repo.Get(ctx, id)
}

// UpdateProfile updates the caller's own profile.
func (s *Service) UpdateProfile(ctx context.Context, token, id string, upd ProfileUpdate) (*Player, error) {
	if token == "" {
		return nil, validation.Errorf("necesitás iniciar sesión para editar tu perfil")
	}
	if upd.Name == "" && upd.Surname == "" && upd.Gender == "" {
		return nil, validation.Errorf("no hay cambios para guardar")
	}
	return s.repo.UpdateProfile(ctx, token, id, upd)
}
