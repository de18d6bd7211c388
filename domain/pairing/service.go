package pairing

import (
	"context"
	"fmt"

	"padelbot/domain/player"
	"padelbot/domain/validation"
)

// Service validates and creates pairings. Validation happens entirely
// client-side: a rejected pairing never reaches the backend.
type Service struct {
	repo Repository
}

// NewService creates a new pairing service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the proposed pairing against both players' current
// pairing slots and, only if valid, registers it on the backend.
//
// Rules:
//   - a player cannot pair with themselves
//   - the two players must not already share a pairing in these positions
//   - each player must have the target position free
func (s *Service) Create(ctx context.Context, token string, drive, back *player.Player) (*Pairing, error) {
	if token == "" {
		return nil, validation.Errorf("necesitás iniciar sesión para crear una pareja")
	}
	if drive == nil || back == nil {
		return nil, validation.Errorf("faltan jugadores para la pareja")
	}
	if drive.ID == back.ID {
		return nil, validation.Errorf("un jugador no puede formar pareja consigo mismo")
	}
	if drive.Drive != nil && drive.Drive.PartnerID == back.ID {
		return nil, validation.Errorf("%s y %s ya forman pareja en esas posiciones", drive.FullName(), back.FullName())
	}
	if drive.Drive != nil {
		return nil, validation.Errorf("%s ya ocupa la posición drive en otra pareja", drive.FullName())
	}
	if back.Back != nil {
		return nil, validation.Errorf("%s ya ocupa la posición revés en otra pareja", back.FullName())
	}

	p, err := s.repo.Create(ctx, token, drive.ID, back.ID)
	if err != nil {
		return nil, fmt.Errorf("crear pareja: %w", err)
	}
	return p, nil
}
