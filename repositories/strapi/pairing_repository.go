package strapi

import (
	"context"

	api "padelbot/api/strapi"
	"padelbot/domain/pairing"
)

type pairingRepository struct {
	client *api.Client
}

// NewPairingRepository creates the REST-backed pairing repository.
func NewPairingRepository(client *api.Client) pairing.Repository {
	return &pairingRepository{client: client}
}

func (r *pairingRepository) Create(ctx context.Context, token, driveID, backID string) (*pairing.Pairing, error) {
	body := map[string]any{
		"data": map[string]string{
			"drive": driveID,
			"reves": backID,
		},
	}

	var env api.Envelope[parejaDTO]
	if err := r.client.Post(ctx, "/api/parejas", token, body, &env); err != nil {
		return nil, err
	}
	return env.Data.toDomain(), nil
}
