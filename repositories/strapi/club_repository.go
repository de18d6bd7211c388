package strapi

import (
	"context"

	api "padelbot/api/strapi"
	"padelbot/domain/club"
)

type clubRepository struct {
	client *api.Client
}

// NewClubRepository creates the REST-backed club repository.
func NewClubRepository(client *api.Client) club.Repository {
	return &clubRepository{client: client}
}

func (r *clubRepository) ListClubs(ctx context.Context) ([]*club.Club, error) {
	q := api.NewQuery().Populate("logo", "categorias")

	var env api.Envelope[[]clubDTO]
	if err := r.client.Get(ctx, "/api/clubs", q, &env); err != nil {
		return nil, err
	}

	clubs := make([]*club.Club, 0, len(env.Data))
	for i := range env.Data {
		clubs = append(clubs, env.Data[i].toDomain())
	}
	return clubs, nil
}
