package strapi

import (
	"context"

	api "padelbot/api/strapi"
	"padelbot/domain/paging"
	"padelbot/domain/tournament"
)

var tournamentPopulate = []string{
	"club",
	"parejas.drive",
	"parejas.reves",
	"partidos.pareja1.drive",
	"partidos.pareja1.reves",
	"partidos.pareja2.drive",
	"partidos.pareja2.reves",
	"partidos.ganador",
}

type tournamentRepository struct {
	client *api.Client
}

// NewTournamentRepository creates the REST-backed tournament repository.
func NewTournamentRepository(client *api.Client) tournament.Repository {
	return &tournamentRepository{client: client}
}

func (r *tournamentRepository) List(ctx context.Context, page, pageSize int) ([]*tournament.Tournament, paging.Info, error) {
	q := api.NewQuery().
		Paginate(page, pageSize).
		Populate(tournamentPopulate...).
		Sort("fechaInicio:desc")

	var env api.Envelope[[]torneoDTO]
	if err := r.client.Get(ctx, "/api/torneos", q, &env); err != nil {
		return nil, paging.Info{}, err
	}

	tournaments := make([]*tournament.Tournament, 0, len(env.Data))
	for i := range env.Data {
		tournaments = append(tournaments, env.Data[i].toDomain())
	}
	return tournaments, pageInfo(env.Meta, page, len(tournaments)), nil
}

func (r *tournamentRepository) Get(ctx context.Context, id string) (*tournament.Tournament, error) {
	q := api.NewQuery().Populate(tournamentPopulate...)

	var env api.Envelope[torneoDTO]
	if err := r.client.Get(ctx, "/api/torneos/"+id, q, &env); err != nil {
		return nil, err
	}
	return env.Data.toDomain(), nil
}
