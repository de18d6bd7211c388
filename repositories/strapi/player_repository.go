package strapi

import (
	"context"

	api "padelbot/api/strapi"
	"padelbot/domain/paging"
	"padelbot/domain/player"
)

// playerPopulate expands everything the player views need in one request.
var playerPopulate = []string{
	"club.logo",
	"categoria",
	"estadisticas",
	"parejaDrive.drive",
	"parejaDrive.reves",
	"parejaReves.drive",
	"parejaReves.reves",
	"torneos",
}

type playerRepository struct {
	client *api.Client
}

// NewPlayerRepository creates the REST-backed player repository.
func NewPlayerRepository(client *api.Client) player.Repository {
	return &playerRepository{client: client}
}

func (r *playerRepository) Search(ctx context.Context, term string, f player.SearchFilters, page, pageSize int) ([]*player.Player, paging.Info, error) {
	q := api.NewQuery().
		Paginate(page, pageSize).
		Populate(playerPopulate...).
		SearchOr(term, "nombre", "apellido").
		Sort("ranking:desc")
	if f.Gender != "" {
		q.FilterEq("genero", f.Gender)
	}
	if f.CategoryID != "" {
		q.FilterEq("categoria.documentId", f.CategoryID)
	}

	var env api.Envelope[[]jugadorDTO]
	if err := r.client.Get(ctx, "/api/jugadors", q, &env); err != nil {
		return nil, paging.Info{}, err
	}

	players := make([]*player.Player, 0, len(env.Data))
	for i := range env.Data {
		players = append(players, env.Data[i].toDomain())
	}
	return players, pageInfo(env.Meta, page, len(players)), nil
}

func (r *playerRepository) Get(ctx context.Context, id string) (*player.Player, error) {
	q := api.NewQuery().Populate(playerPopulate...)

	var env api.Envelope[jugadorDTO]
	if err := r.client.Get(ctx, "/api/jugadors/"+id, q, &env); err != nil {
		return nil, err
	}
	return env.Data.toDomain(), nil
}

func (r *playerRepository) UpdateProfile(ctx context.Context, token, id string, upd player.ProfileUpdate) (*player.Player, error) {
	fields := map[string]string{}
	if upd.Name != "" {
		fields["nombre"] = upd.Name
	}
	if upd.Surname != "" {
		fields["apellido"] = upd.Surname
	}
	if upd.Gender != "" {
		fields["genero"] = upd.Gender
	}
	body := map[string]any{"data": fields}

	var env api.Envelope[jugadorDTO]
	if err := r.client.Put(ctx, "/api/jugadors/"+id, token, body, &env); err != nil {
		return nil, err
	}
	return env.Data.toDomain(), nil
}
