package strapi

import (
	"context"

	api "padelbot/api/strapi"
	"padelbot/domain/ranking"
)

type rankingRepository struct {
	client *api.Client
}

// NewRankingRepository creates the REST-backed ranking repository, serving
// both the per-club internal rankings and the global ranking index/detail
// pair.
func NewRankingRepository(client *api.Client) ranking.Repository {
	return &rankingRepository{client: client}
}

func (r *rankingRepository) ClubRanking(ctx context.Context, clubID, categoryID string) (*ranking.Category, error) {
	q := api.NewQuery().
		Populate("club.logo", "categoria", "entradasRanking.jugador", "entradasRanking.jugador.club.logo").
		FilterEq("club.documentId", clubID).
		FilterEq("categoria.documentId", categoryID)

	var env api.Envelope[[]rankingCategoriaDTO]
	if err := r.client.Get(ctx, "/api/ranking-categorias", q, &env); err != nil {
		return nil, err
	}

	// The (club, category) pair identifies at most one ranking; an absent
	// one is an empty category, not an error.
	if len(env.Data) == 0 {
		return &ranking.Category{ID: categoryID}, nil
	}
	return env.Data[0].toDomain(), nil
}

func (r *rankingRepository) GlobalCategories(ctx context.Context) ([]ranking.CategoryRef, error) {
	q := api.NewQuery().Populate("categoria")

	var env api.Envelope[[]rankingGlobalCategoriaDTO]
	if err := r.client.Get(ctx, "/api/ranking-global-categorias", q, &env); err != nil {
		return nil, err
	}

	refs := make([]ranking.CategoryRef, 0, len(env.Data))
	for _, d := range env.Data {
		refs = append(refs, d.toRef())
	}
	return refs, nil
}

func (r *rankingRepository) GlobalCategoryEntries(ctx context.Context, id string) (*ranking.Category, error) {
	q := api.NewQuery().Populate(
		"categoria",
		"entradasRankingGlobal.jugador",
		"entradasRankingGlobal.jugador.estadisticas",
		"entradasRankingGlobal.jugador.club.logo",
	)

	var env api.Envelope[rankingGlobalCategoriaDTO]
	if err := r.client.Get(ctx, "/api/ranking-global-categorias/"+id, q, &env); err != nil {
		return nil, err
	}
	return env.Data.toDomain(), nil
}

type rankingCategoriaDTO struct {
	DocumentID      string        `json:"documentId"`
	Categoria       *categoriaDTO `json:"categoria"`
	Club            *clubDTO      `json:"club"`
	EntradasRanking []entradaDTO  `json:"entradasRanking"`
}

func (d *rankingCategoriaDTO) toDomain() *ranking.Category {
	cat := &ranking.Category{
		ID:      d.DocumentID,
		Entries: entriesToDomain(d.EntradasRanking),
	}
	if d.Categoria != nil {
		cat.ID = d.Categoria.DocumentID
		cat.Name = d.Categoria.Nombre
	}
	return cat
}

type rankingGlobalCategoriaDTO struct {
	DocumentID            string        `json:"documentId"`
	Categoria             *categoriaDTO `json:"categoria"`
	EntradasRankingGlobal []entradaDTO  `json:"entradasRankingGlobal"`
}

func (d *rankingGlobalCategoriaDTO) toRef() ranking.CategoryRef {
	ref := ranking.CategoryRef{ID: d.DocumentID}
	if d.Categoria != nil {
		ref.Name = d.Categoria.Nombre
	}
	return ref
}

func (d *rankingGlobalCategoriaDTO) toDomain() *ranking.Category {
	cat := &ranking.Category{
		ID:      d.DocumentID,
		Entries: entriesToDomain(d.EntradasRankingGlobal),
	}
	if d.Categoria != nil {
		cat.Name = d.Categoria.Nombre
	}
	return cat
}
