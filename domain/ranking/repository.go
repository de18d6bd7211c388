package ranking

import "context"

// Repository interface for reading rankings from the backend.
type Repository interface {
	// ClubRanking fetches the internal ranking of one club category, with
	// player and club-logo relations expanded.
	ClubRanking(ctx context.Context, clubID, categoryID string) (*Category, error)

	// GlobalCategories fetches the lightweight index of global ranking
	// categories.
	GlobalCategories(ctx context.Context) ([]CategoryRef, error)

	// GlobalCategoryEntries fetches the ranked entries of one global
	// category.
	GlobalCategoryEntries(ctx context.Context, id string) (*Category, error)
}
