package player

import (
	"context"

	"padelbot/domain/paging"
)

// SearchFilters are the discrete filters accepted by the player search.
// Empty values mean "no filter".
type SearchFilters struct {
	Gender     string
	CategoryID string
}

// ProfileUpdate carries the editable profile fields. Empty fields are left
// untouched.
type ProfileUpdate struct {
	Name    string
	Surname string
	Gender  string
}

// Repository interface for reading and updating players.
type Repository interface {
	// Search fetches one page of players matching the free-text term
	// (case-insensitive substring over name and surname, OR-combined) and
	// the discrete filters.
	Search(ctx context.Context, term string, f SearchFilters, page, pageSize int) ([]*Player, paging.Info, error)

	// Get fetches one player with stats, pairings and enrollments expanded.
	Get(ctx context.Context, id string) (*Player, error)

	// UpdateProfile updates the player's own profile. Requires the caller's
	// auth token.
	UpdateProfile(ctx context.Context, token, id string, upd ProfileUpdate) (*Player, error)
}
