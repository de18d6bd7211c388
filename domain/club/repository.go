package club

import "context"

// Repository interface for reading clubs from the backend.
type Repository interface {
	// ListClubs fetches all clubs with their logo and categories expanded.
	ListClubs(ctx context.Context) ([]*Club, error)
}
