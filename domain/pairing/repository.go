package pairing

import "context"

// Repository interface for creating pairings on the backend.
type Repository interface {
	// Create registers a new pairing: driveID on the drive side, backID on
	// the revés side. Requires the caller's auth token.
	Create(ctx context.Context, token, driveID, backID string) (*Pairing, error)
}
