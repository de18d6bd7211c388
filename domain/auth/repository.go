package auth

import "context"

// Repository interface over the identity endpoints of the backend.
type Repository interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, identifier, password string) (*Session, error)

	// Register creates an account and returns the new session.
	Register(ctx context.Context, username, email, password string) (*Session, error)

	// ForgotPassword triggers the reset email.
	ForgotPassword(ctx context.Context, email string) error

	// ConfirmEmail confirms an account with the emailed token.
	ConfirmEmail(ctx context.Context, token string) error
}

// SessionStore persists sessions across restarts, keyed by chat. This is
// the only client-side persistence in the system.
type SessionStore interface {
	Save(ctx context.Context, chatID int64, s *Session) error

	// Get returns the stored session, or nil when there is none.
	Get(ctx context.Context, chatID int64) (*Session, error)

	Delete(ctx context.Context, chatID int64) error
}
