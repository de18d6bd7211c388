package auth

// Profile is the lightweight user profile returned by the identity
// endpoints and cached locally across restarts.
type Profile struct {
	ID       int64
	Username string
	Email    string
	// PlayerID links the account to its player record, when one exists.
	PlayerID string
}

// Session is an authenticated session: the JWT plus the cached profile.
type Session struct {
	Token string
	User  Profile
}
