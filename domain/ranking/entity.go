package ranking

// Entry is one (player, category) ranking row.
type Entry struct {
	PlayerID    string
	PlayerName  string
	ClubName    string
	ClubLogoURL string
	Score       int
	Position    int
}

// Category groups the ranked entries of one category.
type Category struct {
	ID      string
	Name    string
	Entries []Entry
}

// CategoryRef is a lightweight category reference from the global index.
type CategoryRef struct {
	ID   string
	Name string
}
