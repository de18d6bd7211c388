package tournament

import "time"

// Status is the tournament lifecycle status as reported by the backend.
type Status string

const (
	StatusOpen       Status = "Abierto"
	StatusInProgress Status = "En Curso"
	StatusFinished   Status = "Finalizado"
	StatusUpcoming   Status = "Próximamente"
)

// Tournament is a club tournament with its enrolled pairs and matches.
type Tournament struct {
	ID        string
	Name      string
	Status    Status
	StartDate time.Time
	EndDate   time.Time
	Club      string
	Pairs     []PairRef
	Matches   []Match
}

// PairRef references an enrolled pair with a display label
// ("García / López").
type PairRef struct {
	ID    string
	Label string
}

// Match is a single tournament match.
type Match struct {
	ID     string
	Round  string
	Court  string
	Date   time.Time
	Status string
	PairA  PairRef
	PairB  PairRef
	Sets   []SetResult
	// WinnerID is empty while the match has no result.
	WinnerID string
}

// SetResult holds the games won by each pair in one set.
type SetResult struct {
	GamesA int
	GamesB int
}
