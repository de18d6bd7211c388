package player

// Player is a ranked padel player as mirrored from the backend.
type Player struct {
	ID       string
	Name     string
	Surname  string
	Gender   string
	Score    int
	Club     string
	Category string

	Stats Stats

	// Pairing slots. A player occupies at most one pairing per position:
	// Drive is the forehand side, Back the revés side.
	Drive *PairingSlot
	Back  *PairingSlot

	Enrollments []Enrollment
}

// Stats are the nested player statistics expanded on detail fetches.
type Stats struct {
	MatchesPlayed     int
	MatchesWon        int
	TournamentsPlayed int
	TournamentsWon    int
}

// PairingSlot references the pairing a player occupies in one position.
type PairingSlot struct {
	PairingID   string
	PartnerID   string
	PartnerName string
}

// Enrollment is a tournament the player is enrolled in.
type Enrollment struct {
	TournamentID   string
	TournamentName string
}

// FullName renders "Name Surname" for display.
func (p *Player) FullName() string {
	if p.Surname == "" {
		return p.Name
	}
	return p.Name + " " + p.Surname
}
