package pairing

// Position is the side a player occupies in a pairing. The two positions
// are fixed and mutually exclusive.
type Position string

const (
	// PositionDrive is the forehand side.
	PositionDrive Position = "drive"
	// PositionBack is the revés (backhand) side.
	PositionBack Position = "reves"
)

// Pairing is a pair of players with fixed positions.
type Pairing struct {
	ID        string
	DriveID   string
	DriveName string
	BackID    string
	BackName  string
}
