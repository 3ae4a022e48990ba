package player

import (
	"fmt"
	"strings"
)

// Position codes as they appear in the roster data. The set is open: codes not
// listed here are kept and displayed verbatim.
type Position string

const (
	PositionDefense   Position = "D"
	PositionGoalie    Position = "G"
	PositionForward   Position = "F"
	PositionCenter    Position = "C"
	PositionWing      Position = "W"
	PositionLeftWing  Position = "LW"
	PositionRightWing Position = "RW"
)

const RoleCaptain = "captain"

// Player is a club member's identity record as maintained by hand.
type Player struct {
	Name     string
	Number   *int
	Bio      string
	Position Position
	Shoots   string
	Height   string
	Weight   string
	Born     *int
	Role     string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Born != nil && *p.Born <= 0 {
		return fmt.Errorf("player %q birth year must be positive", p.Name)
	}

	return nil
}

func (p Player) IsCaptain() bool {
	return p.Role == RoleCaptain
}
