package player

import (
	"fmt"
	"strings"
)

// Position represents the four FPL position categories.
type Position string

const (
	PositionGoalkeeper Position = "GKP"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// OrderedPositions lists the positions in display order, keeper first.
var OrderedPositions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

// FromElementType maps the upstream element_type code (1..4) to a Position.
func FromElementType(code int) (Position, bool) {
	switch code {
	case 1:
		return PositionGoalkeeper, true
	case 2:
		return PositionDefender, true
	case 3:
		return PositionMidfielder, true
	case 4:
		return PositionForward, true
	default:
		return "", false
	}
}

const (
	StatusAvailable = "a"
	StatusDoubtful  = "d"
	StatusInjured   = "i"
	StatusSuspended = "s"
)

// Player is an immutable snapshot of one pool member for a single analysis
// request. Form and PointsPerGame arrive as decimal strings upstream and are
// parsed at the provider edge; absent or malformed values degrade to 0.0.
type Player struct {
	ID            int64
	Name          string
	ClubID        int64
	Position      Position
	Price         int64 // tenths of a currency unit, e.g. 105 = 10.5
	Form          float64
	PointsPerGame float64
	Status        string
	TotalPoints   int
	Photo         string // raw upstream reference, e.g. "223094.jpg"
}

// PriceUnits exposes the fixed-point price as a decimal currency value.
func (p Player) PriceUnits() float64 {
	return float64(p.Price) / 10.0
}

// PhotoCode resolves the photo reference to its numeric asset code, or ""
// when the reference is absent or malformed. "" is the documented sentinel
// the presentation layer maps to a placeholder portrait.
func (p Player) PhotoCode() string {
	code := strings.TrimSuffix(strings.TrimSpace(p.Photo), ".jpg")
	if code == "" {
		return ""
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return code
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.ClubID <= 0 {
		return fmt.Errorf("player club id is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Price < 0 {
		return fmt.Errorf("player price cannot be negative")
	}

	return nil
}
