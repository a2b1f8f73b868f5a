package fixture

// Difficulty ratings run 1 (easiest) to 5 (hardest); DifficultyNeutral is
// the documented fallback whenever a rating cannot be resolved.
const (
	DifficultyMin     = 1
	DifficultyNeutral = 3
	DifficultyMax     = 5
)

// Fixture is one scheduled match with per-side difficulty ratings.
// A club appears in at most one fixture per gameweek.
type Fixture struct {
	Gameweek       int64
	HomeClubID     int64
	AwayClubID     int64
	HomeDifficulty int
	AwayDifficulty int
}

// DifficultyFor returns the difficulty of clubID's fixture in the given
// gameweek. It returns DifficultyNeutral when the gameweek is unknown (0),
// the fixture list is empty, or the club has no fixture that week — callers
// never fail solely because fixtures could not be retrieved.
func DifficultyFor(clubID, gameweek int64, fixtures []Fixture) int {
	if gameweek == 0 || len(fixtures) == 0 {
		return DifficultyNeutral
	}

	for _, f := range fixtures {
		if f.Gameweek != gameweek {
			continue
		}
		if f.HomeClubID == clubID {
			return f.HomeDifficulty
		}
		if f.AwayClubID == clubID {
			return f.AwayDifficulty
		}
	}

	return DifficultyNeutral
}

// ForGameweek filters fixtures down to a single gameweek.
func ForGameweek(gameweek int64, fixtures []Fixture) []Fixture {
	out := make([]Fixture, 0, 10)
	for _, f := range fixtures {
		if f.Gameweek == gameweek {
			out = append(out, f)
		}
	}
	return out
}
