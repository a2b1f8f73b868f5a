package scoring

import (
	"math"

	"github.com/riskibarqy/fpl-advisor/internal/domain/fixture"
	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
)

const (
	formWeight          = 0.6
	pointsPerGameWeight = 0.4

	// maxPlayerScore is the score of a world-class player (form 8.0,
	// ppg 8.0 at neutral difficulty). The team rating denominator is fixed
	// against it so ratings are absolute, not relative to the squad.
	maxPlayerScore = 8.0

	ratingStarters = 11
	ratingCeiling  = 100
)

// referenceMax is 10 regular starters plus one doubled captain, all at
// maxPlayerScore: 10*8.0 + 1*8.0*2 = 96.0.
const referenceMax = float64(ratingStarters-1)*maxPlayerScore + maxPlayerScore*2

// difficultyModifier maps a fixture difficulty to a score multiplier. An
// easy fixture boosts the score, a hard one dampens it; unrecognized values
// fall back to 1.0.
func difficultyModifier(difficulty int) float64 {
	switch difficulty {
	case 1:
		return 1.2
	case 2:
		return 1.1
	case 3:
		return 1.0
	case 4:
		return 0.9
	case 5:
		return 0.8
	default:
		return 1.0
	}
}

// Score values a player against one fixture difficulty. The base blends
// recent form with season-long points per game; missing stats were already
// degraded to 0.0 at the provider edge, so the result never errors. No
// floor or ceiling is applied here.
func Score(p player.Player, difficulty int) float64 {
	base := p.Form*formWeight + p.PointsPerGame*pointsPerGameWeight
	return base * difficultyModifier(difficulty)
}

// Starter pairs a player with the resolved difficulty of their next fixture.
type Starter struct {
	Player     player.Player
	Difficulty int
}

// ResolveStarters annotates players with their next-gameweek difficulty.
func ResolveStarters(players []player.Player, gameweek int64, fixtures []fixture.Fixture) []Starter {
	out := make([]Starter, 0, len(players))
	for _, p := range players {
		out = append(out, Starter{
			Player:     p,
			Difficulty: fixture.DifficultyFor(p.ClubID, gameweek, fixtures),
		})
	}
	return out
}

// RateTeam aggregates a starting XI into a 0-100 rating. The captain's score
// counts double. The denominator is the fixed referenceMax, so a squad of
// world-class players with a captained star reaches 100; anything above the
// reference is capped. An empty XI rates 0.
func RateTeam(starters []Starter, captainID int64) int {
	if len(starters) == 0 {
		return 0
	}

	var total float64
	for _, s := range starters {
		score := Score(s.Player, s.Difficulty)
		if s.Player.ID == captainID {
			score *= 2
		}
		total += score
	}

	rating := math.Min(ratingCeiling, total/referenceMax*ratingCeiling)
	return int(math.Round(rating))
}
