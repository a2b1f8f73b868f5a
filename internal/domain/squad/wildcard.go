package squad

import (
	"github.com/riskibarqy/fpl-advisor/internal/domain/fixture"
	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
	"github.com/riskibarqy/fpl-advisor/internal/domain/scoring"
)

// Rules stores the squad construction constraints the wildcard builder
// enforces. Prices and the budget cap are integer tenths of a currency
// unit, so the 100.0 budget is exact arithmetic.
type Rules struct {
	SquadSize         int
	BudgetCap         int64
	MaxPlayersPerClub int
	QuotaByPosition   map[player.Position]int
}

func DefaultRules() Rules {
	return Rules{
		SquadSize:         15,
		BudgetCap:         1000,
		MaxPlayersPerClub: 3,
		QuotaByPosition: map[player.Position]int{
			player.PositionGoalkeeper: 2,
			player.PositionDefender:   5,
			player.PositionMidfielder: 5,
			player.PositionForward:    3,
		},
	}
}

// ScorePool values every pool player against the given gameweek's fixture
// difficulty.
func ScorePool(pool []player.Player, gameweek int64, fixtures []fixture.Fixture) []ScoredPlayer {
	out := make([]ScoredPlayer, 0, len(pool))
	for _, p := range pool {
		difficulty := fixture.DifficultyFor(p.ClubID, gameweek, fixtures)
		out = append(out, ScoredPlayer{
			Player:     p,
			Difficulty: difficulty,
			Score:      scoring.Score(p, difficulty),
		})
	}
	return out
}

// BuildWildcard constructs a fresh squad from the full pool with a greedy
// scan over the pure score ranking: price is only a feasibility gate, never
// weighed against score. A player blocked by a quota, the club cap, or the
// remaining budget is skipped, not rejected — a later cheaper or
// quota-eligible player can still be admitted. Exhausting the pool before
// filling the squad yields a partial (degraded) squad, not an error. The
// result is intentionally the greedy heuristic's output, not an optimum.
func BuildWildcard(pool []player.Player, gameweek int64, fixtures []fixture.Fixture, rules Rules) Squad {
	ranked := ScorePool(pool, gameweek, fixtures)
	sortByScoreDesc(ranked)

	admitted := make([]ScoredPlayer, 0, rules.SquadSize)
	budget := rules.BudgetCap
	positionCount := make(map[player.Position]int, len(rules.QuotaByPosition))
	clubCount := make(map[int64]int)

	for _, sp := range ranked {
		if len(admitted) == rules.SquadSize {
			break
		}
		if clubCount[sp.Player.ClubID] >= rules.MaxPlayersPerClub {
			continue
		}
		if positionCount[sp.Player.Position] >= rules.QuotaByPosition[sp.Player.Position] {
			continue
		}
		if sp.Player.Price > budget {
			continue
		}

		admitted = append(admitted, sp)
		budget -= sp.Player.Price
		positionCount[sp.Player.Position]++
		clubCount[sp.Player.ClubID]++
	}

	return BuildLineup(admitted)
}
