package transfer

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/fpl-advisor/internal/domain/fixture"
	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
	"github.com/riskibarqy/fpl-advisor/internal/domain/scoring"
	"github.com/riskibarqy/fpl-advisor/internal/domain/squad"
)

// Suggestion proposes swapping one owned player for a same-position pool
// player with a strictly higher fixture-adjusted score at an equal or lower
// price. Ephemeral: ranked per request, never persisted.
type Suggestion struct {
	Out    squad.ScoredPlayer
	In     squad.ScoredPlayer
	Delta  float64
	Reason string
}

// SuggestReplacements scans the full pool for an upgrade to each owned
// player. Owned players are processed weakest-first (ascending own score);
// this only shapes presentation order, not which suggestions exist. For
// each owned player the single highest-scoring qualifying candidate wins;
// among equally-scored candidates the one seen first in pool order wins —
// the pool scan is the documented deterministic tie-break. Players with no
// qualifying candidate produce no suggestion.
func SuggestReplacements(owned []squad.ScoredPlayer, pool []player.Player, gameweek int64, fixtures []fixture.Fixture) []Suggestion {
	if len(owned) == 0 {
		return nil
	}

	ranked := make([]squad.ScoredPlayer, len(owned))
	copy(ranked, owned)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})

	ownedIDs := make(map[int64]struct{}, len(ranked))
	for _, sp := range ranked {
		ownedIDs[sp.Player.ID] = struct{}{}
	}

	suggestions := make([]Suggestion, 0, len(ranked))
	for _, out := range ranked {
		var best squad.ScoredPlayer
		found := false

		for _, candidate := range pool {
			if candidate.Position != out.Player.Position {
				continue
			}
			if _, owns := ownedIDs[candidate.ID]; owns {
				continue
			}
			if candidate.Price > out.Player.Price {
				continue
			}

			difficulty := fixture.DifficultyFor(candidate.ClubID, gameweek, fixtures)
			score := scoring.Score(candidate, difficulty)
			if score <= out.Score {
				continue
			}
			// Strict > keeps the first-seen candidate on score ties.
			if !found || score > best.Score {
				best = squad.ScoredPlayer{Player: candidate, Difficulty: difficulty, Score: score}
				found = true
			}
		}

		if !found {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Out:   out,
			In:    best,
			Delta: best.Score - out.Score,
			Reason: fmt.Sprintf(
				"Better fixture-adjusted score (%.1f vs %.1f) for a similar or lower price.",
				best.Score, out.Score,
			),
		})
	}

	return suggestions
}

// Rank orders suggestions by score delta descending (stable) and splits off
// the single best as the free transfer. Ranking is a presentation concern
// layered on top of the engine output.
func Rank(suggestions []Suggestion) (free []Suggestion, others []Suggestion) {
	if len(suggestions) == 0 {
		return nil, nil
	}

	ranked := make([]Suggestion, len(suggestions))
	copy(ranked, suggestions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Delta > ranked[j].Delta
	})

	return ranked[:1], ranked[1:]
}
