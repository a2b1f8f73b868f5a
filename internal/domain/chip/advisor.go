package chip

import (
	"fmt"

	"github.com/riskibarqy/fpl-advisor/internal/domain/squad"
	"github.com/riskibarqy/fpl-advisor/internal/domain/transfer"
)

// Kind identifies an FPL chip. The values double as the used-chip map keys
// managers submit, so they are camelCase wire identifiers rather than
// display names.
type Kind string

const (
	KindBenchBoost    Kind = "benchBoost"
	KindTripleCaptain Kind = "tripleCaptain"
	KindWildcard      Kind = "wildcard"
	KindFreeHit       Kind = "freeHit"
)

// DisplayName maps a chip key to its human-facing label.
func (k Kind) DisplayName() string {
	switch k {
	case KindBenchBoost:
		return "Bench Boost"
	case KindTripleCaptain:
		return "Triple Captain"
	case KindWildcard:
		return "Wildcard"
	case KindFreeHit:
		return "Free Hit"
	default:
		return string(k)
	}
}

// Trigger thresholds, tuned against historical seasons. Each rule fires
// on a strict comparison.
const (
	benchBoostMinTotal   = 15.0
	tripleCaptainMinBest = 8.5
	wildcardMinOthers    = 5
	freeHitMinTopDelta   = 3.0
)

// Suggestion pairs a chip with the rationale for playing it this gameweek.
type Suggestion struct {
	Chip   Kind
	Reason string
}

// Advise evaluates the four chip heuristics against the analyzed squad and
// the ranked transfer suggestions. A chip already marked used is never
// suggested, whatever its signal. Rules are independent; any subset can
// fire, in the fixed order bench boost, triple captain, wildcard, free hit.
func Advise(starters, bench []squad.Entry, others []transfer.Suggestion, used map[Kind]bool) []Suggestion {
	var suggestions []Suggestion

	if !used[KindBenchBoost] && len(bench) > 0 {
		var total float64
		for _, e := range bench {
			total += e.Score
		}
		if total > benchBoostMinTotal {
			suggestions = append(suggestions, Suggestion{
				Chip: KindBenchBoost,
				Reason: fmt.Sprintf(
					"Your bench has a strong projected score of %.1f. This could be a great week to play your Bench Boost.",
					total,
				),
			})
		}
	}

	if !used[KindTripleCaptain] && len(starters) > 0 {
		best := starters[0]
		for _, e := range starters[1:] {
			if e.Score > best.Score {
				best = e
			}
		}
		if best.Score > tripleCaptainMinBest {
			suggestions = append(suggestions, Suggestion{
				Chip: KindTripleCaptain,
				Reason: fmt.Sprintf(
					"%s has an outstanding fixture-adjusted score of %.1f. This is a prime opportunity for a Triple Captain.",
					best.Player.Name, best.Score,
				),
			})
		}
	}

	// Many viable upgrades beyond the free transfer point to a squad-wide
	// structural problem, which is what the wildcard fixes.
	if !used[KindWildcard] && len(others) >= wildcardMinOthers {
		suggestions = append(suggestions, Suggestion{
			Chip: KindWildcard,
			Reason: fmt.Sprintf(
				"We've identified %d potential upgrades for your team. This might be a good time to use your Wildcard for a major overhaul.",
				len(others)+1,
			),
		})
	}

	if !used[KindFreeHit] && len(others) > 0 && others[0].Delta > freeHitMinTopDelta {
		suggestions = append(suggestions, Suggestion{
			Chip:   KindFreeHit,
			Reason: "There are significant one-week gains available. A Free Hit could maximize your points for this gameweek.",
		})
	}

	return suggestions
}
