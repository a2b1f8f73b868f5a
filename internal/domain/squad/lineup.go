package squad

import (
	"sort"

	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
)

const (
	startingSize     = 11
	reservedOutfield = 3
)

// BuildLineup assembles a formation-shaped lineup from a scored pool:
// the best keeper starts, the second keeper (and any further keepers) is
// benched, and starter slots are filled from a single merged outfield
// ranking — the top 3 outfielders unconditionally, then the next best until
// the XI is full. Within the finalized XI the highest scorer is Captain and
// the second Vice-Captain; the bench lists spare keepers first, then
// outfielders by score.
//
// The top-3 shortcut is a deliberate approximation: it does not enforce
// per-position minimums, so a defender-light pool can produce an XI no real
// formation allows. Callers rely on this exact greedy behavior.
func BuildLineup(pool []ScoredPlayer) Squad {
	keepers := make([]ScoredPlayer, 0, 2)
	outfield := make([]ScoredPlayer, 0, len(pool))
	for _, sp := range pool {
		if sp.Player.Position == player.PositionGoalkeeper {
			keepers = append(keepers, sp)
		} else {
			outfield = append(outfield, sp)
		}
	}

	sortByScoreDesc(keepers)
	sortByScoreDesc(outfield)

	starters := make([]ScoredPlayer, 0, startingSize)
	bench := make([]ScoredPlayer, 0, 4)

	if len(keepers) > 0 {
		starters = append(starters, keepers[0])
		bench = append(bench, keepers[1:]...)
	}

	reserved := min(reservedOutfield, len(outfield))
	starters = append(starters, outfield[:reserved]...)

	remaining := startingSize - len(starters)
	if remaining > len(outfield)-reserved {
		remaining = len(outfield) - reserved
	}
	starters = append(starters, outfield[reserved:reserved+remaining]...)
	bench = append(bench, outfield[reserved+remaining:]...)

	sortByScoreDesc(starters)

	xi := make([]Entry, 0, len(starters))
	for i, sp := range starters {
		role := RoleStarter
		switch i {
		case 0:
			role = RoleCaptain
		case 1:
			role = RoleViceCaptain
		}
		xi = append(xi, Entry{ScoredPlayer: sp, Role: role})
	}

	subs := make([]Entry, 0, len(bench))
	for _, sp := range bench {
		subs = append(subs, Entry{ScoredPlayer: sp, Role: RoleSub})
	}

	return Squad{StartingXI: xi, Bench: subs}
}

// sortByScoreDesc is stable so equally-scored players keep pool order,
// which is the documented deterministic tie-break.
func sortByScoreDesc(players []ScoredPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})
}
