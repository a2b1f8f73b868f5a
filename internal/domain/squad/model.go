package squad

import (
	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
)

// Role is a player's slot within a formatted squad.
type Role string

const (
	RoleCaptain     Role = "Captain"
	RoleViceCaptain Role = "Vice-Captain"
	RoleStarter     Role = "Starter"
	RoleSub         Role = "Sub"
)

// ScoredPlayer pairs a pool player with their resolved fixture difficulty
// and the derived valuation. Transient: recomputed per request because the
// difficulty depends on the gameweek in scope.
type ScoredPlayer struct {
	Player     player.Player
	Difficulty int
	Score      float64
}

// Entry is one squad slot in presentation order.
type Entry struct {
	ScoredPlayer
	Role Role
}

// Squad is a formatted 15-player roster: 11 starters (exactly one Captain
// and one Vice-Captain) and a 4-player bench. A degraded build may carry
// fewer entries when the source pool could not supply 15.
type Squad struct {
	StartingXI []Entry
	Bench      []Entry
}

// Captain returns the starter flagged captain, if any.
func (s Squad) Captain() (Entry, bool) {
	for _, e := range s.StartingXI {
		if e.Role == RoleCaptain {
			return e, true
		}
	}
	return Entry{}, false
}

// Size is the total number of squad slots filled.
func (s Squad) Size() int {
	return len(s.StartingXI) + len(s.Bench)
}
