package dataset

import (
	"context"

	"github.com/riskibarqy/fpl-advisor/internal/domain/fixture"
	"github.com/riskibarqy/fpl-advisor/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
	"github.com/riskibarqy/fpl-advisor/internal/domain/team"
)

// Snapshot is one consistent view of the game world: every player, club,
// fixture and gameweek as of a single fetch. Services never reach upstream
// themselves; they work from whatever snapshot the provider hands them.
//
// Fixtures may legitimately be empty — the provider degrades to a
// fixture-less snapshot when only the fixture feed is down. An empty player
// pool is never valid.
type Snapshot struct {
	Players   []player.Player
	Clubs     []team.Club
	Fixtures  []fixture.Fixture
	Gameweeks []gameweek.Gameweek
}

// Provider hands out the current snapshot, typically from a cache.
type Provider interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

func (s Snapshot) Empty() bool {
	return len(s.Players) == 0
}

// Degraded reports whether the snapshot is usable but fixture-less.
func (s Snapshot) Degraded() bool {
	return !s.Empty() && len(s.Fixtures) == 0
}

func (s Snapshot) PlayersByID() map[int64]player.Player {
	out := make(map[int64]player.Player, len(s.Players))
	for _, p := range s.Players {
		out[p.ID] = p
	}
	return out
}

func (s Snapshot) ClubsByID() map[int64]team.Club {
	return team.ByID(s.Clubs)
}

// NextGameweek resolves the upcoming gameweek id, 0 when the calendar has
// no current or next flag set.
func (s Snapshot) NextGameweek() int64 {
	return gameweek.NextID(s.Gameweeks)
}
