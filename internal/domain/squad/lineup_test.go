package squad

import (
	"testing"

	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
)

func scored(id int64, pos player.Position, score float64) ScoredPlayer {
	return ScoredPlayer{
		Player:     player.Player{ID: id, Position: pos, ClubID: id},
		Difficulty: 3,
		Score:      score,
	}
}

func fullPool() []ScoredPlayer {
	return []ScoredPlayer{
		scored(1, player.PositionGoalkeeper, 4.0),
		scored(2, player.PositionGoalkeeper, 3.0),
		scored(3, player.PositionDefender, 5.0),
		scored(4, player.PositionDefender, 4.5),
		scored(5, player.PositionDefender, 4.2),
		scored(6, player.PositionDefender, 3.8),
		scored(7, player.PositionDefender, 2.1),
		scored(8, player.PositionMidfielder, 7.0),
		scored(9, player.PositionMidfielder, 6.1),
		scored(10, player.PositionMidfielder, 5.4),
		scored(11, player.PositionMidfielder, 3.3),
		scored(12, player.PositionMidfielder, 2.0),
		scored(13, player.PositionForward, 8.0),
		scored(14, player.PositionForward, 6.5),
		scored(15, player.PositionForward, 1.5),
	}
}

func TestBuildLineup_ShapeAndRoles(t *testing.T) {
	lineup := BuildLineup(fullPool())

	if len(lineup.StartingXI) != 11 {
		t.Fatalf("expected 11 starters, got %d", len(lineup.StartingXI))
	}
	if len(lineup.Bench) != 4 {
		t.Fatalf("expected 4 bench entries, got %d", len(lineup.Bench))
	}

	captains, vices := 0, 0
	for _, e := range lineup.StartingXI {
		switch e.Role {
		case RoleCaptain:
			captains++
		case RoleViceCaptain:
			vices++
		}
	}
	if captains != 1 || vices != 1 {
		t.Fatalf("expected exactly 1 captain and 1 vice-captain, got %d and %d", captains, vices)
	}

	// Highest scorer captains, second highest is vice.
	if lineup.StartingXI[0].Player.ID != 13 || lineup.StartingXI[0].Role != RoleCaptain {
		t.Fatalf("expected player 13 as captain, got %d (%s)", lineup.StartingXI[0].Player.ID, lineup.StartingXI[0].Role)
	}
	if lineup.StartingXI[1].Player.ID != 8 || lineup.StartingXI[1].Role != RoleViceCaptain {
		t.Fatalf("expected player 8 as vice-captain, got %d (%s)", lineup.StartingXI[1].Player.ID, lineup.StartingXI[1].Role)
	}
}

func TestBuildLineup_KeeperHandling(t *testing.T) {
	lineup := BuildLineup(fullPool())

	starterKeepers := 0
	for _, e := range lineup.StartingXI {
		if e.Player.Position == player.PositionGoalkeeper {
			starterKeepers++
			if e.Player.ID != 1 {
				t.Fatalf("best keeper must start, got %d", e.Player.ID)
			}
		}
	}
	if starterKeepers != 1 {
		t.Fatalf("expected exactly 1 starting keeper, got %d", starterKeepers)
	}

	// Spare keeper heads the bench.
	if lineup.Bench[0].Player.ID != 2 {
		t.Fatalf("spare keeper must head the bench, got %d", lineup.Bench[0].Player.ID)
	}
	for _, e := range lineup.Bench {
		if e.Role != RoleSub {
			t.Fatalf("bench entry %d has role %s, want Sub", e.Player.ID, e.Role)
		}
	}
}

func TestBuildLineup_TopThreeOutfieldApproximation(t *testing.T) {
	// A pool whose three best outfielders are all forwards: the formatter
	// starts them unconditionally rather than enforcing defender minimums.
	pool := []ScoredPlayer{
		scored(1, player.PositionGoalkeeper, 4.0),
		scored(2, player.PositionForward, 9.0),
		scored(3, player.PositionForward, 8.5),
		scored(4, player.PositionForward, 8.0),
		scored(5, player.PositionDefender, 7.9),
		scored(6, player.PositionDefender, 7.8),
		scored(7, player.PositionMidfielder, 7.7),
		scored(8, player.PositionMidfielder, 7.6),
		scored(9, player.PositionMidfielder, 7.5),
		scored(10, player.PositionMidfielder, 7.4),
		scored(11, player.PositionMidfielder, 7.3),
	}

	lineup := BuildLineup(pool)
	if len(lineup.StartingXI) != 11 {
		t.Fatalf("expected 11 starters, got %d", len(lineup.StartingXI))
	}

	forwards := 0
	for _, e := range lineup.StartingXI {
		if e.Player.Position == player.PositionForward {
			forwards++
		}
	}
	if forwards != 3 {
		t.Fatalf("expected the 3 top forwards to start, got %d forwards", forwards)
	}
}

func TestBuildLineup_PartialPool(t *testing.T) {
	// Degraded input: fewer than 15 players still formats without error.
	pool := []ScoredPlayer{
		scored(1, player.PositionGoalkeeper, 4.0),
		scored(2, player.PositionDefender, 3.0),
		scored(3, player.PositionMidfielder, 2.0),
	}

	lineup := BuildLineup(pool)
	if got := lineup.Size(); got != 3 {
		t.Fatalf("expected 3 formatted entries, got %d", got)
	}
	if len(lineup.Bench) != 0 {
		t.Fatalf("expected empty bench for a 3-player pool, got %d", len(lineup.Bench))
	}
	if lineup.StartingXI[0].Role != RoleCaptain {
		t.Fatalf("top scorer must still captain a partial lineup")
	}
}
