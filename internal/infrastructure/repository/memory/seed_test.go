package memory

import (
	"testing"

	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
	"github.com/riskibarqy/fpl-advisor/internal/domain/squad"
)

// The seed must stay rich enough for the greedy wildcard pass to fill a
// complete squad: every position needs budget-priced enablers that survive
// the premium picks.
func TestSeedSnapshot_FillsWildcardSquad(t *testing.T) {
	snap := SeedSnapshot()
	rules := squad.DefaultRules()

	built := squad.BuildWildcard(snap.Players, snap.NextGameweek(), snap.Fixtures, rules)

	if len(built.StartingXI) != 11 {
		t.Fatalf("expected a full starting XI, got %d", len(built.StartingXI))
	}
	if len(built.Bench) != 4 {
		t.Fatalf("expected a full bench, got %d", len(built.Bench))
	}

	var spent int64
	positionCount := make(map[player.Position]int)
	clubCount := make(map[int64]int)
	for _, entries := range [][]squad.Entry{built.StartingXI, built.Bench} {
		for _, e := range entries {
			spent += e.Player.Price
			positionCount[e.Player.Position]++
			clubCount[e.Player.ClubID]++
		}
	}

	if spent > rules.BudgetCap {
		t.Fatalf("wildcard squad over budget: spent %d of %d", spent, rules.BudgetCap)
	}
	for pos, quota := range rules.QuotaByPosition {
		if positionCount[pos] != quota {
			t.Fatalf("position %s: got %d players, want %d", pos, positionCount[pos], quota)
		}
	}
	for clubID, count := range clubCount {
		if count > rules.MaxPlayersPerClub {
			t.Fatalf("club %d exceeds the club cap with %d players", clubID, count)
		}
	}
}
