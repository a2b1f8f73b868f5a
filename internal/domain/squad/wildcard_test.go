package squad

import (
	"testing"

	"github.com/riskibarqy/fpl-advisor/internal/domain/fixture"
	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
)

func poolPlayer(id, clubID int64, pos player.Position, price int64, form float64) player.Player {
	return player.Player{
		ID:            id,
		Name:          "Player",
		ClubID:        clubID,
		Position:      pos,
		Price:         price,
		Form:          form,
		PointsPerGame: form,
	}
}

// buildTestPool returns a pool large enough to satisfy every quota, spread
// over enough clubs to avoid the club cap unless a test forces it.
func buildTestPool() []player.Player {
	var pool []player.Player
	id := int64(1)
	add := func(pos player.Position, count int, price int64, form float64) {
		for i := 0; i < count; i++ {
			pool = append(pool, poolPlayer(id, id, pos, price, form))
			id++
		}
	}

	add(player.PositionGoalkeeper, 4, 45, 4.0)
	add(player.PositionDefender, 8, 50, 4.5)
	add(player.PositionMidfielder, 8, 70, 6.0)
	add(player.PositionForward, 6, 80, 7.0)
	return pool
}

func TestBuildWildcard_QuotasAndBudget(t *testing.T) {
	rules := DefaultRules()
	lineup := BuildWildcard(buildTestPool(), 1, nil, rules)

	if got := lineup.Size(); got != 15 {
		t.Fatalf("expected a full 15-player squad, got %d", got)
	}

	counts := map[player.Position]int{}
	var totalPrice int64
	clubs := map[int64]int{}
	for _, e := range append(append([]Entry(nil), lineup.StartingXI...), lineup.Bench...) {
		counts[e.Player.Position]++
		totalPrice += e.Player.Price
		clubs[e.Player.ClubID]++
	}

	want := map[player.Position]int{
		player.PositionGoalkeeper: 2,
		player.PositionDefender:   5,
		player.PositionMidfielder: 5,
		player.PositionForward:    3,
	}
	for pos, n := range want {
		if counts[pos] != n {
			t.Fatalf("position %s: got %d, want %d", pos, counts[pos], n)
		}
	}

	if totalPrice > rules.BudgetCap {
		t.Fatalf("squad price %d exceeds budget cap %d", totalPrice, rules.BudgetCap)
	}
	for clubID, n := range clubs {
		if n > rules.MaxPlayersPerClub {
			t.Fatalf("club %d contributes %d players, cap is %d", clubID, n, rules.MaxPlayersPerClub)
		}
	}
}

func TestBuildWildcard_ClubCapSkipsNotRejects(t *testing.T) {
	// Three elite midfielders exhaust one club's allowance before its elite
	// forward is reached; the forward is skipped and the quota fills from
	// weaker clubs instead.
	pool := buildTestPool()
	pool = append(pool,
		poolPlayer(901, 999, player.PositionMidfielder, 70, 9.5),
		poolPlayer(902, 999, player.PositionMidfielder, 70, 9.4),
		poolPlayer(903, 999, player.PositionMidfielder, 70, 9.3),
		poolPlayer(904, 999, player.PositionForward, 80, 9.0),
	)

	lineup := BuildWildcard(pool, 1, nil, DefaultRules())

	fromCapped := 0
	forwards := 0
	for _, e := range append(append([]Entry(nil), lineup.StartingXI...), lineup.Bench...) {
		if e.Player.ClubID == 999 {
			fromCapped++
			if e.Player.ID == 904 {
				t.Fatalf("forward 904 must be skipped by the club cap")
			}
		}
		if e.Player.Position == player.PositionForward {
			forwards++
		}
	}

	if fromCapped != 3 {
		t.Fatalf("expected exactly 3 players from the capped club, got %d", fromCapped)
	}
	if forwards != 3 {
		t.Fatalf("forward quota must still fill from other clubs, got %d", forwards)
	}
}

func TestBuildWildcard_BudgetGateSkips(t *testing.T) {
	// A superstar priced above the entire budget can never be admitted.
	pool := buildTestPool()
	pool = append(pool, poolPlayer(600, 600, player.PositionMidfielder, 1100, 10.0))

	lineup := BuildWildcard(pool, 1, nil, DefaultRules())
	for _, e := range append(append([]Entry(nil), lineup.StartingXI...), lineup.Bench...) {
		if e.Player.ID == 600 {
			t.Fatalf("player priced above the budget cap must be skipped")
		}
	}
	if got := lineup.Size(); got != 15 {
		t.Fatalf("squad must still fill to 15 around the skipped player, got %d", got)
	}
}

func TestBuildWildcard_ExhaustedPoolIsPartial(t *testing.T) {
	pool := []player.Player{
		poolPlayer(1, 1, player.PositionGoalkeeper, 45, 4.0),
		poolPlayer(2, 2, player.PositionDefender, 50, 4.0),
		poolPlayer(3, 3, player.PositionMidfielder, 60, 5.0),
	}

	lineup := BuildWildcard(pool, 1, nil, DefaultRules())
	if got := lineup.Size(); got != 3 {
		t.Fatalf("expected partial squad of 3, got %d", got)
	}
}

func TestBuildWildcard_PrefersEasierFixtures(t *testing.T) {
	// Two identical midfielders; only one has an easy fixture next week.
	pool := buildTestPool()
	pool = append(pool,
		poolPlayer(700, 700, player.PositionMidfielder, 70, 6.0),
		poolPlayer(701, 701, player.PositionMidfielder, 70, 6.0),
	)
	fixtures := []fixture.Fixture{
		{Gameweek: 7, HomeClubID: 701, AwayClubID: 999, HomeDifficulty: 1, AwayDifficulty: 5},
	}

	lineup := BuildWildcard(pool, 7, fixtures, DefaultRules())
	found := false
	for _, e := range append(append([]Entry(nil), lineup.StartingXI...), lineup.Bench...) {
		if e.Player.ID == 701 {
			found = true
			if e.Difficulty != 1 {
				t.Fatalf("expected resolved difficulty 1 for player 701, got %d", e.Difficulty)
			}
		}
	}
	if !found {
		t.Fatalf("midfielder with the easy fixture must be admitted")
	}
}
