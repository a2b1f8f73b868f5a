package memory

import (
	"github.com/riskibarqy/fpl-advisor/internal/domain/dataset"
	"github.com/riskibarqy/fpl-advisor/internal/domain/fixture"
	"github.com/riskibarqy/fpl-advisor/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
	"github.com/riskibarqy/fpl-advisor/internal/domain/team"
)

// SeedSnapshot is a small but complete dataset: 8 clubs, a fixture round
// for the next gameweek, and a pool with enough budget-priced enablers in
// every position that the greedy wildcard pass can fill a full 15-man
// squad under the quota, club and budget constraints.
func SeedSnapshot() dataset.Snapshot {
	clubs := []team.Club{
		{ID: 1, Code: 3, Name: "Arsenal", Short: "ARS"},
		{ID: 2, Code: 7, Name: "Aston Villa", Short: "AVL"},
		{ID: 3, Code: 8, Name: "Chelsea", Short: "CHE"},
		{ID: 4, Code: 14, Name: "Liverpool", Short: "LIV"},
		{ID: 5, Code: 43, Name: "Man City", Short: "MCI"},
		{ID: 6, Code: 1, Name: "Man Utd", Short: "MUN"},
		{ID: 7, Code: 6, Name: "Spurs", Short: "TOT"},
		{ID: 8, Code: 21, Name: "West Ham", Short: "WHU"},
	}

	seed := func(id, clubID int64, name string, pos player.Position, price int64, form, ppg float64, points int) player.Player {
		return player.Player{
			ID:            id,
			Name:          name,
			ClubID:        clubID,
			Position:      pos,
			Price:         price,
			Form:          form,
			PointsPerGame: ppg,
			Status:        player.StatusAvailable,
			TotalPoints:   points,
		}
	}

	players := []player.Player{
		seed(1, 4, "Alisson", player.PositionGoalkeeper, 45, 3.9, 4.0, 18),
		seed(2, 8, "Areola", player.PositionGoalkeeper, 40, 3.6, 3.3, 14),
		seed(3, 5, "Ederson", player.PositionGoalkeeper, 54, 2.4, 2.1, 10),
		seed(4, 1, "Raya", player.PositionGoalkeeper, 56, 2.8, 2.4, 12),

		seed(10, 1, "Gabriel", player.PositionDefender, 52, 5.1, 4.5, 24),
		seed(11, 1, "Saliba", player.PositionDefender, 48, 4.8, 4.2, 22),
		seed(12, 4, "Van Dijk", player.PositionDefender, 42, 4.4, 4.1, 21),
		seed(13, 3, "Colwill", player.PositionDefender, 42, 3.9, 3.6, 17),
		seed(14, 8, "Wan-Bissaka", player.PositionDefender, 40, 3.8, 3.4, 16),
		seed(15, 5, "Dias", player.PositionDefender, 58, 2.6, 2.4, 12),
		seed(16, 7, "Romero", player.PositionDefender, 50, 2.8, 2.5, 12),
		seed(17, 6, "Shaw", player.PositionDefender, 47, 2.6, 2.7, 12),

		seed(20, 4, "Salah", player.PositionMidfielder, 131, 8.4, 7.9, 46),
		seed(21, 1, "Saka", player.PositionMidfielder, 99, 7.6, 6.8, 40),
		seed(22, 5, "Foden", player.PositionMidfielder, 85, 7.1, 6.5, 37),
		seed(23, 2, "Rogers", player.PositionMidfielder, 55, 5.2, 4.7, 25),
		seed(24, 6, "Mainoo", player.PositionMidfielder, 48, 4.4, 3.9, 20),
		seed(25, 7, "Maddison", player.PositionMidfielder, 75, 4.0, 3.6, 19),
		seed(26, 6, "Fernandes", player.PositionMidfielder, 84, 4.1, 3.9, 21),
		seed(27, 3, "Palmer", player.PositionMidfielder, 108, 4.4, 4.0, 23),
		seed(28, 8, "Bowen", player.PositionMidfielder, 76, 4.8, 4.3, 23),

		seed(30, 5, "Haaland", player.PositionForward, 145, 9.0, 8.3, 51),
		seed(31, 2, "Watkins", player.PositionForward, 80, 6.4, 5.9, 33),
		seed(32, 8, "Fullkrug", player.PositionForward, 43, 4.3, 3.8, 19),
		seed(33, 3, "Jackson", player.PositionForward, 79, 3.4, 3.1, 15),
		seed(34, 7, "Solanke", player.PositionForward, 75, 3.2, 3.0, 14),
		seed(35, 6, "Hojlund", player.PositionForward, 70, 3.3, 2.9, 13),
	}

	fixtures := []fixture.Fixture{
		{Gameweek: 5, HomeClubID: 1, AwayClubID: 3, HomeDifficulty: 3, AwayDifficulty: 4},
		{Gameweek: 5, HomeClubID: 4, AwayClubID: 8, HomeDifficulty: 2, AwayDifficulty: 5},
		{Gameweek: 5, HomeClubID: 5, AwayClubID: 2, HomeDifficulty: 2, AwayDifficulty: 4},
		{Gameweek: 5, HomeClubID: 7, AwayClubID: 6, HomeDifficulty: 3, AwayDifficulty: 3},
		{Gameweek: 6, HomeClubID: 3, AwayClubID: 4, HomeDifficulty: 4, AwayDifficulty: 3},
	}

	gameweeks := []gameweek.Gameweek{
		{ID: 1, Name: "Gameweek 1", Finished: true},
		{ID: 2, Name: "Gameweek 2", Finished: true},
		{ID: 3, Name: "Gameweek 3", Finished: true},
		{ID: 4, Name: "Gameweek 4", IsCurrent: true},
		{ID: 5, Name: "Gameweek 5", IsNext: true},
		{ID: 6, Name: "Gameweek 6"},
	}

	return dataset.Snapshot{
		Players:   players,
		Clubs:     clubs,
		Fixtures:  fixtures,
		Gameweeks: gameweeks,
	}
}
