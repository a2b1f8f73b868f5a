package httpapi

import (
	"github.com/riskibarqy/fpl-advisor/internal/domain/fixture"
	"github.com/riskibarqy/fpl-advisor/internal/domain/squad"
	"github.com/riskibarqy/fpl-advisor/internal/domain/team"
	"github.com/riskibarqy/fpl-advisor/internal/domain/transfer"
	"github.com/riskibarqy/fpl-advisor/internal/usecase"
)

type playerDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Club       string  `json:"club"`
	Position   string  `json:"position"`
	Price      float64 `json:"price"`
	Form       float64 `json:"form"`
	PPG        float64 `json:"pointsPerGame"`
	Status     string  `json:"status"`
	TotalPts   int     `json:"totalPoints"`
	FaceURL    string  `json:"faceUrl"`
	BadgeURL   string  `json:"badgeUrl"`
	Score      float64 `json:"score,omitempty"`
	Difficulty int     `json:"difficulty,omitempty"`
	Role       string  `json:"role,omitempty"`
}

type playerGroupDTO struct {
	Position string      `json:"position"`
	Players  []playerDTO `json:"players"`
}

type suggestionDTO struct {
	Out    playerDTO `json:"out"`
	In     playerDTO `json:"in"`
	Delta  float64   `json:"delta"`
	Reason string    `json:"reason"`
}

type chipDTO struct {
	Chip   string `json:"chip"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type lineupDTO struct {
	StartingXI []playerDTO `json:"startingXi"`
	Bench      []playerDTO `json:"bench"`
}

type fixtureDTO struct {
	Gameweek       int64  `json:"gameweek"`
	HomeClub       string `json:"homeClub"`
	AwayClub       string `json:"awayClub"`
	HomeDifficulty int    `json:"homeDifficulty"`
	AwayDifficulty int    `json:"awayDifficulty"`
}

type squadDetailDTO struct {
	Starting []playerDTO `json:"starting"`
	Bench    []playerDTO `json:"bench"`
}

type transfersDTO struct {
	Free   []suggestionDTO `json:"freeTransfer"`
	Others []suggestionDTO `json:"others"`
}

type analysisDTO struct {
	Rating             int            `json:"rating"`
	Gameweek           int64          `json:"gameweek"`
	Degraded           bool           `json:"degraded"`
	Squad              squadDetailDTO `json:"squad"`
	Transfers          transfersDTO   `json:"transfers"`
	Chips              []chipDTO      `json:"chips"`
	PostTransferLineup lineupDTO      `json:"postTransferLineup"`
	WildcardLineup     lineupDTO      `json:"wildcardLineup"`
	Fixtures           []fixtureDTO   `json:"fixtures"`
}

func scoredPlayerToDTO(sp squad.ScoredPlayer, role string, clubs map[int64]team.Club) playerDTO {
	club := clubs[sp.Player.ClubID]
	return playerDTO{
		ID:         sp.Player.ID,
		Name:       sp.Player.Name,
		Club:       club.Short,
		Position:   string(sp.Player.Position),
		Price:      sp.Player.PriceUnits(),
		Form:       sp.Player.Form,
		PPG:        sp.Player.PointsPerGame,
		Status:     sp.Player.Status,
		TotalPts:   sp.Player.TotalPoints,
		FaceURL:    faceURL(sp.Player),
		BadgeURL:   badgeURL(club),
		Score:      sp.Score,
		Difficulty: sp.Difficulty,
		Role:       role,
	}
}

func entriesToDTO(entries []squad.Entry, clubs map[int64]team.Club) []playerDTO {
	out := make([]playerDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, scoredPlayerToDTO(e.ScoredPlayer, string(e.Role), clubs))
	}
	return out
}

func lineupToDTO(s squad.Squad, clubs map[int64]team.Club) lineupDTO {
	return lineupDTO{
		StartingXI: entriesToDTO(s.StartingXI, clubs),
		Bench:      entriesToDTO(s.Bench, clubs),
	}
}

func suggestionsToDTO(suggestions []transfer.Suggestion, clubs map[int64]team.Club) []suggestionDTO {
	out := make([]suggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, suggestionDTO{
			Out:    scoredPlayerToDTO(s.Out, "", clubs),
			In:     scoredPlayerToDTO(s.In, "", clubs),
			Delta:  s.Delta,
			Reason: s.Reason,
		})
	}
	return out
}

func fixturesToDTO(fixtures []fixture.Fixture, clubs map[int64]team.Club) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, fixtureDTO{
			Gameweek:       f.Gameweek,
			HomeClub:       clubs[f.HomeClubID].Short,
			AwayClub:       clubs[f.AwayClubID].Short,
			HomeDifficulty: f.HomeDifficulty,
			AwayDifficulty: f.AwayDifficulty,
		})
	}
	return out
}

func analysisToDTO(a usecase.Analysis) analysisDTO {
	chips := make([]chipDTO, 0, len(a.Chips))
	for _, c := range a.Chips {
		chips = append(chips, chipDTO{
			Chip:   string(c.Chip),
			Name:   c.Chip.DisplayName(),
			Reason: c.Reason,
		})
	}

	return analysisDTO{
		Rating:   a.Rating,
		Gameweek: a.Gameweek,
		Degraded: a.Degraded,
		Squad: squadDetailDTO{
			Starting: entriesToDTO(a.Starters, a.Clubs),
			Bench:    entriesToDTO(a.Bench, a.Clubs),
		},
		Transfers: transfersDTO{
			Free:   suggestionsToDTO(a.FreeTransfer, a.Clubs),
			Others: suggestionsToDTO(a.OtherTransfers, a.Clubs),
		},
		Chips:              chips,
		PostTransferLineup: lineupToDTO(a.PostTransferLineup, a.Clubs),
		WildcardLineup:     lineupToDTO(a.WildcardLineup, a.Clubs),
		Fixtures:           fixturesToDTO(a.Fixtures, a.Clubs),
	}
}

func poolToDTO(pool usecase.PlayerPool) []playerGroupDTO {
	out := make([]playerGroupDTO, 0, len(pool.Groups))
	for _, group := range pool.Groups {
		players := make([]playerDTO, 0, len(group.Players))
		for _, p := range group.Players {
			players = append(players, scoredPlayerToDTO(squad.ScoredPlayer{Player: p}, "", pool.Clubs))
		}
		out = append(out, playerGroupDTO{
			Position: string(group.Position),
			Players:  players,
		})
	}
	return out
}
