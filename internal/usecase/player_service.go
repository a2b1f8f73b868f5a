package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fpl-advisor/internal/domain/dataset"
	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
	"github.com/riskibarqy/fpl-advisor/internal/domain/team"
)

// PlayerGroup is one position's slice of the pool, sorted by display name.
type PlayerGroup struct {
	Position player.Position
	Players  []player.Player
}

// PlayerPool is the full browsable pool grouped by position.
type PlayerPool struct {
	Groups []PlayerGroup
	Clubs  map[int64]team.Club
}

type PlayerService struct {
	provider dataset.Provider
}

func NewPlayerService(provider dataset.Provider) *PlayerService {
	return &PlayerService{provider: provider}
}

// ListPlayers groups the current pool by position in the fixed
// GKP/DEF/MID/FWD order, each group sorted alphabetically.
func (s *PlayerService) ListPlayers(ctx context.Context) (PlayerPool, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.ListPlayers")
	defer span.End()

	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return PlayerPool{}, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}
	if snap.Empty() {
		return PlayerPool{}, fmt.Errorf("%w: upstream player pool is empty", ErrDependencyUnavailable)
	}

	byPosition := make(map[player.Position][]player.Player, len(player.OrderedPositions))
	for _, p := range snap.Players {
		byPosition[p.Position] = append(byPosition[p.Position], p)
	}

	groups := make([]PlayerGroup, 0, len(player.OrderedPositions))
	for _, pos := range player.OrderedPositions {
		members := byPosition[pos]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Name < members[j].Name
		})
		groups = append(groups, PlayerGroup{Position: pos, Players: members})
	}

	return PlayerPool{
		Groups: groups,
		Clubs:  snap.ClubsByID(),
	}, nil
}
