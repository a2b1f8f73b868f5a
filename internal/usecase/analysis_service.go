package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-advisor/internal/domain/chip"
	"github.com/riskibarqy/fpl-advisor/internal/domain/dataset"
	"github.com/riskibarqy/fpl-advisor/internal/domain/fixture"
	"github.com/riskibarqy/fpl-advisor/internal/domain/player"
	"github.com/riskibarqy/fpl-advisor/internal/domain/scoring"
	"github.com/riskibarqy/fpl-advisor/internal/domain/squad"
	"github.com/riskibarqy/fpl-advisor/internal/domain/team"
	"github.com/riskibarqy/fpl-advisor/internal/domain/transfer"
	"github.com/riskibarqy/fpl-advisor/internal/platform/logging"
)

const (
	analysisStarterSize = 11
	analysisBenchSize   = 4
)

type AnalyzeInput struct {
	StartingIDs []int64
	BenchIDs    []int64
	CaptainID   int64
	UsedChips   map[chip.Kind]bool
}

// Analysis is the full advisory output for one submitted squad. Lineups and
// suggestions are computed against the next gameweek's fixtures; when the
// fixture feed is down the whole analysis runs at neutral difficulty and
// Degraded is set.
type Analysis struct {
	Rating   int
	Gameweek int64
	Degraded bool

	Starters []squad.Entry
	Bench    []squad.Entry

	FreeTransfer   []transfer.Suggestion
	OtherTransfers []transfer.Suggestion
	Chips          []chip.Suggestion

	PostTransferLineup squad.Squad
	WildcardLineup     squad.Squad

	Fixtures []fixture.Fixture
	Clubs    map[int64]team.Club
}

type AnalysisService struct {
	provider dataset.Provider
	logger   *logging.Logger
}

func NewAnalysisService(provider dataset.Provider, logger *logging.Logger) *AnalysisService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalysisService{
		provider: provider,
		logger:   logger,
	}
}

// Analyze validates the submitted squad shape, scores it against the next
// gameweek, and assembles the rating, ranked transfer suggestions, chip
// advice and both alternative lineups. Shape violations fail before any
// scoring; an empty upstream pool is a dependency failure.
func (s *AnalysisService) Analyze(ctx context.Context, input AnalyzeInput) (Analysis, error) {
	ctx, span := startUsecaseSpan(ctx, "AnalysisService.Analyze")
	defer span.End()

	if len(input.StartingIDs) != analysisStarterSize {
		return Analysis{}, fmt.Errorf("%w: starting lineup must contain %d players, got %d", ErrInvalidInput, analysisStarterSize, len(input.StartingIDs))
	}
	if len(input.BenchIDs) != analysisBenchSize {
		return Analysis{}, fmt.Errorf("%w: bench must contain %d players, got %d", ErrInvalidInput, analysisBenchSize, len(input.BenchIDs))
	}

	starterSet := make(map[int64]struct{}, len(input.StartingIDs))
	for _, id := range input.StartingIDs {
		if _, dup := starterSet[id]; dup {
			return Analysis{}, fmt.Errorf("%w: duplicate starter id %d", ErrInvalidInput, id)
		}
		starterSet[id] = struct{}{}
	}
	for _, id := range input.BenchIDs {
		if _, dup := starterSet[id]; dup {
			return Analysis{}, fmt.Errorf("%w: player %d appears in both starters and bench", ErrInvalidInput, id)
		}
	}
	benchSet := make(map[int64]struct{}, len(input.BenchIDs))
	for _, id := range input.BenchIDs {
		if _, dup := benchSet[id]; dup {
			return Analysis{}, fmt.Errorf("%w: duplicate bench id %d", ErrInvalidInput, id)
		}
		benchSet[id] = struct{}{}
	}
	if _, ok := starterSet[input.CaptainID]; !ok {
		return Analysis{}, fmt.Errorf("%w: captain %d must be a starter", ErrInvalidInput, input.CaptainID)
	}

	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}
	if snap.Empty() {
		return Analysis{}, fmt.Errorf("%w: upstream player pool is empty", ErrDependencyUnavailable)
	}
	if snap.Degraded() {
		s.logger.WarnContext(ctx, "fixtures unavailable, analyzing at neutral difficulty")
	}

	byID := snap.PlayersByID()
	starters, err := s.identify(input.StartingIDs, byID)
	if err != nil {
		return Analysis{}, err
	}
	bench, err := s.identify(input.BenchIDs, byID)
	if err != nil {
		return Analysis{}, err
	}

	gw := snap.NextGameweek()

	starterEntries := scoreEntries(starters, gw, snap.Fixtures, input.CaptainID)
	benchEntries := scoreEntries(bench, gw, snap.Fixtures, 0)
	for i := range benchEntries {
		benchEntries[i].Role = squad.RoleSub
	}

	rating := scoring.RateTeam(scoring.ResolveStarters(starters, gw, snap.Fixtures), input.CaptainID)

	owned := make([]squad.ScoredPlayer, 0, len(starterEntries)+len(benchEntries))
	for _, e := range starterEntries {
		owned = append(owned, e.ScoredPlayer)
	}
	for _, e := range benchEntries {
		owned = append(owned, e.ScoredPlayer)
	}

	suggestions := transfer.SuggestReplacements(owned, snap.Players, gw, snap.Fixtures)
	free, others := transfer.Rank(suggestions)

	chips := chip.Advise(starterEntries, benchEntries, others, input.UsedChips)

	return Analysis{
		Rating:             rating,
		Gameweek:           gw,
		Degraded:           snap.Degraded(),
		Starters:           starterEntries,
		Bench:              benchEntries,
		FreeTransfer:       free,
		OtherTransfers:     others,
		Chips:              chips,
		PostTransferLineup: squad.BuildLineup(applyFreeTransfer(owned, free)),
		WildcardLineup:     squad.BuildWildcard(snap.Players, gw, snap.Fixtures, squad.DefaultRules()),
		Fixtures:           fixture.ForGameweek(gw, snap.Fixtures),
		Clubs:              snap.ClubsByID(),
	}, nil
}

func (s *AnalysisService) identify(ids []int64, byID map[int64]player.Player) ([]player.Player, error) {
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown player id %d", ErrInvalidInput, id)
		}
		out = append(out, p)
	}
	return out, nil
}

// scoreEntries values each player at the gameweek's difficulty. captainID 0
// marks nobody.
func scoreEntries(players []player.Player, gameweek int64, fixtures []fixture.Fixture, captainID int64) []squad.Entry {
	out := make([]squad.Entry, 0, len(players))
	for _, p := range players {
		difficulty := fixture.DifficultyFor(p.ClubID, gameweek, fixtures)
		role := squad.RoleStarter
		if captainID != 0 && p.ID == captainID {
			role = squad.RoleCaptain
		}
		out = append(out, squad.Entry{
			ScoredPlayer: squad.ScoredPlayer{
				Player:     p,
				Difficulty: difficulty,
				Score:      scoring.Score(p, difficulty),
			},
			Role: role,
		})
	}
	return out
}

// applyFreeTransfer swaps the free transfer into the owned 15 before the
// post-transfer lineup is formatted. No free transfer means the current
// squad is re-formatted as-is.
func applyFreeTransfer(owned []squad.ScoredPlayer, free []transfer.Suggestion) []squad.ScoredPlayer {
	if len(free) == 0 {
		return owned
	}

	swap := free[0]
	out := make([]squad.ScoredPlayer, 0, len(owned))
	for _, sp := range owned {
		if sp.Player.ID == swap.Out.Player.ID {
			out = append(out, swap.In)
			continue
		}
		out = append(out, sp)
	}
	return out
}
