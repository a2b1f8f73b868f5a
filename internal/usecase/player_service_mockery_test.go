package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/fpl-advisor/internal/domain/dataset"
	datasetmock "github.com/riskibarqy/fpl-advisor/internal/mocks/domain/dataset"
)

func TestPlayerService_ListPlayers_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := datasetmock.NewProvider(t)
	service := NewPlayerService(provider)

	provider.
		On("Snapshot", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(analysisSnapshot(), nil).
		Once()

	pool, err := service.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(pool.Groups) != 4 {
		t.Fatalf("unexpected group count: got=%d want=4", len(pool.Groups))
	}
}

func TestPlayerService_ListPlayers_ProviderErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := datasetmock.NewProvider(t)
	service := NewPlayerService(provider)

	provider.
		On("Snapshot", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(dataset.Snapshot{}, errors.New("upstream down")).
		Once()

	if _, err := service.ListPlayers(ctx); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
