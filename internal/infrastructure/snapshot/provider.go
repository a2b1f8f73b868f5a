package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/fpl-advisor/external/fplapi"
	"github.com/riskibarqy/fpl-advisor/internal/domain/dataset"
	"github.com/riskibarqy/fpl-advisor/internal/domain/fixture"
	"github.com/riskibarqy/fpl-advisor/internal/platform/cache"
	"github.com/riskibarqy/fpl-advisor/internal/platform/logging"
)

const snapshotCacheKey = "fpl:snapshot"

// Fetcher is the upstream slice the provider needs; fplapi.Client satisfies
// it.
type Fetcher interface {
	FetchBootstrap(ctx context.Context) (fplapi.Bootstrap, error)
	FetchFixtures(ctx context.Context) ([]fixture.Fixture, error)
}

// CachedProvider serves dataset snapshots from a TTL cache, refetching from
// upstream when the cached copy expires. Bootstrap and fixtures are fetched
// concurrently; a fixture failure degrades the snapshot to fixture-less
// rather than failing it, a bootstrap failure fails the load outright.
type CachedProvider struct {
	fetcher Fetcher
	store   *cache.Store[dataset.Snapshot]
	logger  *logging.Logger
}

func NewCachedProvider(fetcher Fetcher, ttl time.Duration, logger *logging.Logger) *CachedProvider {
	if logger == nil {
		logger = logging.Default()
	}
	return &CachedProvider{
		fetcher: fetcher,
		store:   cache.NewStore[dataset.Snapshot](ttl),
		logger:  logger,
	}
}

func (p *CachedProvider) Snapshot(ctx context.Context) (dataset.Snapshot, error) {
	return p.store.GetOrLoad(ctx, snapshotCacheKey, p.load)
}

// Invalidate drops the cached snapshot so the next request refetches.
func (p *CachedProvider) Invalidate(ctx context.Context) {
	p.store.Delete(ctx, snapshotCacheKey)
}

func (p *CachedProvider) load(ctx context.Context) (dataset.Snapshot, error) {
	var (
		bootstrap    fplapi.Bootstrap
		bootstrapErr error
		fixtures     []fixture.Fixture
		fixturesErr  error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		bootstrap, bootstrapErr = p.fetcher.FetchBootstrap(ctx)
	})
	wg.Go(func() {
		fixtures, fixturesErr = p.fetcher.FetchFixtures(ctx)
	})
	wg.Wait()

	if bootstrapErr != nil {
		return dataset.Snapshot{}, fmt.Errorf("load snapshot: %w", bootstrapErr)
	}
	if fixturesErr != nil {
		p.logger.WarnContext(ctx, "fixtures fetch failed, serving fixture-less snapshot", "error", fixturesErr)
		fixtures = nil
	}

	snap := dataset.Snapshot{
		Players:   bootstrap.Players,
		Clubs:     bootstrap.Clubs,
		Fixtures:  fixtures,
		Gameweeks: bootstrap.Gameweeks,
	}
	p.logger.InfoContext(ctx, "snapshot loaded",
		"players", len(snap.Players),
		"clubs", len(snap.Clubs),
		"fixtures", len(snap.Fixtures),
		"gameweeks", len(snap.Gameweeks),
	)

	return snap, nil
}
