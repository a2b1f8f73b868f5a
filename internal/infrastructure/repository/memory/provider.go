package memory

import (
	"context"

	"github.com/riskibarqy/fpl-advisor/internal/domain/dataset"
)

// Provider serves a fixed snapshot without any upstream dependency. Used
// for seed data mode and tests.
type Provider struct {
	snap dataset.Snapshot
}

func NewProvider(snap dataset.Snapshot) *Provider {
	return &Provider{snap: snap}
}

// NewSeededProvider returns a provider backed by the built-in development
// dataset.
func NewSeededProvider() *Provider {
	return NewProvider(SeedSnapshot())
}

func (p *Provider) Snapshot(context.Context) (dataset.Snapshot, error) {
	return p.snap, nil
}
