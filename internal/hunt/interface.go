package hunt

import (
	"context"
	"lookalike/pkg/domain"
)

// Request describes one hunt. Nil Zones and Dedupe fall back to the configured defaults.
type Request struct {
	Keywords []string
	Zones    []string
	Dedupe   *bool
}

//go:generate mockgen -package mockhunt -source=interface.go -destination=mock/mockhunt.go *
type Hunter interface {
	Candidates(ctx context.Context, req Request) ([]domain.CandidateDomain, error)
	Hunt(ctx context.Context, req Request) (*domain.Report, error)
}
