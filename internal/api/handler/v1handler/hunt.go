package v1handler

import (
	"context"
	"fmt"
	"lookalike/internal/api/specs/v1specs"
	"lookalike/internal/hunt"
	"lookalike/pkg/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// V1SpecsToHuntRequest converts an API request. Absent and null zones or
// dedupe leave the server defaults in place.
func V1SpecsToHuntRequest(in *v1specs.HuntRequest) hunt.Request {
	out := hunt.Request{Keywords: in.Keywords}
	if zones, ok := in.Zones.Get(); ok {
		out.Zones = zones
	}
	if dedupe, ok := in.Dedupe.Get(); ok {
		out.Dedupe = &dedupe
	}

	return out
}

func DomainReportToV1Specs(in *domain.Report) (*v1specs.HuntReport, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse report ID: %w", err)
	}

	summary := v1specs.Summary{
		Dispatched:     in.Summary.Dispatched,
		Resolved:       in.Summary.Resolved,
		NotRegistered:  in.Summary.NotRegistered,
		Transient:      in.Summary.Transient,
		ElapsedSeconds: in.Summary.Elapsed.Seconds(),
	}
	if len(in.Summary.TransientReasons) > 0 {
		summary.TransientReasons = v1specs.NewOptSummaryTransientReasons(in.Summary.TransientReasons)
	}

	return &v1specs.HuntReport{
		ID:         id,
		Seeds:      in.Seeds,
		Zones:      in.Zones,
		Strategies: in.Strategies,
		Candidates: in.Candidates,
		Results: lo.Map(in.Results, func(r domain.ResultEntry, _ int) v1specs.ResultEntry {
			return v1specs.ResultEntry{Domain: r.Domain, Address: r.Address}
		}),
		Summary: summary,
	}, nil
}

func DomainCandidatesToV1Specs(in []domain.CandidateDomain) *v1specs.CandidateList {
	return &v1specs.CandidateList{
		Count: len(in),
		Candidates: lo.Map(in, func(c domain.CandidateDomain, _ int) v1specs.CandidateDomain {
			return v1specs.CandidateDomain{
				Domain:   c.Domain,
				Zone:     c.Zone,
				Keyword:  c.Keyword,
				Seed:     c.Seed,
				Strategy: c.Strategy,
			}
		}),
	}
}

// CreateHunt runs a hunt synchronously and responds with its report.
func (h Handler) CreateHunt(ctx context.Context, req *v1specs.HuntRequest) (*v1specs.HuntReport, error) {
	rep, err := h.deps.Hunter.Hunt(ctx, V1SpecsToHuntRequest(req))
	if err != nil {
		return nil, fmt.Errorf("could not run hunt: %w", err)
	}

	return DomainReportToV1Specs(rep)
}

// ListCandidates responds with the tagged candidate domains a hunt would look
// up, without resolving them.
func (h Handler) ListCandidates(ctx context.Context, req *v1specs.HuntRequest) (*v1specs.CandidateList, error) {
	candidates, err := h.deps.Hunter.Candidates(ctx, V1SpecsToHuntRequest(req))
	if err != nil {
		return nil, fmt.Errorf("could not list candidates: %w", err)
	}

	return DomainCandidatesToV1Specs(candidates), nil
}
