// Package hunt wires the variant generator, the zone expander and the
// resolution engine into a single run over a set of seed keywords.
package hunt

import (
	"context"
	"fmt"
	"lookalike/internal/collector"
	"lookalike/internal/config"
	"lookalike/internal/resolution"
	"lookalike/internal/variant"
	"lookalike/internal/zone"
	"lookalike/pkg/domain"
	"lookalike/pkg/homoglyph"
	"lookalike/pkg/logger"
	"lookalike/pkg/serrors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// DefaultExplosionThreshold is the number of homoglyph variants of one seed
// above which a warning is logged.
const DefaultExplosionThreshold = 10_000

// Options configure the defaults applied to requests.
type Options struct {
	// Zones are looked up when a request names none. Empty means zone.Default().
	Zones []string
	// Dedupe removes repeated candidate domains when a request does not say otherwise.
	Dedupe bool
	// ExplosionThreshold triggers a warning for seeds with more homoglyph
	// variants. Zero means DefaultExplosionThreshold.
	ExplosionThreshold uint64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Zones:  cfg.Hunt.Zones,
		Dedupe: cfg.Hunt.Dedupe,
	}
}

// hunter is the concrete implementation of the Hunter interface.
type hunter struct {
	options   Options
	table     *homoglyph.Table
	generator *variant.Generator
	engine    *resolution.Engine
}

// New creates a Hunter. table is only used to estimate candidate volume.
func New(table *homoglyph.Table, generator *variant.Generator, engine *resolution.Engine, options Options) Hunter {
	if len(options.Zones) == 0 {
		options.Zones = zone.Default()
	}
	if options.ExplosionThreshold == 0 {
		options.ExplosionThreshold = DefaultExplosionThreshold
	}

	return &hunter{
		options:   options,
		table:     table,
		generator: generator,
		engine:    engine,
	}
}

// Candidates validates req and returns the candidate domains a hunt would
// look up, tagged with the seed and strategy behind each one, without resolving them.
func (h *hunter) Candidates(ctx context.Context, req Request) ([]domain.CandidateDomain, error) {
	zones, dedupe, err := h.settle(ctx, req)
	if err != nil {
		return nil, err
	}

	keywords := h.generator.Candidates(req.Keywords)
	names := zone.Expand(domain.Keywords(keywords), zones)

	out := make([]domain.CandidateDomain, len(names))
	for i, name := range names {
		out[i] = domain.CandidateDomain{
			Candidate: keywords[i/len(zones)],
			Domain:    name,
			Zone:      zones[i%len(zones)],
		}
	}
	if dedupe {
		out = lo.UniqBy(out, func(c domain.CandidateDomain) string { return c.Domain })
	}

	return out, nil
}

// Hunt resolves every candidate domain of req and reports the ones that resolve.
func (h *hunter) Hunt(ctx context.Context, req Request) (*domain.Report, error) {
	id := uuid.NewString()
	ctx = logger.WithFields(ctx, zap.String("huntID", id))

	zones, dedupe, err := h.settle(ctx, req)
	if err != nil {
		return nil, err
	}

	domains := zone.Expand(h.generator.Generate(req.Keywords), zones)
	if dedupe {
		before := len(domains)
		domains = lo.Uniq(domains)
		logger.Debug(ctx, "removed duplicate candidates", zap.Int("removed", before-len(domains)))
	}

	strategies := h.generator.Strategies()
	logger.Info(ctx, "hunt started",
		zap.Strings("seeds", req.Keywords),
		zap.Strings("strategies", strategies),
		zap.Int("zones", len(zones)),
		zap.Int("candidates", len(domains)))

	results := collector.New()
	summary, err := h.engine.Run(ctx, domains, results)
	if err != nil {
		return nil, fmt.Errorf("could not resolve candidates: %w", err)
	}
	if ctx.Err() != nil {
		logger.Warn(ctx, "hunt was cancelled, remaining lookups were counted as timeouts", zap.Error(ctx.Err()))
	}

	logger.Info(ctx, "hunt finished",
		zap.Int("resolved", summary.Resolved),
		zap.Int("notRegistered", summary.NotRegistered),
		zap.Int("transient", summary.Transient),
		zap.Any("transientReasons", summary.TransientReasons),
		zap.Duration("elapsed", summary.Elapsed.Round(time.Millisecond)))

	return &domain.Report{
		ID:         id,
		Seeds:      append([]string(nil), req.Keywords...),
		Zones:      zones,
		Strategies: strategies,
		Candidates: len(domains),
		Results:    results.Entries(),
		Summary:    summary,
	}, nil
}

// settle validates req, resolves its zones and dedupe setting against the
// configured defaults and warns about expensive or unusual input.
func (h *hunter) settle(ctx context.Context, req Request) ([]string, bool, error) {
	if len(req.Keywords) == 0 {
		return nil, false, serrors.With(serrors.ErrInvalidConfig, "at least one keyword is required")
	}

	zones := req.Zones
	if zones == nil {
		zones = h.options.Zones
	}
	zones = append([]string(nil), zones...)
	if err := zone.Validate(zones); err != nil {
		return nil, false, err //nolint: wrapcheck
	}
	if unlisted := zone.Unlisted(zones); len(unlisted) > 0 {
		logger.Warn(ctx, "some zones are not public suffixes", zap.Strings("zones", unlisted))
	}

	for _, seed := range req.Keywords {
		if n := h.table.Combinations(seed); n > h.options.ExplosionThreshold {
			logger.Warn(ctx, "seed has many homoglyph variants, expect a long run",
				zap.String("seed", seed), zap.Uint64("variants", n))
		}
	}

	dedupe := h.options.Dedupe
	if req.Dedupe != nil {
		dedupe = *req.Dedupe
	}

	return zones, dedupe, nil
}
