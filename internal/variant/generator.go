// Package variant derives candidate keywords from seed keywords. Each strategy
// is independent; the generator concatenates their outputs without removing
// duplicates.
package variant

import (
	"lookalike/pkg/domain"
	"lookalike/pkg/homoglyph"
	"lookalike/pkg/serrors"
)

// Generator runs a fixed, ordered list of strategies over seed keywords. It is
// stateless after construction and safe for concurrent use.
type Generator struct {
	strategies []Strategy
}

// New creates a Generator with all strategies in their canonical order:
// append, homoglyph, split, delete.
func New(table *homoglyph.Table) *Generator {
	return &Generator{strategies: []Strategy{
		appendStrategy{},
		homoglyphStrategy{table: table},
		splitStrategy{},
		deleteStrategy{},
	}}
}

// NewWithStrategies creates a Generator running only the named strategies, in
// the order given.
func NewWithStrategies(table *homoglyph.Table, names ...string) (*Generator, error) {
	if len(names) == 0 {
		return nil, serrors.With(serrors.ErrInvalidConfig, "at least one strategy is required")
	}

	g := &Generator{strategies: make([]Strategy, 0, len(names))}
	for _, name := range names {
		s, err := byName(table, name)
		if err != nil {
			return nil, err
		}
		g.strategies = append(g.strategies, s)
	}

	return g, nil
}

func byName(table *homoglyph.Table, name string) (Strategy, error) {
	switch name {
	case StrategyAppend:
		return appendStrategy{}, nil
	case StrategyHomoglyph:
		if table == nil {
			return nil, serrors.With(serrors.ErrInvalidConfig, "homoglyph strategy needs a table")
		}

		return homoglyphStrategy{table: table}, nil
	case StrategySplit:
		return splitStrategy{}, nil
	case StrategyDelete:
		return deleteStrategy{}, nil
	default:
		return nil, serrors.With(serrors.ErrInvalidConfig, "unknown strategy %q", name)
	}
}

// Strategies returns the configured strategy names in execution order.
func (g *Generator) Strategies() []string {
	names := make([]string, len(g.strategies))
	for i, s := range g.strategies {
		names[i] = s.Name()
	}

	return names
}

// Generate returns the candidate keyword multiset for seeds: for each seed in
// order, the output of every strategy in order. seeds is not modified.
func (g *Generator) Generate(seeds []string) []string {
	var out []string
	for _, seed := range seeds {
		for _, s := range g.strategies {
			out = append(out, s.Variants(seed)...)
		}
	}
	if out == nil {
		out = []string{}
	}

	return out
}

// Candidates is Generate with every keyword tagged by its seed and strategy.
func (g *Generator) Candidates(seeds []string) []domain.Candidate {
	out := []domain.Candidate{}
	for _, seed := range seeds {
		for _, s := range g.strategies {
			for _, v := range s.Variants(seed) {
				out = append(out, domain.Candidate{Keyword: v, Seed: seed, Strategy: s.Name()})
			}
		}
	}

	return out
}
