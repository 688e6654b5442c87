package main

import (
	"lookalike/internal/config"
	"lookalike/internal/hunt"
	"lookalike/internal/resolution"
	"lookalike/internal/variant"
	"lookalike/pkg/dnsresolver"
	"lookalike/pkg/dnsresolver/dnsclient"
	"lookalike/pkg/dnsresolver/system"
	"lookalike/pkg/homoglyph"
	"lookalike/pkg/serrors"
	"strings"
)

const (
	resolverDNS    = "dns"
	resolverSystem = "system"
)

// newResolver builds the DNS client selected by cfg.Resolver.Kind.
func newResolver(cfg *config.Config) (dnsresolver.Resolver, error) {
	switch kind := strings.ToLower(strings.TrimSpace(cfg.Resolver.Kind)); kind {
	case "", resolverDNS:
		client, err := dnsclient.New(dnsclient.Options{
			Servers: cfg.Resolver.Servers,
			Network: cfg.Resolver.Network,
		})
		if err != nil {
			return nil, err //nolint: wrapcheck
		}

		return client, nil
	case resolverSystem:
		return system.New(nil), nil
	default:
		return nil, serrors.With(serrors.ErrInvalidConfig, "unknown resolver kind %q (want dns or system)", cfg.Resolver.Kind)
	}
}

// newHunter wires the homoglyph table, variant generator and resolution
// engine into a Hunter configured from cfg.
func newHunter(cfg *config.Config, opts ...resolution.Option) (hunt.Hunter, error) {
	resolver, err := newResolver(cfg)
	if err != nil {
		return nil, err
	}

	engine, err := resolution.New(resolver, resolution.NewOptions(cfg), opts...)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	table := homoglyph.Default()
	generator := variant.New(table)
	if len(cfg.Hunt.Strategies) > 0 {
		generator, err = variant.NewWithStrategies(table, cfg.Hunt.Strategies...)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
	}

	return hunt.New(table, generator, engine, hunt.NewOptions(cfg)), nil
}
