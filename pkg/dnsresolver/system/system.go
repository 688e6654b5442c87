// Package system provides a dnsresolver.Resolver backed by net.Resolver, so
// lookups follow the host's resolver configuration (nsswitch, /etc/hosts).
package system

import (
	"context"
	"errors"
	"lookalike/pkg/dnsresolver"
	"lookalike/pkg/serrors"
	"net"
)

// Resolver adapts a net.Resolver.
type Resolver struct {
	r *net.Resolver
}

// Ensure Resolver conforms to the dnsresolver.Resolver interface at compile time.
var _ dnsresolver.Resolver = (*Resolver)(nil)

// New creates a Resolver. A nil r uses net.DefaultResolver.
func New(r *net.Resolver) *Resolver {
	if r == nil {
		r = net.DefaultResolver
	}

	return &Resolver{r: r}
}

// LookupA returns the first IPv4 address of name.
func (s *Resolver) LookupA(ctx context.Context, name string) (string, error) {
	ascii, err := dnsresolver.ToASCII(name)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	ips, err := s.r.LookupIP(ctx, "ip4", ascii)
	if err != nil {
		return "", classify(ctx, ascii, err)
	}

	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
	}

	return "", serrors.With(serrors.ErrNoAnswer, "%s has no A record", ascii)
}

func classify(ctx context.Context, name string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return serrors.Wrap(serrors.ErrTimeout, err, "lookup %s", name)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		switch {
		case dnsErr.IsNotFound:
			return serrors.Wrap(serrors.ErrNotRegistered, err, "%s does not exist", name)
		case dnsErr.IsTimeout:
			return serrors.Wrap(serrors.ErrTimeout, err, "lookup %s", name)
		}
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "lookup %s", name)
}
