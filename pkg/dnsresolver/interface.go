// Package dnsresolver defines the DNS dependency of the resolution engine:
// given a domain name, return its first IPv4 address, an explicit
// non-existence signal or an error.
//
// Implementations report failures as serrors kinds so the engine can classify
// them without knowing the transport:
//   - serrors.ErrNotRegistered: the name does not exist (NXDOMAIN)
//   - serrors.ErrTimeout: no answer before the deadline
//   - serrors.ErrNoAnswer: the name exists but has no A record
//   - serrors.ErrInvalidName: the name can not be queried (label too long, bad IDN, ...)
//   - serrors.ErrUnavailable: network failure, SERVFAIL, REFUSED, ...
//   - serrors.ErrInternal: malformed response
package dnsresolver

import "context"

// Resolver resolves A records.
//
//go:generate mockgen -package mockdnsresolver -source=interface.go -destination=mock/mockdnsresolver.go *
type Resolver interface {
	// LookupA returns the first IPv4 address of name as text. Exactly one
	// address is returned even when several A records exist.
	LookupA(ctx context.Context, name string) (string, error)
}
