package dnsresolver

import (
	"lookalike/pkg/serrors"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// MaxNameLength is the longest presentation-format domain name accepted, without the trailing dot.
const MaxNameLength = 253

// ToASCII converts a candidate domain to the ASCII form sent on the wire.
// Homoglyph candidates become "xn--" labels. Empty labels, labels longer
// than 63 octets and names longer than MaxNameLength are rejected with
// serrors.ErrInvalidName.
func ToASCII(name string) (string, error) {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return "", serrors.With(serrors.ErrInvalidName, "empty name")
	}
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			return "", serrors.With(serrors.ErrInvalidName, "%q has an empty label", name)
		}
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInvalidName, err, "could not convert %q to ASCII", name)
	}
	if len(ascii) > MaxNameLength {
		return "", serrors.With(serrors.ErrInvalidName, "%q is longer than %d characters", ascii, MaxNameLength)
	}
	if _, ok := dns.IsDomainName(ascii); !ok {
		return "", serrors.With(serrors.ErrInvalidName, "%q is not a valid domain name", ascii)
	}

	return ascii, nil
}
