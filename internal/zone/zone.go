// Package zone expands candidate keywords across top-level zones.
package zone

import (
	"lookalike/pkg/serrors"
	"strings"
	"unicode"

	"golang.org/x/net/publicsuffix"
)

// defaultZones are looked up when the caller configures none.
var defaultZones = []string{ //nolint: gochecknoglobals
	"com", "ru", "net", "org", "info", "cn", "es", "top", "au", "pl",
	"it", "uk", "tk", "ml", "ga", "cf", "us", "xyz", "site", "win", "bid",
}

// Default returns a copy of the built-in zone list.
func Default() []string {
	return append([]string(nil), defaultZones...)
}

// Expand returns keyword + "." + zone for every keyword and zone, keyword
// major. Every (keyword, zone) pair appears once per occurrence of the keyword
// in the input.
func Expand(keywords, zones []string) []string {
	out := make([]string, 0, len(keywords)*len(zones))
	for _, kw := range keywords {
		for _, z := range zones {
			out = append(out, kw+"."+z)
		}
	}

	return out
}

// Validate rejects zone lists that would make a run meaningless or break the
// one-lookup-per-pair guarantee.
func Validate(zones []string) error {
	if len(zones) == 0 {
		return serrors.With(serrors.ErrInvalidConfig, "zone list is empty")
	}

	seen := make(map[string]struct{}, len(zones))
	for _, z := range zones {
		switch {
		case z == "":
			return serrors.With(serrors.ErrInvalidConfig, "zone list contains an empty zone")
		case strings.HasPrefix(z, ".") || strings.HasSuffix(z, "."):
			return serrors.With(serrors.ErrInvalidConfig, "zone %q must not start or end with a dot", z)
		case strings.IndexFunc(z, unicode.IsSpace) >= 0:
			return serrors.With(serrors.ErrInvalidConfig, "zone %q contains whitespace", z)
		}
		if _, dup := seen[z]; dup {
			return serrors.With(serrors.ErrInvalidConfig, "zone %q is listed twice", z)
		}
		seen[z] = struct{}{}
	}

	return nil
}

// Unlisted returns the zones that are not ICANN-managed public suffixes.
// Resolving them is allowed but usually a typo.
func Unlisted(zones []string) []string {
	var out []string
	for _, z := range zones {
		suffix, icann := publicsuffix.PublicSuffix(strings.ToLower(z))
		if !icann || suffix != strings.ToLower(z) {
			out = append(out, z)
		}
	}

	return out
}
