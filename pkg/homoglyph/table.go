// Package homoglyph maps Latin characters to visually confusable characters.
//
// A Table is built once and never modified, so it can be shared by any number
// of goroutines without synchronization.
package homoglyph

import (
	"math"
	"unicode"
)

// Table is an immutable mapping from a character to its lookalikes.
type Table struct {
	entries map[rune][]rune
}

// New builds a Table from entries, keeping only lookalikes that belong to one
// of the given scripts. Self-mappings and repeated lookalikes are dropped. When
// no script is given every lookalike is kept. entries is copied.
func New(entries map[rune][]rune, scripts ...*unicode.RangeTable) *Table {
	t := &Table{entries: make(map[rune][]rune, len(entries))}

	for r, lookalikes := range entries {
		seen := map[rune]struct{}{r: {}}
		kept := make([]rune, 0, len(lookalikes))
		for _, l := range lookalikes {
			if _, dup := seen[l]; dup {
				continue
			}
			if len(scripts) > 0 && !unicode.In(l, scripts...) {
				continue
			}
			seen[l] = struct{}{}
			kept = append(kept, l)
		}
		if len(kept) > 0 {
			t.entries[r] = kept
		}
	}

	return t
}

// Default returns the built-in table restricted to Latin and Cyrillic lookalikes.
func Default() *Table {
	return New(latinConfusables(), unicode.Latin, unicode.Cyrillic)
}

// Confusables returns the lookalikes of r, never including r itself. The
// returned slice is a copy.
func (t *Table) Confusables(r rune) []rune {
	l := t.entries[r]
	if len(l) == 0 {
		return nil
	}

	return append([]rune(nil), l...)
}

// Options returns r followed by its lookalikes: the choices for one position
// of a homoglyph substitution.
func (t *Table) Options(r rune) []rune {
	l := t.entries[r]
	out := make([]rune, 0, len(l)+1)
	out = append(out, r)

	return append(out, l...)
}

// Len returns the number of characters that have at least one lookalike.
func (t *Table) Len() int {
	return len(t.entries)
}

// Combinations returns how many strings a full homoglyph substitution of
// keyword yields, including keyword itself. The count saturates at
// math.MaxUint64.
func (t *Table) Combinations(keyword string) uint64 {
	total := uint64(1)
	for _, r := range keyword {
		n := uint64(len(t.entries[r]) + 1)
		if total > math.MaxUint64/n {
			return math.MaxUint64
		}
		total *= n
	}

	return total
}
