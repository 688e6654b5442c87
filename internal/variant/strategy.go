package variant

import (
	"lookalike/pkg/homoglyph"
	"strings"
)

// Strategy names.
const (
	StrategyAppend    = "append"
	StrategyHomoglyph = "homoglyph"
	StrategySplit     = "split"
	StrategyDelete    = "delete"
)

// Strategy turns one keyword into candidate keywords.
type Strategy interface {
	// Name identifies the strategy in logs and candidate tags.
	Name() string
	// Variants returns the candidates derived from keyword. It never modifies
	// shared state and returns a new slice on each call.
	Variants(keyword string) []string
}

// appendLetters lists the ASCII letters appended by the append strategy.
const appendLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

type appendStrategy struct{}

func (appendStrategy) Name() string { return StrategyAppend }

// Variants returns keyword followed by each ASCII letter, 52 in total.
func (appendStrategy) Variants(keyword string) []string {
	out := make([]string, 0, len(appendLetters))
	for _, l := range appendLetters {
		out = append(out, keyword+string(l))
	}

	return out
}

type homoglyphStrategy struct {
	table *homoglyph.Table
}

func (homoglyphStrategy) Name() string { return StrategyHomoglyph }

// Variants returns every string obtained by keeping or replacing each
// character with one of its lookalikes. The unmodified keyword is the first
// element. Output order is an odometer over the per-position options, the
// last position changing fastest.
func (s homoglyphStrategy) Variants(keyword string) []string {
	runes := []rune(keyword)
	options := make([][]rune, len(runes))
	for i, r := range runes {
		options[i] = s.table.Options(r)
	}

	out := make([]string, 0, capHint(s.table.Combinations(keyword)))
	idx := make([]int, len(runes))
	buf := make([]rune, len(runes))
	for {
		for i := range buf {
			buf[i] = options[i][idx[i]]
		}
		out = append(out, string(buf))

		pos := len(idx) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(options[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}

// capHint bounds the preallocation for very large homoglyph products.
func capHint(n uint64) int {
	const maxHint = 1 << 16
	if n > maxHint {
		return maxHint
	}

	return int(n)
}

type splitStrategy struct{}

func (splitStrategy) Name() string { return StrategySplit }

// Variants inserts a dot between every pair of adjacent characters, one
// insertion per candidate. Keywords shorter than two characters yield nothing.
func (splitStrategy) Variants(keyword string) []string {
	runes := []rune(keyword)
	if len(runes) < 2 {
		return []string{}
	}

	out := make([]string, 0, len(runes)-1)
	for i := 1; i < len(runes); i++ {
		var b strings.Builder
		b.Grow(len(keyword) + 1)
		b.WriteString(string(runes[:i]))
		b.WriteByte('.')
		b.WriteString(string(runes[i:]))
		out = append(out, b.String())
	}

	return out
}

type deleteStrategy struct{}

func (deleteStrategy) Name() string { return StrategyDelete }

// Variants removes one character at every position.
func (deleteStrategy) Variants(keyword string) []string {
	runes := []rune(keyword)
	out := make([]string, 0, len(runes))
	for i := range runes {
		out = append(out, string(runes[:i])+string(runes[i+1:]))
	}

	return out
}
