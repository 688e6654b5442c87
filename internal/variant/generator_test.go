package variant_test

import (
	"lookalike/internal/variant"
	"lookalike/pkg/domain"
	"lookalike/pkg/homoglyph"
	"lookalike/pkg/serrors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func only(t *testing.T, table *homoglyph.Table, name string) *variant.Generator {
	t.Helper()
	g, err := variant.NewWithStrategies(table, name)
	require.NoError(t, err)

	return g
}

func TestAppend(t *testing.T) {
	g := only(t, nil, variant.StrategyAppend)

	out := g.Generate([]string{"ozon"})
	require.Len(t, out, 52)
	require.Equal(t, "ozona", out[0])
	require.Equal(t, "ozonz", out[25])
	require.Equal(t, "ozonA", out[26])
	require.Equal(t, "ozonZ", out[51])

	empty := g.Generate([]string{""})
	require.Len(t, empty, 52)
	for _, v := range empty {
		require.Equal(t, 1, utf8.RuneCountInString(v))
	}
}

func TestDelete(t *testing.T) {
	g := only(t, nil, variant.StrategyDelete)

	require.Equal(t, []string{"zon", "oon", "ozn", "ozo"}, g.Generate([]string{"ozon"}))
	require.Equal(t, []string{""}, g.Generate([]string{"x"}))
	require.Empty(t, g.Generate([]string{""}))

	// Runes, not bytes.
	require.Equal(t, []string{"zon", "оon", "оzn", "оzo"}, g.Generate([]string{"оzon"}))
}

func TestSplit(t *testing.T) {
	g := only(t, nil, variant.StrategySplit)

	require.Equal(t, []string{"o.zon", "oz.on", "ozo.n"}, g.Generate([]string{"ozon"}))
	require.Empty(t, g.Generate([]string{"x"}))
	require.Empty(t, g.Generate([]string{""}))
	require.Equal(t, []string{"о.z"}, g.Generate([]string{"оz"}))
}

func TestHomoglyph(t *testing.T) {
	table := homoglyph.New(map[rune][]rune{'o': {'о', 'ᴏ'}, 'z': {'ᴢ'}})
	g := only(t, table, variant.StrategyHomoglyph)

	out := g.Generate([]string{"ozon"})
	require.Len(t, out, 18)
	require.Equal(t, "ozon", out[0])
	require.Contains(t, out, "оzоn")
	require.Contains(t, out, "ᴏᴢᴏn")

	seen := map[string]struct{}{}
	for _, v := range out {
		require.Equal(t, 4, utf8.RuneCountInString(v))
		require.True(t, strings.HasSuffix(v, "n"))
		seen[v] = struct{}{}
	}
	require.Len(t, seen, 18, "combinations are distinct")

	require.Equal(t, []string{"tt"}, g.Generate([]string{"tt"}))
}

func TestHomoglyphCountMatchesTable(t *testing.T) {
	table := homoglyph.Default()
	g := only(t, table, variant.StrategyHomoglyph)

	for _, kw := range []string{"ozon", "paypal", "bank", "x"} {
		require.EqualValues(t, table.Combinations(kw), len(g.Generate([]string{kw})), kw)
	}
}

func TestGenerateConcatenatesWithoutDedupe(t *testing.T) {
	table := homoglyph.Default()
	g := variant.New(table)
	require.Equal(t, []string{"append", "homoglyph", "split", "delete"}, g.Strategies())

	seeds := []string{"ozon", "ozon"}
	out := g.Generate(seeds)

	perSeed := 52 + int(table.Combinations("ozon")) + 3 + 4
	require.Len(t, out, 2*perSeed)
	require.Equal(t, out[:perSeed], out[perSeed:])
	require.Equal(t, []string{"ozon", "ozon"}, seeds)
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := variant.New(homoglyph.Default())
	seeds := []string{"ozon", "sber"}

	require.Equal(t, g.Generate(seeds), g.Generate(seeds))
}

func TestGenerateEmpty(t *testing.T) {
	g := variant.New(homoglyph.Default())

	require.Empty(t, g.Generate(nil))
	require.NotNil(t, g.Generate(nil))

	// "" must not crash any strategy: 52 appends plus the empty homoglyph product.
	require.Len(t, g.Generate([]string{""}), 53)
}

func TestCandidatesTagging(t *testing.T) {
	g := variant.New(homoglyph.Default())
	seeds := []string{"ozon", "ya"}

	cands := g.Candidates(seeds)
	require.Equal(t, g.Generate(seeds), domain.Keywords(cands))

	var deleted []string
	for _, c := range cands {
		require.Contains(t, seeds, c.Seed)
		if c.Strategy == variant.StrategyDelete && c.Seed == "ozon" {
			deleted = append(deleted, c.Keyword)
		}
	}
	require.Equal(t, []string{"zon", "oon", "ozn", "ozo"}, deleted)
}

func TestNewWithStrategiesErrors(t *testing.T) {
	_, err := variant.NewWithStrategies(homoglyph.Default())
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)

	_, err = variant.NewWithStrategies(homoglyph.Default(), "bitsquat")
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)

	_, err = variant.NewWithStrategies(nil, variant.StrategyHomoglyph)
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)
}
