package homoglyph_test

import (
	"lookalike/pkg/homoglyph"
	"math"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func TestDefaultOnlyLatinAndCyrillic(t *testing.T) {
	table := homoglyph.Default()
	require.Positive(t, table.Len())

	for _, r := range "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		for _, l := range table.Confusables(r) {
			require.True(t, unicode.In(l, unicode.Latin, unicode.Cyrillic),
				"lookalike %q of %q is neither Latin nor Cyrillic", l, r)
			require.NotEqual(t, r, l)
		}
	}

	// Greek omicron is a lookalike of 'o' but not in the allowed scripts.
	require.NotContains(t, table.Confusables('o'), 'ο')
	require.Contains(t, table.Confusables('o'), 'о')
}

func TestNewDropsSelfAndDuplicates(t *testing.T) {
	table := homoglyph.New(map[rune][]rune{
		'a': {'a', 'а', 'а', 'ɑ'},
		'q': {'q'},
	})

	require.Equal(t, []rune{'а', 'ɑ'}, table.Confusables('a'))
	require.Nil(t, table.Confusables('q'))
	require.Equal(t, 1, table.Len())
}

func TestNewFiltersScripts(t *testing.T) {
	table := homoglyph.New(map[rune][]rune{'o': {'о', 'ο', 'ᴏ'}}, unicode.Cyrillic)
	require.Equal(t, []rune{'о'}, table.Confusables('o'))
}

func TestNewCopiesInput(t *testing.T) {
	entries := map[rune][]rune{'o': {'о'}}
	table := homoglyph.New(entries)

	entries['o'][0] = 'x'
	entries['e'] = []rune{'е'}

	require.Equal(t, []rune{'о'}, table.Confusables('o'))
	require.Nil(t, table.Confusables('e'))
}

func TestConfusablesReturnsCopy(t *testing.T) {
	table := homoglyph.Default()
	got := table.Confusables('o')
	require.NotEmpty(t, got)
	got[0] = '!'

	require.NotContains(t, table.Confusables('o'), '!')
}

func TestOptions(t *testing.T) {
	table := homoglyph.Default()

	opts := table.Options('o')
	require.Equal(t, 'o', opts[0])
	require.Equal(t, table.Confusables('o'), opts[1:])

	require.Equal(t, []rune{'7'}, table.Options('7'))
}

func TestCombinations(t *testing.T) {
	table := homoglyph.New(map[rune][]rune{'o': {'о', 'ᴏ'}, 'z': {'ᴢ'}})

	require.EqualValues(t, 1, table.Combinations(""))
	require.EqualValues(t, 1, table.Combinations("n"))
	require.EqualValues(t, 3*2*3, table.Combinations("ozon"))
	require.EqualValues(t, uint64(math.MaxUint64), table.Combinations(strings.Repeat("o", 200)))
}
