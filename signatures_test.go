package weirdness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountMojibakeSignatures(t *testing.T) {
	set := newSignatureSet(defaultMojibakeLiterals(), mojibakeBoundaryRules)
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"plain ascii text", 0},
		{"naïve café", 0},

		// UTF-8 read as Latin-1/Windows-1252
		{"Ã¯", 1},
		{"naÃ¯ve", 1},
		{"Ã¼ber", 1},
		{"Ã€", 1}, // garbled À through Windows-1252
		{"Ã\u0080", 1}, // continuation byte landing on a C1 control

		// cautious trails only count mid-word
		{"cafÃ©", 0},
		{"Ã©tait", 1},
		{"CompanyÂ®", 0},
		{"Â®x", 1},

		// Windows-1252/-1250 garble of curly punctuation
		{"donâ€™t", 1},
		{"â€œquoteâ€", 2},

		// Windows-1251 garble of the same range
		{"вЂ“", 1},
		{"вЂ¦", 1},
		{"вЂ", 0},
		{"вЂ•", 0},

		// astral-plane garble
		{"ðŸ˜€", 1},

		// MacRoman
		{"√†", 1},
		{"√é", 1},
		{"a√ëb", 1},
		{"a√©b", 1},
		{"√©", 0},
		{"x√©", 0},

		// matched characters are consumed and can't start another match
		{"crÃ©Ã©e", 1},
		{"Ã¬ß", 1},
	}
	for _, tc := range cases {
		require.EqualValues(t, tc.want, set.Count(tc.text), "text %q", tc.text)
	}
}

func TestCountCommonSymbols(t *testing.T) {
	set := newSignatureSet(defaultCommonSymbolLiterals(), nil)
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hello", 0},
		{"…", 1},
		{"«»", 2},
		{"™®", 2},
		{"\ufeff", 1},
		{"it’s fine — really", 2},
		{"no¶", 0},
	}
	for _, tc := range cases {
		require.EqualValues(t, tc.want, set.Count(tc.text), "text %q", tc.text)
	}
}

func TestScorerSignatureCounts(t *testing.T) {
	require.EqualValues(t, 1, Default().CountMojibakeSignatures("naÃ¯ve"))
	require.EqualValues(t, 2, Default().CountCommonSymbols("«»"))
}

func TestIsWordRune(t *testing.T) {
	for _, r := range []rune{'a', 'Z', 'é', 'д', '7', '_'} {
		require.True(t, isWordRune(r), "rune %q", r)
	}
	for _, r := range []rune{' ', '.', '-', '«', '\n'} {
		require.False(t, isWordRune(r), "rune %q", r)
	}
}

func TestExtraPatterns(t *testing.T) {
	// the byte order mark read through Windows-1252 isn't a built-in
	s, err := New(&Options{ExtraMojibake: []string{"ï»¿"}})
	require.Nil(t, err)
	require.EqualValues(t, 1, s.mojibake.Count("ï»¿xml"))

	d, err := New(&Options{})
	require.Nil(t, err)
	require.EqualValues(t, 0, d.mojibake.Count("ï»¿xml"))

	s, err = New(&Options{ExtraSymbols: []string{"¶"}})
	require.Nil(t, err)
	require.EqualValues(t, -1, s.SequenceWeirdness("¶"))
}

func TestEmptyExtraPatternRejected(t *testing.T) {
	_, err := New(&Options{ExtraMojibake: []string{""}})
	require.NotNil(t, err)
	_, err = New(&Options{ExtraSymbols: []string{"€", ""}})
	require.NotNil(t, err)
}
