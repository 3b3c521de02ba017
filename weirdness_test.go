package weirdness

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

var sampleTexts = []string{
	"",
	"hello world",
	"naïve café déjà vu",
	"naÃ¯ve cafÃ© dÃ©jÃ\u00a0 vu",
	"«symbols»… — everywhere",
	"日本語テキスト",
	"mixed 日本語 and English",
	"e\u0301tude",
	"bad\u0085control",
}

func TestTextCostIdentity(t *testing.T) {
	for _, text := range sampleTexts {
		require.EqualValues(t, SequenceWeirdness(text)+utf8.RuneCountInString(text), TextCost(text), "text %q", text)
	}
}

func TestEmptyString(t *testing.T) {
	require.Zero(t, SequenceWeirdness(""))
	require.Zero(t, TextCost(""))
}

func TestCommonSymbolHeavyTextScoresNonWeird(t *testing.T) {
	// legitimate symbol-heavy text may go negative, never positive
	for _, text := range []string{"«»", "…—–", "“”‘’", "¡¿"} {
		require.LessOrEqual(t, SequenceWeirdness(text), 0, "text %q", text)
	}
}

func TestC1ControlRaisesWeirdness(t *testing.T) {
	for _, text := range []string{"", "hello", "«text»", "naïve"} {
		with := SequenceWeirdness(text + "\u0085")
		require.GreaterOrEqual(t, with, SequenceWeirdness(text)+2, "text %q", text)
	}
}

func TestScriptMixingPenalty(t *testing.T) {
	// Latin lowercase directly beside a Cyrillic letter
	require.EqualValues(t, 2, SequenceWeirdness("aд"))
	require.Zero(t, SequenceWeirdness("a д"))
	require.Greater(t, SequenceWeirdness("aд"), SequenceWeirdness("a д"))
}

func TestNFCIdempotence(t *testing.T) {
	for _, text := range sampleTexts {
		require.EqualValues(t, SequenceWeirdness(text), SequenceWeirdness(norm.NFC.String(text)), "text %q", text)
	}
	// a decomposed accent is not a floating mark once composed
	require.Zero(t, SequenceWeirdness("e\u0301tude"))
	require.EqualValues(t, SequenceWeirdness("étude"), SequenceWeirdness("e\u0301tude"))
}

func TestMojibakeAdjustment(t *testing.T) {
	// exactly one garble signature, no common symbols, no category
	// weirdness: the adjustment alone is 2
	require.EqualValues(t, 2, SequenceWeirdness("Ã¼ber"))
}

func TestMisdecodedCandidateCostsMore(t *testing.T) {
	// the same bytes decoded right, and decoded as Latin-1 when they were
	// really UTF-8
	good := "naïve café déjà vu"
	bad := "naÃ¯ve cafÃ© dÃ©jÃ\u00a0 vu"
	require.Greater(t, TextCost(bad), TextCost(good))

	picked, cost := Default().PickBest([]string{bad, good})
	require.Equal(t, good, picked)
	require.EqualValues(t, TextCost(good), cost)
}

func TestPickBest(t *testing.T) {
	s, err := New(nil)
	require.Nil(t, err)

	picked, cost := s.PickBest(nil)
	require.Empty(t, picked)
	require.Zero(t, cost)

	// ties go to the first candidate
	picked, _ = s.PickBest([]string{"abc", "cba"})
	require.Equal(t, "abc", picked)
}

func TestScoreBreakdown(t *testing.T) {
	s, err := New(nil)
	require.Nil(t, err)
	res := s.Score("Ã¼ber")
	require.Equal(t, "Ã¼ber", res.Text)
	require.EqualValues(t, 2, res.Weirdness)
	require.EqualValues(t, 2+5, res.Cost)
}

func TestDefaultScorerShared(t *testing.T) {
	require.Same(t, Default(), Default())
}
