// Package weirdness scores text for the degree to which its character
// sequence looks like an artifact of encoding corruption (mojibake) rather
// than naturally occurring text. It does not decode or repair anything: given
// several candidate re-decodings of the same bytes, the caller keeps the
// candidate with the lowest cost.
package weirdness

import (
	"sync"
	"unicode/utf8"

	errorutil "github.com/projectdiscovery/utils/errors"
	"golang.org/x/text/unicode/norm"
)

// Scorer Options
type Options struct {
	// ExtraMojibake adds literal garble sequences to the built-in
	// signature set. Built-ins are never removed.
	ExtraMojibake []string
	// ExtraSymbols adds benign symbols to the built-in common-symbol set.
	ExtraSymbols []string
}

// Scorer holds the precompiled pattern configuration. It is immutable after
// New returns and safe for concurrent use; every scoring call is a pure
// function over it.
type Scorer struct {
	mojibake *signatureSet
	symbols  *signatureSet
}

// New creates a scorer from options. A nil or zero Options falls back to
// DefaultConfig for the extra pattern sets.
func New(opts *Options) (*Scorer, error) {
	if opts == nil {
		opts = &Options{}
	}
	if len(opts.ExtraMojibake) == 0 {
		opts.ExtraMojibake = DefaultConfig.ExtraMojibake
	}
	if len(opts.ExtraSymbols) == 0 {
		opts.ExtraSymbols = DefaultConfig.ExtraSymbols
	}
	for _, set := range [][]string{opts.ExtraMojibake, opts.ExtraSymbols} {
		for _, lit := range set {
			if lit == "" {
				return nil, errorutil.NewWithTag("weirdness", "extra pattern literals cannot be empty")
			}
		}
	}
	mojibake := append(defaultMojibakeLiterals(), opts.ExtraMojibake...)
	symbols := append(defaultCommonSymbolLiterals(), opts.ExtraSymbols...)
	return &Scorer{
		mojibake: newSignatureSet(mojibake, mojibakeBoundaryRules),
		symbols:  newSignatureSet(symbols, nil),
	}, nil
}

// Result is the scoring breakdown for one candidate string.
type Result struct {
	Text      string
	Weirdness int
	Cost      int
}

// Score computes the full breakdown for text.
//
// Text is normalized to NFC first, so that penalties for diacritical marks
// don't apply to characters that have a precomposed form. The classified
// string is then matched against the adjacency rule table, and the raw
// normalized text against the two signature sets. Adjacency matches and
// confirmed garble signatures weigh double; common symbols subtract at weight
// one, so symbol-heavy but legitimate text may score below zero.
func (s *Scorer) Score(text string) Result {
	normalized := norm.NFC.String(text)
	weird := CountWeirdAdjacencies(Classify(normalized))
	adjustment := s.mojibake.Count(normalized)*2 - s.symbols.Count(normalized)
	return Result{
		Text:      text,
		Weirdness: weird*2 + adjustment,
		Cost:      weird*2 + adjustment + utf8.RuneCountInString(text),
	}
}

// CountMojibakeSignatures counts occurrences of literal byte-garble
// signatures in text. Callers scoring raw input should go through Score,
// which normalizes first.
func (s *Scorer) CountMojibakeSignatures(text string) int {
	return s.mojibake.Count(text)
}

// CountCommonSymbols counts occurrences of benign symbols that resemble
// mojibake but usually aren't.
func (s *Scorer) CountCommonSymbols(text string) int {
	return s.symbols.Count(text)
}

// SequenceWeirdness returns how often text has unexpected characters or
// sequences of characters. Any Unicode string, including the empty string, is
// valid input.
func (s *Scorer) SequenceWeirdness(text string) int {
	return s.Score(text).Weirdness
}

// TextCost is the overall cost of text: weirder is worse, and all else being
// equal shorter strings are better, since mis-decoding tends to inflate
// length. Cost is weirdness plus the character count.
func (s *Scorer) TextCost(text string) int {
	return s.Score(text).Cost
}

// PickBest returns the candidate with the lowest cost, along with that cost.
// The first candidate wins ties. An empty candidate list returns ("", 0).
func (s *Scorer) PickBest(candidates []string) (string, int) {
	var best string
	var bestCost int
	for i, c := range candidates {
		cost := s.TextCost(c)
		if i == 0 || cost < bestCost {
			best, bestCost = c, cost
		}
	}
	return best, bestCost
}

var (
	defaultScorer     *Scorer
	defaultScorerOnce sync.Once
)

// Default returns the shared scorer built from DefaultConfig. It is
// constructed on first use and never mutated afterwards.
func Default() *Scorer {
	defaultScorerOnce.Do(func() {
		s, err := New(nil)
		if err != nil {
			// only reachable with a broken DefaultConfig, which is
			// an integration bug rather than bad input text
			panic(err)
		}
		defaultScorer = s
	})
	return defaultScorer
}

// SequenceWeirdness scores text with the default scorer.
func SequenceWeirdness(text string) int {
	return Default().SequenceWeirdness(text)
}

// TextCost scores text with the default scorer.
func TextCost(text string) int {
	return Default().TextCost(text)
}
