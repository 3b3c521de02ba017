package weirdness

import (
	"strings"
	"unicode"
	"unicode/utf8"

	ahocorasick "github.com/BobuSumisu/aho-corasick"
)

// The signature sets below describe what UTF-8 byte sequences look like after
// being decoded with a single-byte legacy charset. Each two-character garble
// is a lead byte followed by a continuation byte, both read through the wrong
// decoder, so the sets are written as lead-set x trail-set products.

const (
	// UTF-8 lead bytes 0xC2/0xC3 as seen through ISO-8859-1/-2,
	// Windows-1252 and Windows-1250.
	latin1Leads = "ÂÃĂ"

	// Continuation bytes through ISO-8859-1: the 0xA0-0xBF punctuation
	// row, minus the characters that legitimately end words (those are
	// handled by the cautious mid-word rule). The euro sign is byte 0x80
	// through Windows-1252, the garble of À.
	latin1Trails = "€\u00a0¡¢£¤¥¦§¨«¬\u00ad¯±²³¶¸¹»¼½¾¿"

	// Continuation bytes through ISO-8859-2 / Windows-1250. The caron is
	// left out, its byte only garbles the division sign.
	latin2Trails = "Ą˘ŁĽŚŠŞŤŹŽŻą˛łľśšşťź˝žż"

	// Continuation-byte decodings that appear at the end of real words
	// (word®, 10°, señorª...): only treated as garble mid-word.
	cautiousTrails = "©®°ªºµ´·"

	// UTF-8 lead bytes 0xC2/0xC3 through MacRoman.
	macRomanLeads = "¬√"

	// Continuation bytes through MacRoman, leaving out most math symbols
	// and the eye-like letters (accented o's and friends) that show up in
	// kaomoji with ¬ as the nose.
	macRomanTrails = "ÄÅÇÉÑÖÜáàâäãåçéèêëíìîïñúùû†°¢£§•¶ß®™´¨ÆØ¥µªºæø"

	// MacRoman garble of é and í, caught only strictly inside a word.
	macRomanMidWordTrails = "©≠"

	// Lead byte 0xF0 of astral-plane characters (mostly emoji) through
	// ISO-8859-1/-2 or Windows-1252/-1250, followed by byte 0x9F.
	astralLeads  = "ðđ"
	astralTrails = "\u009fŸ"

	// Windows-1252/-1250 garble of General Punctuation always starts with
	// bytes 0xE2 0x80.
	win1252PunctGarble = "â€"

	// The same two bytes through Windows-1251, plus the third byte.
	win1251PunctLead   = "вЂ"
	win1251PunctTrails = "“”–™љњќћ¦"
)

// c1Controls returns U+0080..U+009F, the ISO-8859-1 reading of UTF-8
// continuation bytes 0x80-0x9F.
func c1Controls() string {
	var b strings.Builder
	for r := rune(0x80); r <= 0x9f; r++ {
		b.WriteRune(r)
	}
	return b.String()
}

// commonSymbols appear in mojibake but also commonly on their own, so each
// occurrence slightly lowers suspicion instead of raising it.
const commonSymbols = "…–—‘’“”¡¿°™®‹›«»\u00a0´×ß\ufeff"

// crossProduct expands a lead set and a trail set into their two-character
// literal sequences.
func crossProduct(leads, trails string) []string {
	var out []string
	for _, l := range leads {
		for _, t := range trails {
			out = append(out, string(l)+string(t))
		}
	}
	return out
}

func defaultMojibakeLiterals() []string {
	var out []string
	out = append(out, crossProduct(latin1Leads, c1Controls()+latin1Trails+latin2Trails)...)
	out = append(out, crossProduct(macRomanLeads, macRomanTrails)...)
	out = append(out, crossProduct(astralLeads, astralTrails)...)
	out = append(out, win1252PunctGarble)
	for _, t := range win1251PunctTrails {
		out = append(out, win1251PunctLead+string(t))
	}
	return out
}

func defaultCommonSymbolLiterals() []string {
	var out []string
	for _, r := range commonSymbols {
		out = append(out, string(r))
	}
	return out
}

// boundaryRule is a lead/trail pair that only counts when the required side
// touches a word character. prevWord constrains the character before the
// lead, nextWord the character after the trail.
type boundaryRule struct {
	name     string
	leads    string
	trails   string
	prevWord bool
	nextWord bool
}

var mojibakeBoundaryRules = []boundaryRule{
	{name: "cautious-latin", leads: latin1Leads, trails: cautiousTrails, nextWord: true},
	{name: "macroman-midword", leads: "√", trails: macRomanMidWordTrails, prevWord: true, nextWord: true},
}

// isWordRune pins down the word-character definition used at signature
// boundaries: letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// signatureSet matches a fixed set of literal character sequences. Plain
// literals go through an Aho-Corasick automaton, the word-boundary-sensitive
// rules through an explicit rune scan; both feed one non-overlapping count.
type signatureSet struct {
	trie     *ahocorasick.Trie
	boundary []boundaryRule
}

func newSignatureSet(literals []string, boundary []boundaryRule) *signatureSet {
	return &signatureSet{
		trie:     ahocorasick.NewTrieBuilder().AddStrings(literals).Build(),
		boundary: boundary,
	}
}

// Count returns the number of non-overlapping signature occurrences in text.
// The scan runs left to right and every match consumes its characters, so a
// character inside one match never starts another. A boundary rule consumes
// the word character after its trail as well.
func (s *signatureSet) Count(text string) int {
	litAt := map[int]int{}
	for _, m := range s.trie.MatchString(text) {
		litAt[int(m.Pos())] = len(m.Match())
	}
	runes := []rune(text)
	count := 0
	for i, off := 0, 0; i < len(runes); {
		if n := s.boundaryMatchLen(runes, i); n > 0 {
			count++
			for ; n > 0; n-- {
				off += utf8.RuneLen(runes[i])
				i++
			}
			continue
		}
		if n, ok := litAt[off]; ok {
			count++
			for n > 0 {
				n -= utf8.RuneLen(runes[i])
				off += utf8.RuneLen(runes[i])
				i++
			}
			continue
		}
		off += utf8.RuneLen(runes[i])
		i++
	}
	return count
}

// boundaryMatchLen reports how many runes a boundary rule match starting at i
// consumes, or zero if none matches there.
func (s *signatureSet) boundaryMatchLen(runes []rune, i int) int {
	if i+1 >= len(runes) {
		return 0
	}
	for _, rule := range s.boundary {
		if !strings.ContainsRune(rule.leads, runes[i]) ||
			!strings.ContainsRune(rule.trails, runes[i+1]) {
			continue
		}
		if rule.prevWord && (i == 0 || !isWordRune(runes[i-1])) {
			continue
		}
		if rule.nextWord {
			if i+2 >= len(runes) || !isWordRune(runes[i+2]) {
				continue
			}
			return 3
		}
		return 2
	}
	return 0
}
