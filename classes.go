package weirdness

import "unicode"

// CharClass is a coarse character category relevant to mojibake detection.
// The byte values double as a compact printable encoding, so a classified
// string can be inspected and asserted on directly (see ClassString).
type CharClass byte

const (
	ClassLatinUpper   CharClass = 'L' // Latin capital letter
	ClassLatinLower   CharClass = 'l' // Latin lowercase letter
	ClassUpper        CharClass = 'A' // non-Latin capital or title-case letter
	ClassLower        CharClass = 'a' // non-Latin lowercase letter
	ClassNonCased     CharClass = 'C' // letter without case (Lo)
	ClassIPA          CharClass = 'i' // lowercase letter from the IPA Extensions block
	ClassLetterMod    CharClass = 'm' // letter modifier (Lm)
	ClassMark         CharClass = 'M' // combining, spacing or enclosing mark
	ClassMiscNumber   CharClass = 'N' // miscellaneous number (No)
	ClassMathCurrency CharClass = '1' // math or currency symbol (Sm, Sc)
	ClassSymbolMod    CharClass = '2' // symbol modifier (Sk)
	ClassOtherSymbol  CharClass = '3' // other symbol (So)
	ClassControl      CharClass = 'X' // C1 control character
	ClassSurrogate    CharClass = 'S' // surrogate code point (Cs)
	ClassUnassigned   CharClass = '_' // unassigned code point (Cn)
	ClassPrivateUse   CharClass = 'P' // private use (Co)
	ClassWhitespace   CharClass = ' '
	ClassOther        CharClass = 'o' // punctuation, digits and anything else
)

// classAlphabet lists every CharClass value. Its index order defines the bit
// assignment used by classSet in rules.go.
const classAlphabet = "LlAaCimMN123XS_P o"

// latinCutoff is the first codepoint at which cased Latin-script letters stop
// counting as "Latin" for classification. Letters beyond it (IPA, phonetic
// extensions) behave like foreign-script letters in mojibake, which is what
// the adjacency rules rely on.
const latinCutoff = 0x200

const (
	ipaBlockLo = 0x250 // IPA Extensions
	ipaBlockHi = 0x2af
)

func isLatin(r rune) bool {
	return r < latinCutoff && unicode.Is(unicode.Latin, r)
}

func classifyRune(r rune) CharClass {
	if r >= 0x80 && r <= 0x9f {
		return ClassControl
	}
	switch {
	case unicode.In(r, unicode.Lu, unicode.Lt):
		if isLatin(r) {
			return ClassLatinUpper
		}
		return ClassUpper
	case unicode.Is(unicode.Ll, r):
		if isLatin(r) {
			return ClassLatinLower
		}
		if r >= ipaBlockLo && r <= ipaBlockHi {
			return ClassIPA
		}
		return ClassLower
	case unicode.Is(unicode.Lo, r):
		return ClassNonCased
	case unicode.Is(unicode.Lm, r):
		return ClassLetterMod
	case unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me):
		return ClassMark
	case unicode.Is(unicode.No, r):
		return ClassMiscNumber
	case unicode.In(r, unicode.Sm, unicode.Sc):
		return ClassMathCurrency
	case unicode.Is(unicode.Sk, r):
		if r < 0x80 {
			// ^ and ` are repurposed as carets, quotes and happy eyes
			// far too often to be treated as stray diacritics.
			return ClassOther
		}
		return ClassSymbolMod
	case unicode.Is(unicode.So, r):
		return ClassOtherSymbol
	case r == '\t' || r == '\n' || r == '\v' || r == '\f' || r == '\r':
		return ClassWhitespace
	case unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp):
		return ClassWhitespace
	case unicode.Is(unicode.Cs, r):
		return ClassSurrogate
	case unicode.Is(unicode.Co, r):
		return ClassPrivateUse
	}
	if !unicode.In(r, unicode.C, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z) {
		return ClassUnassigned
	}
	return ClassOther
}

// Classify maps every character of text to its CharClass. The result is
// aligned one to one with the rune sequence of text: classification is total,
// so len(Classify(s)) always equals the rune count of s.
func Classify(text string) []CharClass {
	classes := make([]CharClass, 0, len(text))
	for _, r := range text {
		classes = append(classes, classifyRune(r))
	}
	return classes
}

// ClassString returns the classified form of text as a plain string of class
// codes, e.g. ClassString("Hi there") == "Ll lllll".
func ClassString(text string) string {
	classes := Classify(text)
	b := make([]byte, len(classes))
	for i, c := range classes {
		b[i] = byte(c)
	}
	return string(b)
}
