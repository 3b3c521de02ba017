package weirdness

import "strings"

// classSet is a bitmask over the category alphabet.
type classSet uint32

func classBit(c CharClass) classSet {
	return 1 << uint(strings.IndexByte(classAlphabet, byte(c)))
}

func setOf(classes ...CharClass) classSet {
	var s classSet
	for _, c := range classes {
		s |= classBit(c)
	}
	return s
}

func (s classSet) has(c CharClass) bool {
	return s&classBit(c) != 0
}

func (s classSet) without(classes ...CharClass) classSet {
	return s &^ setOf(classes...)
}

var allClasses = func() classSet {
	var s classSet
	for i := 0; i < len(classAlphabet); i++ {
		s |= setOf(CharClass(classAlphabet[i]))
	}
	return s
}()

// adjacencyRule flags a character (when second is zero) or an ordered pair of
// adjacent characters whose categories rarely occur together in well-formed
// text.
type adjacencyRule struct {
	name   string
	first  classSet
	second classSet
}

// length returns how many positions a match of the rule consumes.
func (r adjacencyRule) length() int {
	if r.second == 0 {
		return 1
	}
	return 2
}

func (r adjacencyRule) matchAt(classes []CharClass, i int) bool {
	if !r.first.has(classes[i]) {
		return false
	}
	if r.second == 0 {
		return true
	}
	return i+1 < len(classes) && r.second.has(classes[i+1])
}

// exclusiveCategories rarely abut each other in well-formed text: every
// unordered pair across this set is anomalous. Symbol modifiers are left out
// because they are penalized standalone already.
var exclusiveCategories = []CharClass{
	ClassMark, ClassLetterMod, ClassMiscNumber, ClassMathCurrency, ClassOtherSymbol,
}

// weirdnessRules is the fixed rule table, built once and evaluated in order.
var weirdnessRules = buildWeirdnessRules()

func buildWeirdnessRules() []adjacencyRule {
	latinCased := setOf(ClassLatinUpper, ClassLatinLower)
	nonLatin := setOf(ClassUpper, ClassLower, ClassNonCased)
	anyUpper := setOf(ClassLatinUpper, ClassUpper)

	rules := []adjacencyRule{
		// A mark stacking on anything but a non-cased letter or another
		// mark. Cased base letters have precomposed forms, and input is
		// NFC-normalized before classification.
		{name: "floating-mark", first: allClasses.without(ClassNonCased, ClassMark), second: setOf(ClassMark)},

		// Latin and non-Latin letters touching, in either order. The
		// ambiguities mojibake creates come from encodings built around
		// the Latin script.
		{name: "latin-then-foreign", first: latinCased, second: nonLatin},
		{name: "foreign-then-latin", first: nonLatin, second: latinCased},

		// IPA uses lowercase letters only, so an IPA letter touching a
		// capital usually means an accented capital decoded wrong.
		{name: "capital-then-ipa", first: anyUpper, second: setOf(ClassIPA)},
		{name: "ipa-then-capital", first: setOf(ClassIPA), second: anyUpper},

		// A non-combining diacritic on its own, like a bare diaeresis.
		{name: "stray-diacritic", first: setOf(ClassSymbolMod)},

		// C1 controls are almost always Latin-1 bytes that were meant to
		// be Windows-1252.
		{name: "c1-control", first: setOf(ClassControl)},

		{name: "private-use", first: setOf(ClassPrivateUse)},
		{name: "unassigned", first: setOf(ClassUnassigned)},
	}

	for _, cat := range exclusiveCategories {
		others := setOf(exclusiveCategories...).without(cat)
		rules = append(rules, adjacencyRule{
			name:   "adjacent-" + string(cat),
			first:  setOf(cat),
			second: others,
		})
	}
	return rules
}

// CountWeirdAdjacencies counts every non-overlapping match of the weirdness
// rule table in a classified string, scanning left to right. At each position
// the first rule that matches wins and consumes its full length.
func CountWeirdAdjacencies(classes []CharClass) int {
	count := 0
	for i := 0; i < len(classes); {
		advance := 1
		for _, rule := range weirdnessRules {
			if rule.matchAt(classes, i) {
				count++
				advance = rule.length()
				break
			}
		}
		i += advance
	}
	return count
}
