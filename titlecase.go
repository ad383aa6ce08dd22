// Package titlecase converts runes and the leading rune of strings to their
// Unicode titlecase form, including the one-to-many special casings that
// plain unicode.ToTitle cannot express.
//
// Titlecase differs from uppercase for digraphs and ligatures:
//   - Ǆ (U+01C4) titlecases to ǅ (U+01C5), not to itself
//   - ﬄ (U+FB04) titlecases to the three runes "Ffl"
//   - ß (U+00DF) titlecases to the two runes "Ss"
//
// Turkish and Azerbaijani diverge from the default rules for the dotted and
// dotless i: under TrAz, i (U+0069) titlecases to İ (U+0130, dotted capital I)
// instead of plain I. Every function has a TrAz variant; the predicates do
// not, because whether a rune already is titlecase never depends on locale.
//
// The mapping data is generated from the Unicode Character Database by
// cmd/tablegen and compiled in; see table.go.
//
// All functions are safe for concurrent use.
package titlecase

import (
	"cmp"
	"iter"
	"slices"
	"unicode"
)

// None marks an absent slot in the fixed-width [3]rune results.
// It is negative so it can never collide with a real rune, including U+0000.
const None rune = -1

// Locale selects the titlecasing rules to apply.
type Locale uint8

const (
	// Und applies the default, locale-neutral Unicode rules.
	Und Locale = iota
	// TrAz applies the Turkish/Azerbaijani rules, which share the same
	// dotted/dotless i divergence.
	TrAz
)

// tableEntry associates a source rune with its titlecase expansion,
// front-filled and padded with None.
type tableEntry struct {
	cp rune
	tc [3]rune
}

func compareEntry(e tableEntry, r rune) int {
	return cmp.Compare(e.cp, r)
}

// lookup resolves r under loc: the Turkic override first, then the special
// casing table, then the simple one-to-one mapping. A miss everywhere is the
// identity mapping, so the result is total. n is the expansion length, 1-3.
func lookup(r rune, loc Locale) (tc [3]rune, n int) {
	if loc == TrAz {
		if i, ok := slices.BinarySearchFunc(turkicTitleTable[:], r, compareEntry); ok {
			e := turkicTitleTable[i]
			return e.tc, expLen(e.tc)
		}
	}
	if i, ok := slices.BinarySearchFunc(specialTitleTable[:], r, compareEntry); ok {
		e := specialTitleTable[i]
		return e.tc, expLen(e.tc)
	}
	return [3]rune{unicode.ToTitle(r), None, None}, 1
}

// expLen returns the number of used slots in a None-padded expansion.
func expLen(tc [3]rune) int {
	switch {
	case tc[1] == None:
		return 1
	case tc[2] == None:
		return 2
	default:
		return 3
	}
}

// Resolve returns the titlecase expansion of r under loc as a freshly
// allocated slice of 1 to 3 runes. Runes with no mapping resolve to
// themselves; there are no error conditions.
func Resolve(r rune, loc Locale) []rune {
	tc, n := lookup(r, loc)
	out := make([]rune, n)
	copy(out, tc[:n])
	return out
}

// ToTitle returns the default-locale titlecase expansion of r as a fixed
// three-slot array. The expansion occupies the leading slots; unused trailing
// slots are None.
func ToTitle(r rune) [3]rune {
	tc, _ := lookup(r, Und)
	return tc
}

// ToTitleTrAz is ToTitle under the Turkish/Azerbaijani rules:
// i (U+0069) maps to İ (U+0130).
func ToTitleTrAz(r rune) [3]rune {
	tc, _ := lookup(r, TrAz)
	return tc
}

// Expand returns the default-locale titlecase expansion of r as a sequence
// of 1 to 3 runes. The sequence is restartable: every range over it yields
// the same runes from the start.
func Expand(r rune) iter.Seq[rune] {
	return expand(r, Und)
}

// ExpandTrAz is Expand under the Turkish/Azerbaijani rules.
func ExpandTrAz(r rune) iter.Seq[rune] {
	return expand(r, TrAz)
}

func expand(r rune, loc Locale) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		tc, n := lookup(r, loc)
		for i := range n {
			if !yield(tc[i]) {
				return
			}
		}
	}
}
