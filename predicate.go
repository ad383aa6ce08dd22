package titlecase

import (
	"unicode"
	"unicode/utf8"
)

// Is reports whether r already is a titlecase letter.
//
// It is true for the Unicode Lt category (the digraph titlecase forms such as
// ǅ) and for İ (U+0130), which Unicode files under Lu but which behaves as an
// already-titlecase letter: its titlecase mapping is itself and lowercasing
// it restores the dot distinction. Unlike unicode.IsTitle, Is therefore
// accepts İ.
//
// Runes whose titlecase form is a multi-rune expansion (ß, the ﬀ-ﬆ
// ligatures) are not titlecase, and neither are ordinary uppercase letters.
// The result never depends on locale.
func Is(r rune) bool {
	return unicode.Is(unicode.Lt, r) || r == 'İ'
}

// StartsTitle reports whether s is non-empty and its first rune satisfies Is.
// The remainder of s is never inspected.
func StartsTitle(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Is(r)
}

// StartsTitleRestLower reports whether s starts with a titlecase rune and no
// later rune is uppercase or titlecase. Non-letters in the remainder are
// fine. Empty input is false.
func StartsTitleRestLower(s string) bool {
	if !StartsTitle(s) {
		return false
	}
	_, size := utf8.DecodeRuneInString(s)
	for _, r := range s[size:] {
		if unicode.IsUpper(r) || Is(r) {
			return false
		}
	}
	return true
}
