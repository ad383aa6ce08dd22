package titlecase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Title returns s with its first rune replaced by its default-locale
// titlecase expansion. The remainder is copied unchanged, so the result can
// be up to two runes longer than the input ("ﬄox" becomes "Fflox").
// Empty input returns empty output.
func Title(s string) string {
	return title(s, Und, false)
}

// TitleLowerRest is Title with every rune after the first lowercased using
// the locale-neutral one-to-one mapping.
func TitleLowerRest(s string) string {
	return title(s, Und, true)
}

// TitleTrAz is Title under the Turkish/Azerbaijani rules:
// "istanbul" becomes "İstanbul".
func TitleTrAz(s string) string {
	return title(s, TrAz, false)
}

// TitleTrAzLowerRest is TitleTrAz with the remainder lowercased. The
// remainder uses the locale-neutral lowercase mapping, so an I in the rest
// becomes i, not ı.
func TitleTrAzLowerRest(s string) string {
	return title(s, TrAz, true)
}

func title(s string, loc Locale, lowerRest bool) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	tc, n := lookup(first, loc)

	var b strings.Builder
	b.Grow(len(s) + 2*utf8.UTFMax) // at most 2 extra runes from a 3-wide expansion
	for i := range n {
		b.WriteRune(tc[i])
	}
	rest := s[size:]
	if !lowerRest {
		b.WriteString(rest)
		return b.String()
	}
	for _, r := range rest {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
