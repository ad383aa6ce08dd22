package titlecase

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer returns a transform.Transformer that titlecases the first rune
// of the stream under loc and passes the remainder through, lowercasing it
// rune by rune when lowerRest is set. It composes with other x/text
// transformers, e.g. chained after norm.NFC.
//
// transform.String(Transformer(loc, lowerRest), s) is equivalent to the
// corresponding Title function. Reset re-arms the first-rune handling, so a
// single Transformer must not be shared by concurrent streams.
func Transformer(loc Locale, lowerRest bool) transform.Transformer {
	return &titleTransformer{loc: loc, lowerRest: lowerRest}
}

type titleTransformer struct {
	loc       Locale
	lowerRest bool
	seenFirst bool
}

func (t *titleTransformer) Reset() { t.seenFirst = false }

func (t *titleTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		switch {
		case !t.seenFirst:
			tc, n := lookup(r, t.loc)
			var buf [3 * utf8.UTFMax]byte
			w := 0
			for i := range n {
				w += utf8.EncodeRune(buf[w:], tc[i])
			}
			if nDst+w > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], buf[:w])
		case t.lowerRest:
			l := unicode.ToLower(r)
			if nDst+utf8.RuneLen(l) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], l)
		default:
			// Pass-through keeps the original bytes, even for
			// invalid UTF-8.
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		}
		nSrc += size
		t.seenFirst = true
	}
	return nDst, nSrc, nil
}
