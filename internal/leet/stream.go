package leet

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer returns a transform.Transformer applying the same rules as
// Transform to a byte stream, for use with transform.NewReader or
// transform.NewWriter.
func (t *Transliterator) Transformer() transform.Transformer {
	return &streamTransformer{t: t}
}

type streamTransformer struct {
	t *Transliterator
	// offset counts source bytes consumed before the current call and is
	// only used to report errors.
	offset int
}

func (s *streamTransformer) Reset() {
	s.offset = 0
}

func (s *streamTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	defer func() {
		s.offset += nSrc
	}()

	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}

			r, size = utf8.DecodeRune(src[nSrc:])
		}

		glyph, res := s.t.resolve(r, size)
		if res == rejected {
			return nDst, nSrc, s.t.unmapped(r, size, s.offset+nSrc)
		}

		n := size
		if res == substituted {
			n = len(glyph)
		}

		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if res == substituted {
			copy(dst[nDst:], glyph)
		} else {
			copy(dst[nDst:], src[nSrc:nSrc+size])
		}

		nDst += n
		nSrc += size
	}

	return nDst, nSrc, nil
}
