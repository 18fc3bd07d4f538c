package leet

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transliterator applies a SymbolMap to text. It is read-only after New and
// safe for concurrent use.
type Transliterator struct {
	symbols SymbolMap
	policy  Policy
}

// Option configures a Transliterator.
type Option func(*Transliterator)

// WithSymbols sets the table. An empty SymbolMap leaves Classic in place.
func WithSymbols(m SymbolMap) Option {
	return func(t *Transliterator) {
		if m.Len() > 0 {
			t.symbols = m
		}
	}
}

// WithPolicy sets the policy for unmapped characters.
func WithPolicy(p Policy) Option {
	return func(t *Transliterator) {
		t.policy = p
	}
}

// New returns a Transliterator over Classic with PolicyPassThrough unless
// overridden by opts.
func New(opts ...Option) *Transliterator {
	t := &Transliterator{
		symbols: Classic,
		policy:  PolicyPassThrough,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

var defaultTransliterator = New()

// Transform transliterates text with the Classic table, passing unmapped
// characters through. It never fails and Transform("") == "".
func Transform(text string) string {
	out, _ := defaultTransliterator.Transform(text)
	return out
}

// Symbols returns the table in use.
func (t *Transliterator) Symbols() SymbolMap {
	return t.symbols
}

// Policy returns the unmapped-character policy in use.
func (t *Transliterator) Policy() Policy {
	return t.policy
}

// Transform transliterates text character by character. Under PolicyStrict
// it returns an *UnmappedCharacterError for the first character that is
// neither whitespace nor in the table.
func (t *Transliterator) Transform(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	var out strings.Builder

	out.Grow(len(text) * 2)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch glyph, res := t.resolve(r, size); res {
		case substituted:
			out.WriteString(glyph)
		case kept:
			out.WriteString(text[i : i+size])
		case rejected:
			return "", t.unmapped(r, size, i)
		}

		i += size
	}

	return out.String(), nil
}

type resolution int

const (
	substituted resolution = iota
	kept
	rejected
)

// resolve decides how the character r, decoded from size bytes, is emitted.
func (t *Transliterator) resolve(r rune, size int) (string, resolution) {
	invalid := r == utf8.RuneError && size == 1

	if !invalid {
		if unicode.IsSpace(r) {
			return "", kept
		}

		if glyph, ok := t.symbols.Lookup(unicode.ToUpper(r)); ok {
			return glyph, substituted
		}
	}

	if t.policy == PolicyStrict {
		return "", rejected
	}

	return "", kept
}

func (t *Transliterator) unmapped(r rune, size, offset int) error {
	return &UnmappedCharacterError{
		Char:    r,
		Offset:  offset,
		Invalid: r == utf8.RuneError && size == 1,
	}
}
