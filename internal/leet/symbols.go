package leet

import (
	"fmt"
	"maps"
	"strings"
	"unicode"
)

// Alphabet lists every symbol a SymbolMap must define, in table order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Classic is the canonical table. I and L both map to "1", O and Q both map
// to "0", V and W are bare slashes, and the digit entries are not the
// inverse of the letter entries.
var Classic = mustSymbolMap(classicGlyphs)

// Cheatsheet is the letter table published with the classic one, which
// spells N as `|\|`, Q as `0_`, V as `\/` and W as `\/\/`. Digits are
// shared with Classic.
var Cheatsheet = mustSymbolMap(merge(classicGlyphs, map[rune]string{
	'N': `|\|`,
	'Q': `0_`,
	'V': `\/`,
	'W': `\/\/`,
}))

var classicGlyphs = map[rune]string{
	'A': `4`,
	'B': `I3`,
	'C': `[`,
	'D': `|)`,
	'E': `3`,
	'F': `ph`,
	'G': `6`,
	'H': `#`,
	'I': `1`,
	'J': `]`,
	'K': `|<`,
	'L': `1`,
	'M': `/\/\`,
	'N': `^/`,
	'O': `0`,
	'P': `|>`,
	'Q': `0`,
	'R': `I2`,
	'S': `5`,
	'T': `7`,
	'U': `(_)`,
	'V': `/`,
	'W': `//`,
	'X': `><`,
	'Y': `j`,
	'Z': `2`,
	'1': `L`,
	'2': `R`,
	'3': `E`,
	'4': `A`,
	'5': `S`,
	'6': `b`,
	'7': `T`,
	'8': `B`,
	'9': `g`,
	'0': `o`,
}

// SymbolMap is an immutable table from symbol to glyph sequence.
// The zero value is empty; build one with NewSymbolMap.
type SymbolMap struct {
	glyphs map[rune]string
}

// Entry is a single symbol and its replacement.
type Entry struct {
	Key   rune
	Glyph string
}

// IsSymbol reports whether r is one of the symbols in Alphabet.
func IsSymbol(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// NewSymbolMap builds a SymbolMap from entries. Lower-case letter keys are
// folded to upper case. Every symbol in Alphabet must be present exactly once
// with a non-empty glyph.
func NewSymbolMap(entries map[rune]string) (SymbolMap, error) {
	glyphs := make(map[rune]string, len(Alphabet))

	for key, glyph := range entries {
		upper := unicode.ToUpper(key)
		if !IsSymbol(upper) {
			return SymbolMap{}, fmt.Errorf("unsupported symbol %q: keys must be A-Z or 0-9", key)
		}

		if glyph == "" {
			return SymbolMap{}, fmt.Errorf("empty glyph for symbol %q", upper)
		}

		if _, dup := glyphs[upper]; dup {
			return SymbolMap{}, fmt.Errorf("duplicate symbol %q", upper)
		}

		glyphs[upper] = glyph
	}

	var missing strings.Builder

	for _, r := range Alphabet {
		if _, ok := glyphs[r]; !ok {
			missing.WriteRune(r)
		}
	}

	if missing.Len() > 0 {
		return SymbolMap{}, fmt.Errorf("missing symbols: %s", missing.String())
	}

	return SymbolMap{glyphs: glyphs}, nil
}

// Lookup returns the glyph for the symbol r. Keys are upper case; callers
// fold letters before looking them up.
func (m SymbolMap) Lookup(r rune) (string, bool) {
	glyph, ok := m.glyphs[r]
	return glyph, ok
}

// Len returns the number of symbols in the table.
func (m SymbolMap) Len() int {
	return len(m.glyphs)
}

// Keys returns the symbols in Alphabet order.
func (m SymbolMap) Keys() []rune {
	keys := make([]rune, 0, len(m.glyphs))

	for _, r := range Alphabet {
		if _, ok := m.glyphs[r]; ok {
			keys = append(keys, r)
		}
	}

	return keys
}

// Entries returns a copy of the table in Alphabet order.
func (m SymbolMap) Entries() []Entry {
	keys := m.Keys()
	entries := make([]Entry, len(keys))

	for i, r := range keys {
		entries[i] = Entry{Key: r, Glyph: m.glyphs[r]}
	}

	return entries
}

func mustSymbolMap(entries map[rune]string) SymbolMap {
	m, err := NewSymbolMap(entries)
	if err != nil {
		panic(err)
	}

	return m
}

func merge(base, overrides map[rune]string) map[rune]string {
	out := maps.Clone(base)
	maps.Copy(out, overrides)

	return out
}
