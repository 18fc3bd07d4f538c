// Package leet transliterates text into "leet speak" (1337) using a fixed
// lookup table of glyph sequences.
//
// Key pieces:
//   - SymbolMap: an immutable table from A-Z and 0-9 to replacement glyphs
//   - Classic, Cheatsheet: the built-in tables
//   - Transform: the pure, never-failing transform over Classic
//   - Transliterator: a configurable transform with a strict policy that
//     reports unmapped characters, plus a streaming transform.Transformer
//
// Substitution is keyed on the upper-case form of each character, so "a"
// and "A" produce the same glyph. Whitespace is always copied unchanged.
// The transform is not an involution: digits map back to letters, but not
// as the inverse of the letter table.
//
//	leet.Transform("Hola Johnnatan") // "#014 ]0#^/^/474^/"
package leet
