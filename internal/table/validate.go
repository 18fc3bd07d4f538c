package table

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"leet/internal/diagnostic"
	"leet/internal/leet"
)

// Validate checks a table file for completeness. It reports every problem
// rather than stopping at the first one.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("table_is_nil", "table file is nil", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported table version %q, want %q", f.Version, CurrentVersion), "")
	}

	if f.Name == "" {
		res.AddInfo("unnamed_table", "table has no name", "")
	}

	if f.Description == "" {
		res.AddInfo("undescribed_table", "table has no description", "")
	}

	res.Merge(validateSymbols(f.Symbols))

	return res
}

// validateSymbols checks every entry and reports symbols that are missing.
func validateSymbols(symbols map[string]string) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	seen := make(map[rune]string, len(symbols))

	// Sorted so that upper-case keys win over their lower-case duplicates.
	for _, key := range slices.Sorted(maps.Keys(symbols)) {
		glyph := symbols[key]

		if utf8.RuneCountInString(key) != 1 {
			res.AddError("invalid_key", "key must be exactly one character", key)
			continue
		}

		r, _ := utf8.DecodeRuneInString(key)
		upper := unicode.ToUpper(r)

		if !leet.IsSymbol(upper) {
			res.AddError("unsupported_key", "key must be a letter A-Z or a digit 0-9", key)
			continue
		}

		if prev, dup := seen[upper]; dup {
			res.AddError("duplicate_key", fmt.Sprintf("symbol already defined by key %q", prev), key)
			continue
		}

		seen[upper] = key

		if upper != r {
			res.AddWarning("folded_key", fmt.Sprintf("lower-case key folded to %q", upper), key)
		}

		if glyph == "" {
			res.AddError("empty_glyph", "glyph is empty", key)
			continue
		}

		if strings.ContainsFunc(glyph, unicode.IsSpace) {
			res.AddWarning("whitespace_glyph", "glyph contains whitespace", key)
		}
	}

	for _, r := range leet.Alphabet {
		if _, ok := seen[r]; !ok {
			res.AddError("missing_symbol", "symbol is not defined", string(r))
		}
	}

	return res
}

// SymbolMap validates the file and builds an immutable SymbolMap from it.
func (f *File) SymbolMap() (leet.SymbolMap, error) {
	if err := Validate(f).Error(); err != nil {
		return leet.SymbolMap{}, fmt.Errorf("invalid table: %w", err)
	}

	entries := make(map[rune]string, len(f.Symbols))

	for key, glyph := range f.Symbols {
		r, _ := utf8.DecodeRuneInString(key)
		entries[r] = glyph
	}

	return leet.NewSymbolMap(entries)
}
