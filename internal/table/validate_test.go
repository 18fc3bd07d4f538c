package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leet/internal/diagnostic"
	"leet/internal/leet"
)

// completeFile returns a valid table file mapping every symbol to itself.
func completeFile() *File {
	f := &File{Version: CurrentVersion, Symbols: map[string]string{}}
	for _, r := range leet.Alphabet {
		f.Symbols[string(r)] = string(r)
	}

	return f
}

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code+":"+d.Key)
	}

	return out
}

func TestValidatePresets(t *testing.T) {
	for _, name := range PresetNames() {
		f, ok := PresetFile(name)
		require.True(t, ok)

		res := Validate(f)
		assert.True(t, res.IsValid(), "preset %s: %v", name, res.Error())
		assert.Empty(t, res.Warnings)
		assert.Empty(t, res.Infos)
	}
}

func TestValidateInfos(t *testing.T) {
	tests := []struct {
		name        string
		tableName   string
		description string
		infos       []string
	}{
		{"named and described", "mine", "my table", nil},
		{"missing name", "", "my table", []string{"unnamed_table:"}},
		{"missing description", "mine", "", []string{"undescribed_table:"}},
		{"missing both", "", "", []string{"unnamed_table:", "undescribed_table:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := completeFile()
			f.Name = tt.tableName
			f.Description = tt.description

			res := Validate(f)
			assert.True(t, res.IsValid())
			assert.ElementsMatch(t, tt.infos, codes(res.Infos))
		})
	}
}

func TestValidateMergesSymbolProblems(t *testing.T) {
	f := completeFile()
	f.Version = "2"
	delete(f.Symbols, "A")
	f.Symbols["b"] = "x"

	res := Validate(f)
	assert.Equal(t, []string{"unsupported_version:", "duplicate_key:b", "missing_symbol:A"}, codes(res.Errors))
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	require.True(t, res.HasErrors())
	assert.Equal(t, "table_is_nil", res.Errors[0].Code)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(f *File)
		errors   []string
		warnings []string
	}{
		{
			name:   "complete",
			mutate: func(f *File) {},
		},
		{
			name:   "unsupported version",
			mutate: func(f *File) { f.Version = "2" },
			errors: []string{"unsupported_version:"},
		},
		{
			name: "missing symbols",
			mutate: func(f *File) {
				delete(f.Symbols, "Q")
				delete(f.Symbols, "5")
			},
			errors: []string{"missing_symbol:Q", "missing_symbol:5"},
		},
		{
			name:   "multi character key",
			mutate: func(f *File) { f.Symbols["AB"] = "x" },
			errors: []string{"invalid_key:AB"},
		},
		{
			name:   "empty key",
			mutate: func(f *File) { f.Symbols[""] = "x" },
			errors: []string{"invalid_key:"},
		},
		{
			name:   "unsupported key",
			mutate: func(f *File) { f.Symbols["!"] = "x" },
			errors: []string{"unsupported_key:!"},
		},
		{
			name:   "empty glyph",
			mutate: func(f *File) { f.Symbols["E"] = "" },
			errors: []string{"empty_glyph:E"},
		},
		{
			name:   "duplicate after folding",
			mutate: func(f *File) { f.Symbols["e"] = "3" },
			errors: []string{"duplicate_key:e"},
		},
		{
			name: "lower case key",
			mutate: func(f *File) {
				delete(f.Symbols, "K")
				f.Symbols["k"] = "|<"
			},
			warnings: []string{"folded_key:k"},
		},
		{
			name:     "glyph with whitespace",
			mutate:   func(f *File) { f.Symbols["W"] = `\/ \/` },
			warnings: []string{"whitespace_glyph:W"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := completeFile()
			tt.mutate(f)

			res := Validate(f)
			assert.ElementsMatch(t, tt.errors, codes(res.Errors))
			assert.ElementsMatch(t, tt.warnings, codes(res.Warnings))
		})
	}
}

func TestFileSymbolMap(t *testing.T) {
	t.Run("valid file with folded key", func(t *testing.T) {
		f := completeFile()
		delete(f.Symbols, "A")
		f.Symbols["a"] = "@"

		m, err := f.SymbolMap()
		require.NoError(t, err)

		out, err := leet.New(leet.WithSymbols(m)).Transform("aA b")
		require.NoError(t, err)
		assert.Equal(t, "@@ B", out)
	})

	t.Run("invalid file", func(t *testing.T) {
		f := completeFile()
		delete(f.Symbols, "Z")

		m, err := f.SymbolMap()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid table")
		assert.Contains(t, err.Error(), "missing_symbol")
		assert.Zero(t, m.Len())
	})
}
