package table

import (
	"slices"
	"strings"

	"leet/internal/leet"
	"leet/internal/match"
)

// DefaultPreset names the table used when none is selected.
const DefaultPreset = "classic"

type preset struct {
	description string
	symbols     leet.SymbolMap
}

var presets = map[string]preset{
	"classic": {
		description: "Canonical table: N is ^/, Q is 0, V is / and W is //.",
		symbols:     leet.Classic,
	},
	"cheatsheet": {
		description: `Published cheat-sheet letters: N is |\|, Q is 0_, V is \/ and W is \/\/.`,
		symbols:     leet.Cheatsheet,
	},
}

// Preset returns a built-in table by name, case-insensitively.
func Preset(name string) (leet.SymbolMap, bool) {
	p, ok := presets[strings.ToLower(name)]
	return p.symbols, ok
}

// PresetFile returns a built-in table in file form.
func PresetFile(name string) (*File, bool) {
	name = strings.ToLower(name)

	p, ok := presets[name]
	if !ok {
		return nil, false
	}

	return FromSymbolMap(name, p.description, p.symbols), true
}

// PresetNames returns the names of the built-in tables in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// SuggestPreset returns the preset name closest to a mistyped one.
func SuggestPreset(name string) (string, bool) {
	return match.Closest(name, PresetNames(), 3)
}
