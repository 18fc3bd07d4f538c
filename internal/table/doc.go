// Package table provides the YAML form of a leet symbol table: loading,
// validation, serialisation and the registry of built-in presets.
//
// # Schema
//
//	version: "1"
//	name: classic
//	description: optional free text
//	symbols:
//	  "A": "4"
//	  "B": "I3"
//	  ...
//	  "0": "o"
//
// Every letter A-Z and digit 0-9 must be defined exactly once. Lower-case
// letter keys are accepted and folded to upper case with a warning.
// Glyphs are copied verbatim, so quote any glyph containing YAML
// indicators such as '#', '[' or ']'.
package table
