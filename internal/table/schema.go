package table

// CurrentVersion is the only schema version understood by this package.
const CurrentVersion = "1"

// File represents the root of a YAML symbol table file.
type File struct {
	// Version of the table schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Name is a short identifier for the table.
	Name string `yaml:"name,omitempty"`

	// Description is free text shown by "table show".
	Description string `yaml:"description,omitempty"`

	// Symbols maps a single letter or digit to its glyph sequence.
	Symbols map[string]string `yaml:"symbols"`
}
