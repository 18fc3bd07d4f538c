package table

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"leet/internal/leet"
)

// LoadFile loads and parses a YAML table file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse table YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.Symbols == nil {
		f.Symbols = map[string]string{}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal table: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write table file %s: %w", path, err)
	}

	return nil
}

// FromSymbolMap converts a SymbolMap into its file form.
func FromSymbolMap(name, description string, m leet.SymbolMap) *File {
	f := &File{
		Version:     CurrentVersion,
		Name:        name,
		Description: description,
		Symbols:     make(map[string]string, m.Len()),
	}

	for _, e := range m.Entries() {
		f.Symbols[string(e.Key)] = e.Glyph
	}

	return f
}
