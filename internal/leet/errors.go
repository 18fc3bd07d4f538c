package leet

import (
	"errors"
	"fmt"
)

// ErrUnmappedCharacter is matched by every *UnmappedCharacterError.
var ErrUnmappedCharacter = errors.New("unmapped character")

// UnmappedCharacterError reports a character with no table entry under
// PolicyStrict.
type UnmappedCharacterError struct {
	// Char is the offending character, utf8.RuneError for invalid UTF-8.
	Char rune
	// Offset is the byte offset of Char in the input.
	Offset int
	// Invalid is set when the input was not valid UTF-8 at Offset.
	Invalid bool
}

func (e *UnmappedCharacterError) Error() string {
	if e.Invalid {
		return fmt.Sprintf("%v: invalid UTF-8 at offset %d", ErrUnmappedCharacter, e.Offset)
	}

	return fmt.Sprintf("%v %q at offset %d", ErrUnmappedCharacter, e.Char, e.Offset)
}

// Is reports whether target is ErrUnmappedCharacter.
func (e *UnmappedCharacterError) Is(target error) bool {
	return target == ErrUnmappedCharacter
}
