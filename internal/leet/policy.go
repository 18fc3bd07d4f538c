package leet

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Policy -trimprefix=Policy -output=policy_string.go

// Policy decides what happens to characters that have no table entry.
type Policy int

const (
	// PolicyPassThrough copies unmapped characters unchanged. The transform
	// never fails under this policy.
	PolicyPassThrough Policy = iota
	// PolicyStrict stops at the first unmapped character and returns an
	// *UnmappedCharacterError.
	PolicyStrict
)

// ParsePolicy parses a policy name. It accepts "pass-through",
// "passthrough" and "strict", case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pass-through", "passthrough":
		return PolicyPassThrough, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return PolicyPassThrough, fmt.Errorf("unknown policy %q", s)
	}
}
