// Package match ranks names by edit distance so that a mistyped name can
// be answered with a "did you mean" suggestion.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the nearest candidate within a distance budget
package match
