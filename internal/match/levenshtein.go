package match

import "strings"

// Levenshtein computes the Levenshtein distance (edit distance) between two
// strings, counted in runes. The distance is the minimum number of
// single-character edits (insertions, deletions, or substitutions) required
// to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// Ensure ra is the shorter string for space optimization
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Closest returns the candidate nearest to name, compared case-insensitively.
// Candidates further than maxDistance edits are ignored; ties go to the
// earlier candidate.
func Closest(name string, candidates []string, maxDistance int) (string, bool) {
	name = strings.ToLower(name)

	best, bestDistance := "", maxDistance+1

	for _, c := range candidates {
		d := Levenshtein(name, strings.ToLower(c))
		if d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best, best != ""
}
