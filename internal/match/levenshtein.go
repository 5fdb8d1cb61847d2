// Package match provides edit-distance scoring used to suggest the closest
// existing field name when a path segment resolves to nothing.
package match

import (
	"sort"
	"strings"

	"shapekit/internal/common"
)

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions, or substitutions needed
// to transform one into the other. Two-row dynamic program,
// O(len(a)*len(b)) time, O(min(len(a), len(b))) space.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a the shorter string so the rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity computes a normalized case-insensitive score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)

	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	maxLen := max(len(b), len(a))

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// DefaultMinScore is the minimum similarity for a name to count as "close".
const DefaultMinScore = 0.5

// Closest returns the candidate most similar to name, provided it scores at
// least minScore. Ties break alphabetically for determinism.
func Closest(name string, candidates []string, minScore float64) (string, bool) {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if s := Similarity(name, c); s >= minScore {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	best, ok := common.First(ranked)

	return best.name, ok
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}
