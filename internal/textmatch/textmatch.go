// Package textmatch provides the fuzzy string matching used by theory
// question grading.
package textmatch

import (
	"strings"

	"github.com/agext/levenshtein"
)

// AreSimilar reports whether a and b are close enough to count as the same
// term. Comparison is case-insensitive; either string containing the other
// counts as a match, otherwise the edit distance must not exceed
// maxDistance.
func AreSimilar(a, b string, maxDistance int) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return a == b
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return levenshtein.Distance(a, b, nil) <= maxDistance
}
