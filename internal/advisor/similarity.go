// Package advisor implements the analysis engines: feature
// prioritization, competitive gap analysis, trend analysis, and the
// combined market-readiness report.
package advisor

import "strings"

// DefaultSimilarityThreshold is the percent cutoff above which two
// overlapping feature names count as the same feature.
const DefaultSimilarityThreshold = 80.0

// Normalize canonicalizes a feature name for comparison: lowercased,
// trimmed, with underscores and hyphens folded to spaces.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return s
}

// SimilarityPercent measures how alike two strings are as a percentage
// of their combined length. The count of matched characters is the sum
// of recursively located longest common substrings, so character order
// matters and transpositions score low.
func SimilarityPercent(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 0
	}
	sum := similarChars(a, b)
	return float64(2*sum) * 100 / float64(len(a)+len(b))
}

// similarChars finds the longest common substring, then recurses into
// the unmatched prefixes and suffixes.
func similarChars(a, b string) int {
	var pos1, pos2, max int
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > max {
				max, pos1, pos2 = k, i, j
			}
		}
	}
	if max == 0 {
		return 0
	}
	sum := max
	if pos1 > 0 && pos2 > 0 {
		sum += similarChars(a[:pos1], b[:pos2])
	}
	if pos1+max < len(a) && pos2+max < len(b) {
		sum += similarChars(a[pos1+max:], b[pos2+max:])
	}
	return sum
}

// Matches reports whether two feature names refer to the same feature.
// An exact normalized match always counts. Otherwise one name must
// contain the other and their similarity must exceed the threshold,
// which keeps short incidental substrings ("ai" inside "email") from
// matching.
func Matches(a, b string, threshold float64) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return true
	}
	if na == "" || nb == "" {
		return false
	}
	if !strings.Contains(na, nb) && !strings.Contains(nb, na) {
		return false
	}
	return SimilarityPercent(na, nb) > threshold
}

// HasFeature scans a feature list for a match against target and
// returns the matching entry when found.
func HasFeature(features []string, target string, threshold float64) (string, bool) {
	for _, f := range features {
		if Matches(f, target, threshold) {
			return f, true
		}
	}
	return "", false
}
