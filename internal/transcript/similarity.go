package transcript

import "github.com/agnivade/levenshtein"

// Similarity returns an edit-distance ratio in [0, 1]: 1 for identical
// strings, 0 for strings sharing nothing. Both arguments should already be
// normalized.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	if dist >= longest {
		return 0
	}
	return 1 - float64(dist)/float64(longest)
}

// TokenOverlap returns the fraction of a's tokens that also appear in b.
// Returns 0 when a has no substantial tokens.
func TokenOverlap(a, b string) float64 {
	ta := TokenSet(a)
	if len(ta) == 0 {
		return 0
	}
	tb := TokenSet(b)
	if len(tb) == 0 {
		return 0
	}
	shared := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(ta))
}
