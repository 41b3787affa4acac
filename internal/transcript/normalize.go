package transcript

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fillerWords are hesitation tokens stripped before any similarity
// comparison; two takes differing only in fillers are the same take.
var fillerWords = []string{
	"euh", "heu", "bah", "ben", "du coup", "en fait", "genre", "quoi",
	"ok", "okay", "donc", "alors",
}

var (
	punctPattern      = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	multiSpacePattern = regexp.MustCompile(`\s+`)
	fillerPatterns    = compileFillerPatterns()

	accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

func compileFillerPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(fillerWords))
	for _, f := range fillerWords {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(f)+`\b`))
	}
	return patterns
}

// Normalize lowers the text, strips accents and punctuation, removes filler
// words, and collapses whitespace. All retake comparisons run on this form.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(accentStripper, lowered)
	if err != nil {
		stripped = lowered
	}
	cleaned := punctPattern.ReplaceAllString(stripped, " ")
	for _, pattern := range fillerPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, " ")
	}
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(cleaned, " "))
}

// TokenSet returns the set of tokens longer than two runes, the unit used by
// the containment rule.
func TokenSet(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, t := range strings.Fields(text) {
		if len([]rune(t)) > 2 {
			tokens[t] = struct{}{}
		}
	}
	return tokens
}

// IsTrivial reports whether a segment is too slight to count as a deliberate
// statement: short duration or fewer than four substantial words. The retake
// resolver uses this to tell a throwaway aside from a real correction.
func IsTrivial(text string, duration float64) bool {
	if duration < 1.0 {
		return true
	}
	count := 0
	for _, t := range strings.Fields(text) {
		if len([]rune(t)) > 2 {
			count++
		}
	}
	return count < 4
}
