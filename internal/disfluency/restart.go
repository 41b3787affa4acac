package disfluency

import (
	"strings"

	"bestcut/internal/timeline"
	"bestcut/internal/transcript"
)

// detectRestarts finds near-duplicate phrase attempts. For each window of
// RestartWindow consecutive words it scans forward windows whose start stays
// within RestartMaxGap of the window's end; a similarity hit cuts from the
// earlier window's start to the later window's start, discarding the
// superseded attempt, and resumes scanning past the kept one.
func detectRestarts(words []transcript.Word, cfg Config) timeline.List {
	k := cfg.RestartWindow
	if k <= 0 || len(words) <= k {
		return nil
	}

	var cuts timeline.List

	for i := 0; i < len(words)-k; i++ {
		aEnd := words[i+k-1].End
		aText := windowText(words[i : i+k])

		for j := i + k; j < len(words)-k; j++ {
			if words[j].Start-aEnd > cfg.RestartMaxGap {
				break
			}
			bText := windowText(words[j : j+k])
			if transcript.Similarity(aText, bText) >= cfg.RestartSimilarity {
				cuts = append(cuts, timeline.Interval{Start: words[i].Start, End: words[j].Start})
				i = j
				break
			}
		}
	}

	return cuts
}

func windowText(words []transcript.Word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = strings.ToLower(w.Text)
	}
	return strings.Join(parts, " ")
}
