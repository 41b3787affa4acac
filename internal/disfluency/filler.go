package disfluency

import (
	"regexp"
	"strings"

	"bestcut/internal/timeline"
	"bestcut/internal/transcript"
)

// fillerPattern matches vocal hesitations as transcribers render them:
// stretched "euh", "hum", "mm" and their spelling variants.
var fillerPattern = regexp.MustCompile(`^(e+u+h+|h+e+u+|h+u+m+|m+m+|h+m+|u+h+)$`)

// detectFillers runs the four word rules over the sequence and returns the
// spans to remove. Rules short-circuit: the first match per word wins.
func detectFillers(words []transcript.Word, cfg Config) timeline.List {
	var cuts timeline.List

	for i, w := range words {
		text := strings.ToLower(strings.TrimSpace(w.Text))
		dur := w.Duration()

		// Vocal filler.
		if dur <= cfg.MaxFiller && fillerPattern.MatchString(text) {
			cuts = append(cuts, timeline.Interval{Start: w.Start, End: w.End})
			continue
		}

		// Bracketed non-verbal marker emitted by the transcriber.
		if strings.HasPrefix(text, "[") && dur <= cfg.MaxNoise {
			cuts = append(cuts, timeline.Interval{Start: w.Start, End: w.End})
			continue
		}

		// Immediate repeat of a common function word: cut the earlier
		// occurrence, the second one carries the intended sentence.
		if i > 0 {
			prev := words[i-1]
			prevText := strings.ToLower(strings.TrimSpace(prev.Text))
			if text == prevText {
				if _, ok := cfg.Repeatable[text]; ok && w.Start-prev.End <= cfg.RepeatWindow {
					cuts = append(cuts, timeline.Interval{Start: prev.Start, End: prev.End})
					continue
				}
			}
		}

		// Abandoned false start: a very short word followed by a pause.
		if dur <= cfg.ShortWord && i+1 < len(words) {
			if words[i+1].Start-w.End > cfg.MinPause {
				cuts = append(cuts, timeline.Interval{Start: w.Start, End: w.End})
				continue
			}
		}
	}

	return cuts
}
