package retake

import (
	"strings"

	"bestcut/internal/logging"
	"bestcut/internal/timeline"
	"bestcut/internal/transcript"
)

// MicroCuts finds segments that reopen on the words a nearby earlier segment
// opened on: the earlier opening was a stumble, re-attempted almost
// immediately. Each hit cuts from the earlier segment's start to the
// repeating segment's start. Comparison uses only the first MicroHeadWords
// words, lightly normalized; full-segment similarity belongs to the
// resolver.
func (r *Resolver) MicroCuts(segments []transcript.Segment) timeline.List {
	var cuts timeline.List

	for j := 1; j < len(segments); j++ {
		cur := segments[j]
		if len(cur.Words) == 0 {
			continue
		}
		curHead := headText(cur.Words, r.cfg.MicroHeadWords)

		for i := max(0, j-r.cfg.MicroLookback); i < j; i++ {
			prev := segments[i]
			if len(prev.Words) == 0 {
				continue
			}
			if cur.Start-prev.End > r.cfg.MicroMaxGap {
				continue
			}
			prevHead := headText(prev.Words, r.cfg.MicroHeadWords)
			if transcript.Similarity(microNorm(prevHead), microNorm(curHead)) >= r.cfg.MicroMinSim {
				cuts = append(cuts, timeline.Interval{Start: prev.Start, End: cur.Start})
				r.logger.Debug("micro-repetition cut",
					logging.Float64("from", prev.Start),
					logging.Float64("to", cur.Start))
				break
			}
		}
	}

	return cuts
}

func headText(words []transcript.Word, n int) string {
	if len(words) < n {
		n = len(words)
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = words[i].Text
	}
	return strings.Join(parts, " ")
}

// microNorm is deliberately lighter than transcript.Normalize: filler
// removal would distort the short word heads being compared.
func microNorm(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "’", "'")
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, ".", " ")
	return strings.Join(strings.Fields(s), " ")
}
