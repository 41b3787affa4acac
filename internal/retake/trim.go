package retake

import (
	"strings"

	"bestcut/internal/logging"
	"bestcut/internal/transcript"
)

// TrimLeadingRepetition removes stuttered repeats of a segment's first word
// ("je je vais" keeps everything from the second "je"). Input segments are
// never mutated; trimmed segments are rebuilt with their surviving words.
func (r *Resolver) TrimLeadingRepetition(segments []transcript.Segment) []transcript.Segment {
	out := make([]transcript.Segment, 0, len(segments))

	for _, seg := range segments {
		words := seg.Words
		if len(words) < 2 {
			out = append(out, seg)
			continue
		}

		base := strings.ToLower(words[0].Text)
		cutIdx := 0
		limit := min(len(words), r.cfg.TrimMaxWords)
		for i := 1; i < limit; i++ {
			if strings.ToLower(words[i].Text) != base ||
				words[i].Start-words[0].End > r.cfg.TrimMaxGap {
				break
			}
			cutIdx = i
		}
		if cutIdx == 0 {
			out = append(out, seg)
			continue
		}

		kept := words[cutIdx:]
		texts := make([]string, len(kept))
		for i, w := range kept {
			texts[i] = w.Text
		}
		out = append(out, transcript.Segment{
			Start: kept[0].Start,
			End:   seg.End,
			Text:  strings.Join(texts, " "),
			Words: kept,
		})
		r.logger.Debug("leading repetition trimmed",
			logging.String("word", base),
			logging.Int("repeats", cutIdx))
	}

	return out
}
