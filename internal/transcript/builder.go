package transcript

import (
	"math"
	"strings"

	"bestcut/internal/timeline"
)

// punctuation that terminates a sentence-like chunk when it trails a word.
const segmentPunctuation = ".,!?;:"

// BuilderConfig controls how sentence-like segments are rebuilt from the
// word stream after the rough concatenation pass.
type BuilderConfig struct {
	// MaxDuration caps a segment's running length in seconds.
	MaxDuration float64
	// MaxGap splits when the silence between consecutive words exceeds it.
	MaxGap float64
	// MinDuration drops rebuilt segments shorter than this.
	MinDuration float64
	// PadStart/PadEnd extend the emitted interval slightly beyond the words
	// so cuts land in silence rather than clipping a consonant.
	PadStart float64
	PadEnd   float64
}

// DefaultBuilderConfig returns the thresholds used by the second pass.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		MaxDuration: 4.5,
		MaxGap:      0.6,
		MinDuration: 0.4,
		PadStart:    0.04,
		PadEnd:      0.06,
	}
}

// Rebuild splits the transcript's words into sentence-like segments on
// trailing punctuation, inter-word gaps, and a running duration cap. The
// returned segments carry their joined text so the retake resolver can
// compare takes; the parallel interval list carries the padded boundaries.
func Rebuild(segments []Segment, cfg BuilderConfig) ([]Segment, timeline.List) {
	var outSegs []Segment
	var outIvs timeline.List

	flush := func(words []Word) {
		if len(words) == 0 {
			return
		}
		start := words[0].Start
		end := words[len(words)-1].End
		if end-start < cfg.MinDuration {
			return
		}
		texts := make([]string, len(words))
		for i, w := range words {
			texts[i] = w.Text
		}
		copied := make([]Word, len(words))
		copy(copied, words)
		outSegs = append(outSegs, Segment{
			Start: start,
			End:   end,
			Text:  strings.Join(texts, " "),
			Words: copied,
		})
		outIvs = append(outIvs, timeline.Interval{
			Start: math.Max(0, start-cfg.PadStart),
			End:   end + cfg.PadEnd,
		})
	}

	for _, seg := range segments {
		if len(seg.Words) == 0 {
			continue
		}
		current := []Word{seg.Words[0]}
		for _, w := range seg.Words[1:] {
			last := current[len(current)-1]
			gap := w.Start - last.End
			dur := w.End - current[0].Start
			if gap > cfg.MaxGap || dur > cfg.MaxDuration || endsWithPunctuation(w.Text) {
				flush(current)
				current = current[:0]
			}
			current = append(current, w)
		}
		flush(current)
	}

	return outSegs, outIvs
}

func endsWithPunctuation(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	runes := []rune(trimmed)
	return strings.ContainsRune(segmentPunctuation, runes[len(runes)-1])
}
