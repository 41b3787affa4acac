package transcript

import (
	"fmt"
	"strings"

	"bestcut/internal/services"
)

// Word is a single transcribed token with source-time boundaries in seconds.
type Word struct {
	Text  string
	Start float64
	End   float64
}

// Duration returns the word length in seconds.
func (w Word) Duration() float64 {
	return w.End - w.Start
}

// Segment is a sentence-like chunk of the transcript spanning its words.
type Segment struct {
	Start float64
	End   float64
	Text  string
	Words []Word
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// WordCount returns the number of words in the segment.
func (s Segment) WordCount() int {
	return len(s.Words)
}

// Validate checks the structural invariants required of collaborator output:
// word boundaries must satisfy end >= start and be time-ordered within the
// segment. Callers reject a transcript once here instead of duck-typing
// deeper in the pipeline.
func Validate(segments []Segment) error {
	for i, seg := range segments {
		if seg.End < seg.Start {
			return services.Wrap(services.ErrValidation, "transcript", "validate",
				fmt.Sprintf("segment %d has end %.3f before start %.3f", i, seg.End, seg.Start), nil)
		}
		var prevStart float64
		for j, w := range seg.Words {
			if strings.TrimSpace(w.Text) == "" {
				return services.Wrap(services.ErrValidation, "transcript", "validate",
					fmt.Sprintf("segment %d word %d is empty", i, j), nil)
			}
			if w.End < w.Start {
				return services.Wrap(services.ErrValidation, "transcript", "validate",
					fmt.Sprintf("segment %d word %d has end %.3f before start %.3f", i, j, w.End, w.Start), nil)
			}
			if j > 0 && w.Start < prevStart {
				return services.Wrap(services.ErrValidation, "transcript", "validate",
					fmt.Sprintf("segment %d word %d is out of order", i, j), nil)
			}
			prevStart = w.Start
		}
	}
	return nil
}

// AllWords flattens the segment sequence into one time-ordered word slice.
func AllWords(segments []Segment) []Word {
	var words []Word
	for _, seg := range segments {
		words = append(words, seg.Words...)
	}
	return words
}

// WordsWithin returns the words whose start falls inside [start, end].
func WordsWithin(words []Word, start, end float64) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if w.Start >= start && w.Start <= end {
			out = append(out, w)
		}
	}
	return out
}
