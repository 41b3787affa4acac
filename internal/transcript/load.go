package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// jsonWord mirrors the WhisperX word record.
type jsonWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// jsonSegment mirrors the WhisperX segment record.
type jsonSegment struct {
	Text  string     `json:"text"`
	Start float64    `json:"start"`
	End   float64    `json:"end"`
	Words []jsonWord `json:"words"`
}

type jsonPayload struct {
	Segments []jsonSegment `json:"segments"`
}

// LoadFile reads a WhisperX-style JSON transcript from disk and converts it
// into validated segments. Empty words are dropped rather than rejected; the
// aligner occasionally emits them around punctuation.
func LoadFile(path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a WhisperX-style JSON payload into validated segments.
func Parse(data []byte) ([]Segment, error) {
	var payload jsonPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse transcript json: %w", err)
	}
	segments := make([]Segment, 0, len(payload.Segments))
	for _, seg := range payload.Segments {
		words := make([]Word, 0, len(seg.Words))
		for _, w := range seg.Words {
			text := strings.TrimSpace(w.Word)
			if text == "" {
				continue
			}
			words = append(words, Word{Text: text, Start: w.Start, End: w.End})
		}
		segments = append(segments, Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  strings.TrimSpace(seg.Text),
			Words: words,
		})
	}
	if err := Validate(segments); err != nil {
		return nil, err
	}
	return segments, nil
}
