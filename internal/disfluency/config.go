package disfluency

// Config bundles every disfluency threshold. Values are immutable for the
// duration of one run.
type Config struct {
	// MaxFiller bounds the duration of a token matched by the filler
	// pattern; a long "euh" is often the transcriber mishearing a real word.
	MaxFiller float64
	// MaxNoise bounds the duration of a bracketed non-verbal marker.
	MaxNoise float64
	// RepeatWindow is the maximum gap between two identical repeatable
	// words for the earlier one to count as a stutter.
	RepeatWindow float64
	// ShortWord and MinPause define an abandoned false start: a token no
	// longer than ShortWord followed by a silence longer than MinPause.
	ShortWord float64
	MinPause  float64

	// Repeatable is the closed set of words whose immediate repetition is
	// cut. Tokens are compared lowercased.
	Repeatable map[string]struct{}

	// Restart pass: windows of RestartWindow consecutive words compare
	// against forward windows starting within RestartMaxGap seconds; a
	// similarity of at least RestartSimilarity cuts the earlier attempt.
	RestartWindow     int
	RestartSimilarity float64
	RestartMaxGap     float64

	// MergeSlack joins cut spans separated by at most this much silence.
	MergeSlack float64
	// MinKeep drops an interval remainder too short to survive as an edit.
	MinKeep float64
}

// DefaultConfig returns thresholds tuned for close-mic French spoken word.
func DefaultConfig() Config {
	return Config{
		MaxFiller:    0.6,
		MaxNoise:     0.9,
		RepeatWindow: 0.5,
		ShortWord:    0.35,
		MinPause:     0.25,

		Repeatable: newWordSet(
			"je", "tu", "il", "elle", "on", "nous", "vous",
			"donc", "alors", "bah", "ben", "du", "de", "des",
		),

		RestartWindow:     4,
		RestartSimilarity: 0.9,
		RestartMaxGap:     1.5,

		MergeSlack: 0.05,
		MinKeep:    0.25,
	}
}

func newWordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
