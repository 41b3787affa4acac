package retake

// Config bundles the resolver and cleanup thresholds. Values are immutable
// for the duration of one run.
type Config struct {
	// Lookback bounds how many previous kept segments each segment is
	// compared against.
	Lookback int
	// MinSim is the normalized similarity at which two takes count as the
	// same content.
	MinSim float64
	// MinKeep guards drops: neither side of a similar pair is dropped when
	// the survivor would be shorter than this.
	MinKeep float64
	// ContainmentOverlap is the token-overlap fraction above which a segment
	// counts as contained in its successor.
	ContainmentOverlap float64

	// Micro-repetition pass: consecutive segments opening on the same
	// MicroHeadWords words within MicroMaxGap seconds cut the earlier one.
	MicroMinSim    float64
	MicroMaxGap    float64
	MicroLookback  int
	MicroHeadWords int

	// Leading-word trim: a segment opening on the same word repeated keeps
	// only the last occurrence, scanning at most TrimMaxWords words within
	// TrimMaxGap seconds of the first word's end.
	TrimMaxWords int
	TrimMaxGap   float64
}

// DefaultConfig returns thresholds tuned for sentence-length French takes.
func DefaultConfig() Config {
	return Config{
		Lookback:           3,
		MinSim:             0.78,
		MinKeep:            0.45,
		ContainmentOverlap: 0.6,

		MicroMinSim:    0.72,
		MicroMaxGap:    0.9,
		MicroLookback:  4,
		MicroHeadWords: 6,

		TrimMaxWords: 5,
		TrimMaxGap:   1.0,
	}
}
