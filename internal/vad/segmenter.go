package vad

import (
	"bestcut/internal/media/pcm"
	"bestcut/internal/services"
	"bestcut/internal/timeline"
)

// triggerRatio is the sustained majority required to flip the trigger state.
const triggerRatio = 0.9

// Config bundles the ring-buffer segmenter thresholds.
type Config struct {
	// FrameDuration is the classifier frame length in seconds.
	FrameDuration float64
	// Padding is the sliding trigger window length in seconds.
	Padding float64
	// MinSegment drops speech segments shorter than this.
	MinSegment float64
	// MergeGap joins speech segments separated by short silences.
	MergeGap float64
	// StartBias opens each segment this many seconds early to correct the
	// systematic audio-to-video timestamp offset.
	StartBias float64
}

// DefaultConfig returns the segmenter thresholds used for talking-head
// recordings.
func DefaultConfig() Config {
	return Config{
		FrameDuration: 0.020,
		Padding:       0.080,
		MinSegment:    0.300,
		MergeGap:      0.250,
		StartBias:     0.09,
	}
}

type ringEntry struct {
	at     float64
	voiced bool
}

// Segment converts the recording into a first-pass speech interval list
// using the classifier ring-buffer trigger. Returns an empty list when the
// recording holds no sustained speech.
func Segment(audio *pcm.Audio, clf Classifier, cfg Config) (timeline.List, error) {
	if audio == nil || len(audio.Samples) == 0 {
		return timeline.List{}, services.Wrap(services.ErrValidation, "vad", "segment", "no audio samples", nil)
	}
	if cfg.FrameDuration <= 0 {
		return timeline.List{}, services.Wrap(services.ErrConfiguration, "vad", "segment", "frame duration must be positive", nil)
	}

	frames := audio.Frames(cfg.FrameDuration)
	if len(frames) == 0 {
		return timeline.List{}, nil
	}

	ringSize := int(cfg.Padding / cfg.FrameDuration)
	if ringSize < 1 {
		ringSize = 1
	}

	clf.Reset()
	ring := make([]ringEntry, 0, ringSize)
	triggered := false
	var startAt float64
	var voiced timeline.List

	push := func(entry ringEntry) {
		if len(ring) == ringSize {
			copy(ring, ring[1:])
			ring[len(ring)-1] = entry
			return
		}
		ring = append(ring, entry)
	}

	for _, frame := range frames {
		entry := ringEntry{at: frame.At, voiced: clf.IsSpeech(frame)}
		push(entry)

		if !triggered {
			if countVoiced(ring) > int(triggerRatio*float64(ringSize)) {
				triggered = true
				startAt = ring[0].at
				ring = ring[:0]
			}
			continue
		}

		if len(ring)-countVoiced(ring) > int(triggerRatio*float64(ringSize)) {
			voiced = append(voiced, timeline.Interval{Start: startAt, End: entry.at + cfg.FrameDuration})
			triggered = false
			ring = ring[:0]
		}
	}
	if triggered {
		voiced = append(voiced, timeline.Interval{
			Start: startAt,
			End:   frames[len(frames)-1].At + cfg.FrameDuration,
		})
	}

	voiced = timeline.ShiftStarts(voiced, cfg.StartBias)
	return timeline.Compose(voiced, timeline.Params{
		MergeGap:    cfg.MergeGap,
		MinDuration: cfg.MinSegment,
		Bounds:      audio.Duration(),
	}), nil
}

func countVoiced(ring []ringEntry) int {
	count := 0
	for _, entry := range ring {
		if entry.voiced {
			count++
		}
	}
	return count
}
