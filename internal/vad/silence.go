package vad

import (
	"math"

	"bestcut/internal/media/pcm"
	"bestcut/internal/timeline"
)

// SilenceConfig bundles the silence-threshold detector parameters.
type SilenceConfig struct {
	// NoiseFloorDB classifies a frame as silent when its level stays below
	// this threshold.
	NoiseFloorDB float64
	// MinSilence ignores sub-threshold runs shorter than this.
	MinSilence float64
	// CutOver splits segments at silences at least this long.
	CutOver float64
	// MergeUnder treats silences shorter than this as natural pauses.
	// Silences between MergeUnder and CutOver also stay joined, preserving
	// the speaker's cadence.
	MergeUnder float64
	// PrePad and PostPad retain a slice of the silence on each side of a cut
	// so kept segments do not start or stop abruptly.
	PrePad  float64
	PostPad float64
	// MinSegment drops kept segments shorter than this.
	MinSegment float64
	// MergeGap is the Compose merge threshold for the final pass.
	MergeGap float64
	// StartBias opens each segment slightly early, as in the ring strategy.
	StartBias float64
	// Window is the analysis frame length for level measurement.
	Window float64
}

// DefaultSilenceConfig returns the silence-threshold detector defaults.
func DefaultSilenceConfig() SilenceConfig {
	return SilenceConfig{
		NoiseFloorDB: -35,
		MinSilence:   0.12,
		CutOver:      0.35,
		MergeUnder:   0.18,
		PrePad:       0.12,
		PostPad:      0.14,
		MinSegment:   0.45,
		MergeGap:     0.05,
		StartBias:    0.09,
		Window:       0.010,
	}
}

// DetectSilences returns the intervals where the audio level stays below the
// noise floor for at least MinSilence seconds.
func DetectSilences(audio *pcm.Audio, cfg SilenceConfig) timeline.List {
	if audio == nil {
		return timeline.List{}
	}
	window := cfg.Window
	if window <= 0 {
		window = 0.010
	}

	var silences timeline.List
	var runStart float64
	inRun := false

	frames := audio.Frames(window)
	for _, frame := range frames {
		quiet := pcm.DB(pcm.RMS(frame.Samples)) < cfg.NoiseFloorDB
		switch {
		case quiet && !inRun:
			inRun = true
			runStart = frame.At
		case !quiet && inRun:
			inRun = false
			if frame.At-runStart >= cfg.MinSilence {
				silences = append(silences, timeline.Interval{Start: runStart, End: frame.At})
			}
		}
	}
	if inRun {
		end := audio.Duration()
		if end-runStart >= cfg.MinSilence {
			silences = append(silences, timeline.Interval{Start: runStart, End: end})
		}
	}
	return silences
}

// SegmentBySilence converts detected silences into keep segments over a
// recording of the given duration: the complement of the silences forms raw
// speech chunks, short and medium silences stay joined, and long silences
// split with a retained pad on both sides of the cut.
func SegmentBySilence(duration float64, silences timeline.List, cfg SilenceConfig) timeline.List {
	if duration <= 0 {
		return timeline.List{}
	}

	merged := timeline.Compose(silences, timeline.Params{Bounds: duration})

	// Complement: the gaps between silences plus the track edges.
	speech := make(timeline.List, 0, len(merged)+1)
	cursor := 0.0
	for _, s := range merged {
		if s.Start > cursor {
			speech = append(speech, timeline.Interval{Start: cursor, End: s.Start})
		}
		cursor = math.Max(cursor, s.End)
	}
	if cursor < duration {
		speech = append(speech, timeline.Interval{Start: cursor, End: duration})
	}
	if len(speech) == 0 {
		return timeline.List{}
	}

	segments := make(timeline.List, 0, len(speech))
	current := speech[0]
	for i := 0; i+1 < len(speech); i++ {
		gap := speech[i+1].Start - speech[i].End
		if gap < cfg.MergeUnder {
			// Natural pause, keep the chunks joined.
			current.End = speech[i+1].End
			continue
		}
		if gap < cfg.CutOver {
			// Medium silence: still joined, preserving the speaker's cadence.
			current.End = speech[i+1].End
			continue
		}
		// Long silence: cut, keeping a pad of silence on both sides.
		cutEnd := math.Min(speech[i].End+cfg.PostPad, speech[i+1].Start)
		nextStart := math.Max(speech[i+1].Start-cfg.PrePad, speech[i].End)
		current.End = cutEnd
		segments = append(segments, current)
		current = timeline.Interval{Start: nextStart, End: speech[i+1].End}
	}
	segments = append(segments, current)

	segments = timeline.ShiftStarts(segments, cfg.StartBias)
	return timeline.Compose(segments, timeline.Params{
		MergeGap:    cfg.MergeGap,
		MinDuration: cfg.MinSegment,
		Bounds:      duration,
	})
}
