package retake

import (
	"log/slog"

	"bestcut/internal/logging"
	"bestcut/internal/transcript"
)

// Resolver filters near-duplicate takes out of a transcript segment list.
type Resolver struct {
	cfg    Config
	logger *slog.Logger
}

// NewResolver constructs a resolver with the given thresholds.
func NewResolver(cfg Config, logger *slog.Logger) *Resolver {
	return &Resolver{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "retake"),
	}
}

// abaVerdict tags the outcome of the A-B-A correction check so the rule
// order stays auditable.
type abaVerdict int

const (
	abaNoMatch abaVerdict = iota
	// abaDropRestatement: the aside in the middle was trivial; the repeat is
	// a retake, not a deliberate restatement.
	abaDropRestatement
	// abaKeepBoth: the middle segment is substantial, so the repeat reads as
	// an intentional callback after a real correction.
	abaKeepBoth
)

// Resolve returns the segments that survive retake resolution, in original
// order. Rules apply per segment, first match wins: containment in the
// longer successor, the A-B-A correction pattern, then windowed lookback
// against previous kept segments. An immediate repeat of the previous
// segment takes no action on its own; the lookback comparison resolves it.
func (r *Resolver) Resolve(segments []transcript.Segment) []transcript.Segment {
	norm := make([]string, len(segments))
	for i, seg := range segments {
		norm[i] = transcript.Normalize(seg.Text)
	}

	drop := make(map[int]bool)

	for i := range segments {
		if r.containedInNext(segments, norm, i) {
			drop[i] = true
			r.logDrop(i, segments[i], "contained_in_next")
			continue
		}
		if drop[i] {
			continue
		}
		if norm[i] == "" {
			continue
		}

		if i > 0 && transcript.Similarity(norm[i], norm[i-1]) < r.cfg.MinSim {
			switch r.abaCheck(segments, norm, i) {
			case abaDropRestatement:
				drop[i] = true
				r.logDrop(i, segments[i], "aba_restatement")
				continue
			case abaKeepBoth:
				continue
			}
		}

		r.resolveLookback(segments, norm, drop, i)
	}

	kept := make([]transcript.Segment, 0, len(segments))
	for i, seg := range segments {
		if !drop[i] {
			kept = append(kept, seg)
		}
	}
	r.logger.Debug("retake resolution complete",
		logging.Int("segments", len(segments)),
		logging.Int("kept", len(kept)))
	return kept
}

// containedInNext reports whether segment i is a truncated preview of its
// successor: most of its tokens reappear in the next take and the next take
// is the longer of the two.
func (r *Resolver) containedInNext(segments []transcript.Segment, norm []string, i int) bool {
	if i+1 >= len(segments) {
		return false
	}
	overlap := transcript.TokenOverlap(norm[i], norm[i+1])
	return overlap >= r.cfg.ContainmentOverlap &&
		segments[i].Duration() < segments[i+1].Duration()
}

// abaCheck examines the A-B-A pattern: segment i repeats segment i-2 while
// differing from i-1. A trivial middle means the speaker brushed off a
// mistake and restated; a substantial middle means the repeat is deliberate.
func (r *Resolver) abaCheck(segments []transcript.Segment, norm []string, i int) abaVerdict {
	if i < 2 {
		return abaNoMatch
	}
	if transcript.Similarity(norm[i], norm[i-2]) < r.cfg.MinSim {
		return abaNoMatch
	}
	if transcript.IsTrivial(norm[i-1], segments[i-1].Duration()) {
		return abaDropRestatement
	}
	return abaKeepBoth
}

// resolveLookback compares segment i against the previous kept segments and,
// on the first similarity hit, drops the shorter of the pair. A duration tie
// drops the earlier take; the later one carries the improved delivery. No
// drop happens when the survivor would fall below MinKeep.
func (r *Resolver) resolveLookback(segments []transcript.Segment, norm []string, drop map[int]bool, i int) {
	for j := max(0, i-r.cfg.Lookback); j < i; j++ {
		if drop[j] || norm[j] == "" {
			continue
		}
		if transcript.Similarity(norm[i], norm[j]) < r.cfg.MinSim {
			continue
		}

		durI := segments[i].Duration()
		durJ := segments[j].Duration()
		switch {
		case durI < durJ:
			if durJ >= r.cfg.MinKeep {
				drop[i] = true
				r.logDrop(i, segments[i], "lookback_shorter")
			}
		case durJ < durI:
			if durI >= r.cfg.MinKeep {
				drop[j] = true
				r.logDrop(j, segments[j], "lookback_shorter")
			}
		default:
			if durI >= r.cfg.MinKeep {
				drop[j] = true
				r.logDrop(j, segments[j], "lookback_tie_earlier")
			}
		}
		return
	}
}

func (r *Resolver) logDrop(i int, seg transcript.Segment, rule string) {
	r.logger.Debug("dropping retake",
		logging.Int("index", i),
		logging.String("rule", rule),
		logging.Float64("start", seg.Start),
		logging.Float64("duration", seg.Duration()))
}
