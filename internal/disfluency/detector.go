package disfluency

import (
	"log/slog"

	"bestcut/internal/logging"
	"bestcut/internal/timeline"
	"bestcut/internal/transcript"
)

// Detector turns word-level transcript evidence into interval cuts.
type Detector struct {
	cfg    Config
	logger *slog.Logger
}

// NewDetector constructs a detector with the given thresholds.
func NewDetector(cfg Config, logger *slog.Logger) *Detector {
	return &Detector{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "disfluency"),
	}
}

// Cuts returns the merged spans to remove from the word sequence: restart
// cuts plus filler cuts, joined across MergeSlack.
func (d *Detector) Cuts(words []transcript.Word) timeline.List {
	if len(words) == 0 {
		return timeline.List{}
	}
	cuts := append(detectRestarts(words, d.cfg), detectFillers(words, d.cfg)...)
	return timeline.Compose(cuts, timeline.Params{MergeGap: d.cfg.MergeSlack})
}

// Apply narrows each candidate interval by its disfluency cuts. An interval
// with cuts keeps only the portion after the last cut; splitting an utterance
// around a mid-sentence hesitation yields jarring edits, so the earlier
// attempts are dropped wholesale. Intervals without cuts pass through.
func (d *Detector) Apply(candidates timeline.List, words []transcript.Word) timeline.List {
	kept := make(timeline.List, 0, len(candidates))
	dropped := 0

	for _, iv := range candidates {
		segWords := transcript.WordsWithin(words, iv.Start, iv.End)
		cuts := d.Cuts(segWords)
		if len(cuts) == 0 {
			kept = append(kept, iv)
			continue
		}

		last := cuts[len(cuts)-1].End
		if last < iv.End {
			kept = append(kept, timeline.Interval{Start: last, End: iv.End})
		} else {
			dropped++
		}
	}

	out := timeline.Compose(kept, timeline.Params{
		MergeGap:    d.cfg.MergeSlack,
		MinDuration: d.cfg.MinKeep,
	})
	d.logger.Debug("disfluency pass complete",
		logging.Int("candidates", len(candidates)),
		logging.Int("kept", len(out)),
		logging.Int("dropped", dropped),
		logging.Float64("kept_seconds", out.TotalDuration()))
	return out
}
