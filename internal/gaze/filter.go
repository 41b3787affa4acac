package gaze

import (
	"context"
	"log/slog"
	"sync"

	"bestcut/internal/logging"
	"bestcut/internal/timeline"
)

// Filter refines candidate speech intervals using head-pose samples.
type Filter struct {
	source PoseSource
	cfg    Config
	logger *slog.Logger
}

// NewFilter constructs a gaze filter over the provided pose source.
func NewFilter(source PoseSource, cfg Config, logger *slog.Logger) *Filter {
	return &Filter{
		source: source,
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "gaze"),
	}
}

// Refine narrows each candidate interval to its attention-valid
// sub-intervals. Intervals are processed on a bounded worker pool; output
// order follows input order regardless of completion order.
func (f *Filter) Refine(ctx context.Context, candidates timeline.List) (timeline.List, error) {
	if len(candidates) == 0 {
		return timeline.List{}, nil
	}

	results := make([]timeline.List, len(candidates))
	errs := make([]error, len(candidates))

	workers := f.cfg.Workers
	if workers <= 0 || workers > len(candidates) {
		workers = len(candidates)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx], errs[idx] = f.refineOne(ctx, candidates[idx])
			}
		}()
	}

feed:
	for idx := range candidates {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var refined timeline.List
	for _, sub := range results {
		refined = append(refined, sub...)
	}

	out := timeline.Compose(refined, timeline.Params{
		MergeGap:    f.cfg.MergeGap,
		MinDuration: f.cfg.MinSegment,
	})
	f.logger.Debug("gaze refinement complete",
		logging.Int("candidates", len(candidates)),
		logging.Int("kept", len(out)),
		logging.Float64("kept_seconds", out.TotalDuration()))
	return out, nil
}

// refineOne samples one interval at the configured rate and runs the guard
// state machine over the validity decisions.
func (f *Filter) refineOne(ctx context.Context, interval timeline.Interval) (timeline.List, error) {
	step := 1.0 / f.cfg.SampleFPS
	sc := newScorer(f.cfg)
	m := newMachine(f.cfg, interval)

	for t := interval.Start; t <= interval.End; t += step {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sample, err := f.source.PoseAt(ctx, t)
		if err != nil {
			return nil, err
		}
		_, valid := sc.observe(sample)
		m.observe(t, valid)
	}

	return m.finish(), nil
}
