package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"bestcut/internal/config"
	"bestcut/internal/disfluency"
	"bestcut/internal/gaze"
	"bestcut/internal/logging"
	"bestcut/internal/media/pcm"
	"bestcut/internal/retake"
	"bestcut/internal/runlock"
	"bestcut/internal/services"
	"bestcut/internal/timeline"
	"bestcut/internal/transcript"
	"bestcut/internal/vad"
)

const (
	eventStageStart    = "stage_start"
	eventStageComplete = "stage_complete"

	// slack when folding retake cuts back into the keep list.
	retakeMergeSlack = 0.05
)

// Pipeline runs the edit stages for one recording.
type Pipeline struct {
	cfg    *config.Config
	deps   Deps
	logger *slog.Logger
}

func New(cfg *config.Config, deps Deps, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		deps:   deps,
		logger: logging.NewComponentLogger(logger, "pipeline"),
	}
}

// Run processes source end to end and returns a summary of what each stage
// kept. A run that ends with nothing to keep is not an error; the summary's
// NothingToKeep reports it and no output file is written.
func (p *Pipeline) Run(ctx context.Context, source string) (*Summary, error) {
	return p.run(ctx, source, true)
}

// Plan computes the final keep list without rendering anything.
func (p *Pipeline) Plan(ctx context.Context, source string) (*Summary, error) {
	return p.run(ctx, source, false)
}

func (p *Pipeline) run(ctx context.Context, source string, render bool) (*Summary, error) {
	if strings.TrimSpace(source) == "" {
		return nil, services.Wrap(services.ErrValidation, "pipeline", "run", "source path is required", nil)
	}

	start := time.Now()
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	if secs := p.cfg.Pipeline.TotalTimeoutSeconds; secs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(secs)*time.Second)
		defer cancel()
	}

	logger := logging.WithContext(ctx, p.logger)
	logger.Info("run started",
		logging.String("source", source),
		logging.String("strategy", p.cfg.Audio.Strategy))

	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	lock, err := runlock.New(p.cfg.Paths.WorkDir)
	if err != nil {
		return nil, err
	}
	if err := lock.Acquire(); err != nil {
		return nil, err
	}
	defer lock.Release()

	summary := &Summary{RunID: runID, Source: source}

	probe, err := p.deps.Inspect(services.WithStage(ctx, "probe"), p.cfg.FFprobeBinary(), source)
	if err != nil {
		return summary, err
	}
	duration := probe.DurationSeconds()
	if duration <= 0 {
		return summary, services.Wrap(services.ErrValidation, "probe", "inspect", "source has no measurable duration", nil)
	}
	audioIndex := probe.AudioStreamIndex()
	if audioIndex < 0 {
		return summary, services.Wrap(services.ErrValidation, "probe", "inspect", "source has no audio stream", nil)
	}
	summary.SourceDuration = duration
	logger.Info("source probed",
		logging.Float64("duration_seconds", duration),
		logging.Int("audio_stream", audioIndex),
		logging.Bool("hdr", probe.HDRLike()))

	wavPath := p.workFile(source, ".wav")
	extractCtx := services.WithStage(ctx, "extract_audio")
	if err := p.deps.Extractor.ExtractMonoWAV(extractCtx, source, audioIndex, wavPath); err != nil {
		return summary, err
	}
	audio, err := pcm.LoadWAV(wavPath)
	if err != nil {
		return summary, err
	}

	keeps, err := p.runStage(ctx, summary, "segment", nil, func(context.Context) (timeline.List, error) {
		return p.segment(audio, duration)
	})
	if err != nil {
		return summary, err
	}
	if p.shortCircuit(logger, summary, keeps, "segment") {
		return summary, nil
	}

	if p.cfg.Gaze.Enabled && p.deps.Pose != nil {
		keeps, err = p.runStage(ctx, summary, "gaze", keeps, func(stageCtx context.Context) (timeline.List, error) {
			filter := gaze.NewFilter(p.deps.Pose, p.cfg.GazeConfig(), p.logger)
			return filter.Refine(stageCtx, keeps)
		})
		if err != nil {
			return summary, err
		}
		if p.shortCircuit(logger, summary, keeps, "gaze") {
			return summary, nil
		}
	}

	var words []transcript.Word
	var segments []transcript.Segment
	if p.cfg.Disfluency.Enabled || p.cfg.Retake.Enabled {
		segments, err = p.deps.Transcriber.Transcribe(services.WithStage(ctx, "transcribe"), wavPath, p.cfg.Paths.WorkDir)
		if err != nil {
			return summary, err
		}
		words = transcript.AllWords(segments)
		logger.Info("transcript loaded",
			logging.Int("segments", len(segments)),
			logging.Int("words", len(words)))
	}

	if p.cfg.Disfluency.Enabled {
		keeps, err = p.runStage(ctx, summary, "disfluency", keeps, func(context.Context) (timeline.List, error) {
			detector := disfluency.NewDetector(p.cfg.DisfluencyConfig(), p.logger)
			return detector.Apply(keeps, words), nil
		})
		if err != nil {
			return summary, err
		}
		if p.shortCircuit(logger, summary, keeps, "disfluency") {
			return summary, nil
		}
	}

	if p.cfg.Retake.Enabled {
		keeps, err = p.runStage(ctx, summary, "retake", keeps, func(context.Context) (timeline.List, error) {
			return p.resolveRetakes(keeps, words, duration), nil
		})
		if err != nil {
			return summary, err
		}
		if p.shortCircuit(logger, summary, keeps, "retake") {
			return summary, nil
		}
	}

	summary.Keeps = keeps

	if !render {
		summary.Elapsed = time.Since(start)
		logger.Info("plan complete",
			logging.Int("intervals", len(keeps)),
			logging.Float64("kept_seconds", summary.KeptSeconds()),
			logging.Duration("elapsed", summary.Elapsed))
		return summary, nil
	}

	outPath := p.outputFile(source)
	opts := p.cfg.RenderOptions()
	opts.ToneMapSDR = probe.HDRLike()
	renderCtx := services.WithStage(ctx, "render")
	renderLogger := logging.WithContext(renderCtx, p.logger)
	renderLogger.Info("stage started",
		logging.String(logging.FieldEventType, eventStageStart),
		logging.Int("intervals", len(keeps)),
		logging.Float64("kept_seconds", keeps.TotalDuration()))
	renderStart := time.Now()
	if err := p.deps.Renderer.Render(renderCtx, source, keeps, opts, outPath); err != nil {
		return summary, err
	}
	renderLogger.Info("stage complete",
		logging.String(logging.FieldEventType, eventStageComplete),
		logging.String("output", outPath),
		logging.Duration("elapsed", time.Since(renderStart)))

	summary.Output = outPath
	summary.Rendered = true
	summary.Elapsed = time.Since(start)
	logger.Info("run complete",
		logging.String("output", outPath),
		logging.Float64("kept_seconds", summary.KeptSeconds()),
		logging.Float64("source_seconds", duration),
		logging.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

// runStage wraps one interval-shaping stage with timing, context tagging, and
// a report entry.
func (p *Pipeline) runStage(ctx context.Context, summary *Summary, name string, in timeline.List, fn func(context.Context) (timeline.List, error)) (timeline.List, error) {
	stageCtx := services.WithStage(ctx, name)
	logger := logging.WithContext(stageCtx, p.logger)
	logger.Info("stage started",
		logging.String(logging.FieldEventType, eventStageStart),
		logging.Int("intervals_in", len(in)))

	stageStart := time.Now()
	out, err := fn(stageCtx)
	elapsed := time.Since(stageStart)
	if err != nil {
		logger.Error("stage failed", logging.Error(err), logging.Duration("elapsed", elapsed))
		return nil, err
	}

	summary.Stages = append(summary.Stages, StageReport{
		Name:        name,
		In:          len(in),
		Out:         len(out),
		KeptSeconds: out.TotalDuration(),
		Elapsed:     elapsed,
	})
	logger.Info("stage complete",
		logging.String(logging.FieldEventType, eventStageComplete),
		logging.Int("intervals_out", len(out)),
		logging.Float64("kept_seconds", out.TotalDuration()),
		logging.Duration("elapsed", elapsed))
	return out, nil
}

func (p *Pipeline) shortCircuit(logger *slog.Logger, summary *Summary, keeps timeline.List, stage string) bool {
	if len(keeps) > 0 {
		return false
	}
	summary.Keeps = timeline.List{}
	logger.Warn("nothing to keep, skipping remaining stages", logging.String("after_stage", stage))
	return true
}

func (p *Pipeline) segment(audio *pcm.Audio, duration float64) (timeline.List, error) {
	switch p.cfg.Audio.Strategy {
	case config.StrategyEnergy:
		return vad.Segment(audio, vad.NewEnergyClassifier(), p.cfg.VADConfig())
	default:
		silences := vad.DetectSilences(audio, p.cfg.SilenceConfig())
		return vad.SegmentBySilence(duration, silences, p.cfg.SilenceConfig()), nil
	}
}

// resolveRetakes rebuilds sentence-like segments from the words still inside
// keeps, lets the resolver pick the best take of each repeated passage, and
// subtracts the losing takes from the keep list. Running on the source
// timeline avoids a second render and transcription round trip.
func (p *Pipeline) resolveRetakes(keeps timeline.List, words []transcript.Word, duration float64) timeline.List {
	input := make([]transcript.Segment, 0, len(keeps))
	for _, iv := range keeps {
		ws := transcript.WordsWithin(words, iv.Start, iv.End)
		if len(ws) == 0 {
			continue
		}
		input = append(input, transcript.Segment{Start: iv.Start, End: iv.End, Words: ws})
	}
	sentences, _ := transcript.Rebuild(input, transcript.DefaultBuilderConfig())
	if len(sentences) == 0 {
		return keeps
	}

	resolver := retake.NewResolver(p.cfg.RetakeConfig(), p.logger)
	trimmed := resolver.TrimLeadingRepetition(sentences)
	kept := resolver.Resolve(trimmed)

	// TrimLeadingRepetition emits one segment per input in order, so the
	// trimmed span of sentence k is [sentences[k].Start, trimmed[k].Start).
	var cuts timeline.List
	for k := range sentences {
		if trimmed[k].Start > sentences[k].Start {
			cuts = append(cuts, timeline.Interval{Start: sentences[k].Start, End: trimmed[k].Start})
		}
	}
	cuts = append(cuts, droppedSpans(trimmed, kept)...)
	cuts = append(cuts, resolver.MicroCuts(kept)...)
	if len(cuts) == 0 {
		return keeps
	}

	out := timeline.Subtract(keeps, cuts)
	return timeline.Compose(out, timeline.Params{
		MergeGap:    retakeMergeSlack,
		MinDuration: p.cfg.Audio.MinSegment,
		Bounds:      duration,
	})
}

// droppedSpans returns the time spans of segments present in all but absent
// from kept. kept must be an in-order subset of all, which Resolve guarantees.
func droppedSpans(all, kept []transcript.Segment) timeline.List {
	var cuts timeline.List
	k := 0
	for _, seg := range all {
		if k < len(kept) && kept[k].Start == seg.Start && kept[k].End == seg.End {
			k++
			continue
		}
		cuts = append(cuts, timeline.Interval{Start: seg.Start, End: seg.End})
	}
	return cuts
}

func (p *Pipeline) workFile(source, ext string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(p.cfg.Paths.WorkDir, base+ext)
}

func (p *Pipeline) outputFile(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(p.cfg.Paths.OutputDir, fmt.Sprintf("%s_edit.mp4", base))
}
