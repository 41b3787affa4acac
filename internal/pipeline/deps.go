package pipeline

import (
	"context"

	"bestcut/internal/gaze"
	"bestcut/internal/media/ffprobe"
	"bestcut/internal/services/ffmpeg"
	"bestcut/internal/timeline"
	"bestcut/internal/transcript"
)

// Inspector probes a source container.
type Inspector func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Extractor produces the mono 16 kHz WAV the audio stages consume.
type Extractor interface {
	ExtractMonoWAV(ctx context.Context, source string, audioIndex int, dest string) error
}

// Transcriber returns word-aligned transcript segments for a WAV file.
type Transcriber interface {
	Transcribe(ctx context.Context, source, outputDir string) ([]transcript.Segment, error)
}

// Renderer produces the final trimmed-and-concatenated output.
type Renderer interface {
	Render(ctx context.Context, source string, keeps timeline.List, opts ffmpeg.RenderOptions, dest string) error
}

// Deps are the external collaborators a run needs. Pose may be nil when no
// head-pose estimates are available; the gaze stage is then skipped.
type Deps struct {
	Inspect     Inspector
	Extractor   Extractor
	Transcriber Transcriber
	Renderer    Renderer
	Pose        gaze.PoseSource
}
