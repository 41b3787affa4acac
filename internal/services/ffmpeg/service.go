package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"bestcut/internal/logging"
	"bestcut/internal/services"
)

// Command is the default ffmpeg binary name.
const Command = "ffmpeg"

// Runner executes an external command. Tests substitute their own.
type Runner func(ctx context.Context, name string, args ...string) error

// Service wraps the ffmpeg invocations used by the pipeline.
type Service struct {
	binary string
	logger *slog.Logger
	run    Runner
}

// NewService creates an ffmpeg service. An empty binary falls back to the
// command name resolved from PATH.
func NewService(binary string, logger *slog.Logger) *Service {
	if strings.TrimSpace(binary) == "" {
		binary = Command
	}
	s := &Service{
		binary: binary,
		logger: logging.NewComponentLogger(logger, "ffmpeg"),
	}
	s.run = s.runCommand
	return s
}

// WithRunner sets a custom command runner (for testing).
func (s *Service) WithRunner(run Runner) {
	s.run = run
}

func (s *Service) runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return services.Wrap(services.ErrExternalTool, "ffmpeg", "run",
			strings.TrimSpace(string(output)), err)
	}
	return nil
}

// ExtractMonoWAV extracts one audio stream as a mono 16 kHz 16-bit WAV, the
// format both the segmenter and the transcriber consume.
func (s *Service) ExtractMonoWAV(ctx context.Context, source string, audioIndex int, dest string) error {
	if audioIndex < 0 {
		return services.Wrap(services.ErrValidation, "ffmpeg", "extract",
			fmt.Sprintf("invalid audio stream index %d", audioIndex), nil)
	}
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-map", fmt.Sprintf("0:%d", audioIndex),
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dest,
	}
	s.logger.Debug("extracting audio",
		logging.String("source", source),
		logging.String("dest", dest))
	return s.run(ctx, s.binary, args...)
}

// NVENCAvailable probes for a working h264_nvenc encoder by encoding a tiny
// test pattern. Driver or library mismatches make the encoder advertise
// itself yet fail at runtime, so only a real encode counts.
func (s *Service) NVENCAvailable(ctx context.Context) bool {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "lavfi",
		"-i", "testsrc=size=128x128:rate=1",
		"-t", "0.1",
		"-c:v", "h264_nvenc",
		"-f", "null", "-",
	}
	return s.run(ctx, s.binary, args...) == nil
}
