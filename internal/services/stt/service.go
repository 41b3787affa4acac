package stt

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"bestcut/internal/logging"
	"bestcut/internal/services"
	"bestcut/internal/transcript"
)

// Runner executes an external command. Tests substitute their own.
type Runner func(ctx context.Context, name string, args ...string) error

// Service provides word-aligned transcription.
type Service struct {
	cfg    Config
	logger *slog.Logger
	run    Runner
}

// NewService creates a transcription service with the given configuration.
func NewService(cfg Config, logger *slog.Logger) *Service {
	s := &Service{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "stt"),
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
	// Torch 2.6 changed torch.load default to weights_only=true, which breaks
	// WhisperX checkpoint loading.
	if os.Getenv("TORCH_FORCE_NO_WEIGHTS_ONLY_LOAD") == "" {
		cmd.Env = append(os.Environ(), "TORCH_FORCE_NO_WEIGHTS_ONLY_LOAD=1")
	}
	if output, err := cmd.CombinedOutput(); err != nil {
		return services.Wrap(services.ErrExternalTool, "stt", "run",
			strings.TrimSpace(string(output)), err)
	}
	return nil
}

// Transcribe runs WhisperX over a WAV file and returns validated segments
// with word timestamps. outputDir receives the JSON sidecar; it defaults to
// the source's directory.
func (s *Service) Transcribe(ctx context.Context, source, outputDir string) ([]transcript.Segment, error) {
	if strings.TrimSpace(source) == "" {
		return nil, services.Wrap(services.ErrValidation, "stt", "transcribe", "source path required", nil)
	}
	if outputDir == "" {
		outputDir = filepath.Dir(source)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "stt", "transcribe", "ensure output dir", err)
	}

	if err := s.run(ctx, UVXCommand, s.buildArgs(source, outputDir)...); err != nil {
		return nil, err
	}

	jsonPath := JSONPath(source, outputDir)
	segments, err := transcript.LoadFile(jsonPath)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "stt", "load",
			fmt.Sprintf("read transcript %s", jsonPath), err)
	}
	s.logger.Info("transcription complete",
		logging.String("json", jsonPath),
		logging.Int("segments", len(segments)))
	return segments, nil
}

// JSONPath returns where WhisperX writes the aligned JSON for a source file.
func JSONPath(source, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(outputDir, base+".json")
}

// buildArgs constructs the uvx command line for WhisperX.
func (s *Service) buildArgs(source, outputDir string) []string {
	args := make([]string, 0, 24)

	if s.cfg.CUDAEnabled {
		args = append(args,
			"--index-url", CUDAIndexURL,
			"--extra-index-url", PypiIndexURL,
		)
	} else {
		args = append(args, "--index-url", PypiIndexURL)
	}

	model := s.cfg.Model
	if model == "" {
		model = DefaultConfig().Model
	}
	batch := s.cfg.BatchSize
	if batch <= 0 {
		batch = DefaultConfig().BatchSize
	}

	args = append(args,
		"whisperx",
		source,
		"--model", model,
		"--batch_size", fmt.Sprintf("%d", batch),
		"--output_dir", outputDir,
		"--output_format", "json",
	)

	if lang := strings.TrimSpace(s.cfg.Language); lang != "" {
		args = append(args, "--language", lang)
	}

	if s.cfg.CUDAEnabled {
		args = append(args, "--device", cudaDevice)
	} else {
		args = append(args, "--device", cpuDevice, "--compute_type", cpuComputeType)
	}

	return args
}
