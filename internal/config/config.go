package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// WorkDir holds extracted audio, transcript sidecars, and the run lock.
	WorkDir string `toml:"work_dir"`
	// OutputDir receives rendered edits.
	OutputDir string `toml:"output_dir"`
}

// Audio contains the speech segmentation settings.
type Audio struct {
	// Strategy selects the segmenter: "silence" (threshold detector) or
	// "energy" (classifier ring trigger).
	Strategy     string  `toml:"strategy"`
	NoiseFloorDB float64 `toml:"noise_floor_db"`
	CutOver      float64 `toml:"cut_over"`
	MergeUnder   float64 `toml:"merge_under"`
	PrePad       float64 `toml:"pre_pad"`
	PostPad      float64 `toml:"post_pad"`
	MinSegment   float64 `toml:"min_segment"`
	StartBias    float64 `toml:"start_bias"`
	// FrameDuration and Padding tune the "energy" strategy's classifier
	// frame length and trigger window.
	FrameDuration float64 `toml:"frame_duration"`
	Padding       float64 `toml:"padding"`
}

// Gaze contains the attention filter settings.
type Gaze struct {
	Enabled           bool    `toml:"enabled"`
	SampleFPS         float64 `toml:"sample_fps"`
	YawMaxDeg         float64 `toml:"yaw_max_deg"`
	PitchMinDeg       float64 `toml:"pitch_min_deg"`
	PitchMaxDeg       float64 `toml:"pitch_max_deg"`
	MaxYawSpeedDegS   float64 `toml:"max_yaw_speed_deg_s"`
	MaxPitchSpeedDegS float64 `toml:"max_pitch_speed_deg_s"`
	Cooldown          float64 `toml:"cooldown"`
	EntryGuard        float64 `toml:"entry_guard"`
	EntryMaxBadFrames int     `toml:"entry_max_bad_frames"`
	ExitGuard         float64 `toml:"exit_guard"`
	ExitMaxBadFrames  int     `toml:"exit_max_bad_frames"`
	MinStable         float64 `toml:"min_stable"`
	MaxInvalidGap     float64 `toml:"max_invalid_gap"`
	MinSegment        float64 `toml:"min_segment"`
	MergeGap          float64 `toml:"merge_gap"`
	Workers           int     `toml:"workers"`
}

// Disfluency contains the filler/restart detector settings.
type Disfluency struct {
	Enabled           bool    `toml:"enabled"`
	MaxFiller         float64 `toml:"max_filler"`
	MaxNoise          float64 `toml:"max_noise"`
	RestartWindow     int     `toml:"restart_window"`
	RestartSimilarity float64 `toml:"restart_similarity"`
	RestartMaxGap     float64 `toml:"restart_max_gap"`
}

// Retake contains the retake resolver settings.
type Retake struct {
	Enabled  bool    `toml:"enabled"`
	Lookback int     `toml:"lookback"`
	MinSim   float64 `toml:"min_sim"`
	MinKeep  float64 `toml:"min_keep"`
}

// STT contains the transcription settings.
type STT struct {
	Model       string `toml:"model"`
	Language    string `toml:"language"`
	CUDAEnabled bool   `toml:"cuda_enabled"`
	BatchSize   int    `toml:"batch_size"`
}

// Render contains the final encode settings.
type Render struct {
	Width       int  `toml:"width"`
	Height      int  `toml:"height"`
	PreferNVENC bool `toml:"prefer_nvenc"`
}

// Pipeline contains run-level timing settings.
type Pipeline struct {
	// TotalTimeoutSeconds aborts a run that exceeds this wall-clock budget.
	// Zero disables the budget.
	TotalTimeoutSeconds int `toml:"total_timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for bestcut.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Audio      Audio      `toml:"audio"`
	Gaze       Gaze       `toml:"gaze"`
	Disfluency Disfluency `toml:"disfluency"`
	Retake     Retake     `toml:"retake"`
	STT        STT        `toml:"stt"`
	Render     Render     `toml:"render"`
	Pipeline   Pipeline   `toml:"pipeline"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/bestcut/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("bestcut.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.WorkDir, c.Paths.OutputDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// FFmpegBinary returns the ffmpeg executable name.
func (c *Config) FFmpegBinary() string {
	return "ffmpeg"
}

// FFprobeBinary returns the ffprobe executable name.
func (c *Config) FFprobeBinary() string {
	return "ffprobe"
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
