package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAudio(); err != nil {
		return err
	}
	if err := c.validateGaze(); err != nil {
		return err
	}
	if err := c.validateDisfluency(); err != nil {
		return err
	}
	if err := c.validateRetake(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.WorkDir == "" {
		return errors.New("paths.work_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateAudio() error {
	if c.Audio.Strategy != StrategySilence && c.Audio.Strategy != StrategyEnergy {
		return fmt.Errorf("audio.strategy must be %q or %q", StrategySilence, StrategyEnergy)
	}
	if c.Audio.NoiseFloorDB >= 0 {
		return errors.New("audio.noise_floor_db must be negative (dBFS)")
	}
	if err := ensurePositiveMap(map[string]float64{
		"audio.cut_over":       c.Audio.CutOver,
		"audio.min_segment":    c.Audio.MinSegment,
		"audio.frame_duration": c.Audio.FrameDuration,
	}); err != nil {
		return err
	}
	if c.Audio.Padding < c.Audio.FrameDuration {
		return errors.New("audio.padding must be at least one frame_duration")
	}
	if c.Audio.MergeUnder < 0 || c.Audio.MergeUnder > c.Audio.CutOver {
		return errors.New("audio.merge_under must be between 0 and audio.cut_over")
	}
	if c.Audio.PrePad < 0 || c.Audio.PostPad < 0 {
		return errors.New("audio pads must be >= 0")
	}
	if c.Audio.StartBias < 0 {
		return errors.New("audio.start_bias must be >= 0")
	}
	return nil
}

func (c *Config) validateGaze() error {
	if !c.Gaze.Enabled {
		return nil
	}
	if err := ensurePositiveMap(map[string]float64{
		"gaze.sample_fps":            c.Gaze.SampleFPS,
		"gaze.yaw_max_deg":           c.Gaze.YawMaxDeg,
		"gaze.max_yaw_speed_deg_s":   c.Gaze.MaxYawSpeedDegS,
		"gaze.max_pitch_speed_deg_s": c.Gaze.MaxPitchSpeedDegS,
		"gaze.min_stable":            c.Gaze.MinStable,
		"gaze.max_invalid_gap":       c.Gaze.MaxInvalidGap,
		"gaze.min_segment":           c.Gaze.MinSegment,
	}); err != nil {
		return err
	}
	if c.Gaze.PitchMinDeg >= c.Gaze.PitchMaxDeg {
		return errors.New("gaze.pitch_min_deg must be below gaze.pitch_max_deg")
	}
	if c.Gaze.Cooldown < 0 {
		return errors.New("gaze.cooldown must be >= 0")
	}
	if c.Gaze.EntryGuard < 0 || c.Gaze.ExitGuard < 0 {
		return errors.New("gaze entry/exit guards must be >= 0")
	}
	if c.Gaze.EntryMaxBadFrames < 0 || c.Gaze.ExitMaxBadFrames < 0 {
		return errors.New("gaze entry/exit bad-frame counts must be >= 0")
	}
	if c.Gaze.Workers < 0 {
		return errors.New("gaze.workers must be >= 0")
	}
	return nil
}

func (c *Config) validateDisfluency() error {
	if !c.Disfluency.Enabled {
		return nil
	}
	if err := ensurePositiveMap(map[string]float64{
		"disfluency.max_filler":      c.Disfluency.MaxFiller,
		"disfluency.max_noise":       c.Disfluency.MaxNoise,
		"disfluency.restart_max_gap": c.Disfluency.RestartMaxGap,
	}); err != nil {
		return err
	}
	if c.Disfluency.RestartWindow < 2 {
		return errors.New("disfluency.restart_window must be at least 2 words")
	}
	if c.Disfluency.RestartSimilarity <= 0 || c.Disfluency.RestartSimilarity > 1 {
		return errors.New("disfluency.restart_similarity must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateRetake() error {
	if !c.Retake.Enabled {
		return nil
	}
	if c.Retake.Lookback < 1 {
		return errors.New("retake.lookback must be at least 1")
	}
	if c.Retake.MinSim <= 0 || c.Retake.MinSim > 1 {
		return errors.New("retake.min_sim must be between 0 and 1")
	}
	if c.Retake.MinKeep < 0 {
		return errors.New("retake.min_keep must be >= 0")
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.New("render.width and render.height must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return errors.New("logging.format must be auto, console, or json")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be debug, info, warn, or error")
	}
	if c.Pipeline.TotalTimeoutSeconds < 0 {
		return errors.New("pipeline.total_timeout_seconds must be >= 0")
	}
	return nil
}

func ensurePositiveMap(values map[string]float64) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
