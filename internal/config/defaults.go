package config

import (
	"bestcut/internal/disfluency"
	"bestcut/internal/gaze"
	"bestcut/internal/retake"
	"bestcut/internal/services/ffmpeg"
	"bestcut/internal/services/stt"
	"bestcut/internal/vad"
)

const (
	defaultWorkDir   = "~/.local/share/bestcut/work"
	defaultOutputDir = "~/bestcut"
	defaultStrategy  = StrategySilence
	defaultLogFormat = "auto"
	defaultLogLevel  = "info"
)

// Segmenter strategy names accepted in [audio].
const (
	StrategySilence = "silence"
	StrategyEnergy  = "energy"
)

// Default returns a Config populated with repository defaults. Stage values
// mirror the stage packages' own defaults so an empty file and a fully
// spelled-out one behave identically.
func Default() Config {
	silence := vad.DefaultSilenceConfig()
	energy := vad.DefaultConfig()
	gz := gaze.DefaultConfig()
	dis := disfluency.DefaultConfig()
	rt := retake.DefaultConfig()
	tr := stt.DefaultConfig()
	render := ffmpeg.DefaultRenderOptions()

	return Config{
		Paths: Paths{
			WorkDir:   defaultWorkDir,
			OutputDir: defaultOutputDir,
		},
		Audio: Audio{
			Strategy:      defaultStrategy,
			NoiseFloorDB:  silence.NoiseFloorDB,
			CutOver:       silence.CutOver,
			MergeUnder:    silence.MergeUnder,
			PrePad:        silence.PrePad,
			PostPad:       silence.PostPad,
			MinSegment:    silence.MinSegment,
			StartBias:     silence.StartBias,
			FrameDuration: energy.FrameDuration,
			Padding:       energy.Padding,
		},
		Gaze: Gaze{
			Enabled:           true,
			SampleFPS:         gz.SampleFPS,
			YawMaxDeg:         gz.YawMaxDeg,
			PitchMinDeg:       gz.PitchMinDeg,
			PitchMaxDeg:       gz.PitchMaxDeg,
			MaxYawSpeedDegS:   gz.MaxYawSpeedDegS,
			MaxPitchSpeedDegS: gz.MaxPitchSpeedDegS,
			Cooldown:          gz.Cooldown,
			EntryGuard:        gz.EntryGuard,
			EntryMaxBadFrames: gz.EntryMaxBadFrames,
			ExitGuard:         gz.ExitGuard,
			ExitMaxBadFrames:  gz.ExitMaxBadFrames,
			MinStable:         gz.MinStable,
			MaxInvalidGap:     gz.MaxInvalidGap,
			MinSegment:        gz.MinSegment,
			MergeGap:          gz.MergeGap,
			Workers:           gz.Workers,
		},
		Disfluency: Disfluency{
			Enabled:           true,
			MaxFiller:         dis.MaxFiller,
			MaxNoise:          dis.MaxNoise,
			RestartWindow:     dis.RestartWindow,
			RestartSimilarity: dis.RestartSimilarity,
			RestartMaxGap:     dis.RestartMaxGap,
		},
		Retake: Retake{
			Enabled:  true,
			Lookback: rt.Lookback,
			MinSim:   rt.MinSim,
			MinKeep:  rt.MinKeep,
		},
		STT: STT{
			Model:       tr.Model,
			Language:    tr.Language,
			CUDAEnabled: tr.CUDAEnabled,
			BatchSize:   tr.BatchSize,
		},
		Render: Render{
			Width:       render.Width,
			Height:      render.Height,
			PreferNVENC: render.PreferNVENC,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// SilenceConfig builds the silence segmenter thresholds from the [audio]
// section.
func (c *Config) SilenceConfig() vad.SilenceConfig {
	cfg := vad.DefaultSilenceConfig()
	cfg.NoiseFloorDB = c.Audio.NoiseFloorDB
	cfg.CutOver = c.Audio.CutOver
	cfg.MergeUnder = c.Audio.MergeUnder
	cfg.PrePad = c.Audio.PrePad
	cfg.PostPad = c.Audio.PostPad
	cfg.MinSegment = c.Audio.MinSegment
	cfg.StartBias = c.Audio.StartBias
	return cfg
}

// VADConfig builds the ring-trigger segmenter thresholds from the [audio]
// section.
func (c *Config) VADConfig() vad.Config {
	cfg := vad.DefaultConfig()
	cfg.FrameDuration = c.Audio.FrameDuration
	cfg.Padding = c.Audio.Padding
	cfg.MinSegment = c.Audio.MinSegment
	cfg.StartBias = c.Audio.StartBias
	return cfg
}

// GazeConfig builds the gaze filter thresholds from the [gaze] section.
func (c *Config) GazeConfig() gaze.Config {
	cfg := gaze.DefaultConfig()
	cfg.SampleFPS = c.Gaze.SampleFPS
	cfg.YawMaxDeg = c.Gaze.YawMaxDeg
	cfg.PitchMinDeg = c.Gaze.PitchMinDeg
	cfg.PitchMaxDeg = c.Gaze.PitchMaxDeg
	cfg.MaxYawSpeedDegS = c.Gaze.MaxYawSpeedDegS
	cfg.MaxPitchSpeedDegS = c.Gaze.MaxPitchSpeedDegS
	cfg.Cooldown = c.Gaze.Cooldown
	cfg.EntryGuard = c.Gaze.EntryGuard
	cfg.EntryMaxBadFrames = c.Gaze.EntryMaxBadFrames
	cfg.ExitGuard = c.Gaze.ExitGuard
	cfg.ExitMaxBadFrames = c.Gaze.ExitMaxBadFrames
	cfg.MinStable = c.Gaze.MinStable
	cfg.MaxInvalidGap = c.Gaze.MaxInvalidGap
	cfg.MinSegment = c.Gaze.MinSegment
	cfg.MergeGap = c.Gaze.MergeGap
	cfg.Workers = c.Gaze.Workers
	return cfg
}

// DisfluencyConfig builds the disfluency thresholds from the [disfluency]
// section.
func (c *Config) DisfluencyConfig() disfluency.Config {
	cfg := disfluency.DefaultConfig()
	cfg.MaxFiller = c.Disfluency.MaxFiller
	cfg.MaxNoise = c.Disfluency.MaxNoise
	cfg.RestartWindow = c.Disfluency.RestartWindow
	cfg.RestartSimilarity = c.Disfluency.RestartSimilarity
	cfg.RestartMaxGap = c.Disfluency.RestartMaxGap
	return cfg
}

// RetakeConfig builds the resolver thresholds from the [retake] section.
func (c *Config) RetakeConfig() retake.Config {
	cfg := retake.DefaultConfig()
	cfg.Lookback = c.Retake.Lookback
	cfg.MinSim = c.Retake.MinSim
	cfg.MinKeep = c.Retake.MinKeep
	return cfg
}

// STTConfig builds the transcription settings from the [stt] section.
func (c *Config) STTConfig() stt.Config {
	return stt.Config{
		Model:       c.STT.Model,
		Language:    c.STT.Language,
		CUDAEnabled: c.STT.CUDAEnabled,
		BatchSize:   c.STT.BatchSize,
	}
}

// RenderOptions builds the encode settings from the [render] section.
func (c *Config) RenderOptions() ffmpeg.RenderOptions {
	return ffmpeg.RenderOptions{
		Width:       c.Render.Width,
		Height:      c.Render.Height,
		PreferNVENC: c.Render.PreferNVENC,
	}
}
