package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"bestcut/internal/config"
	"bestcut/internal/gaze"
	"bestcut/internal/logging"
	"bestcut/internal/media/ffprobe"
	"bestcut/internal/pipeline"
	"bestcut/internal/services/ffmpeg"
	"bestcut/internal/services/stt"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) buildLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		level = *c.logLevelFlag
	}
	return logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
	})
}

// buildPipeline wires the real external tools into a pipeline. posePath may
// be empty, in which case the gaze stage is skipped.
func (c *commandContext) buildPipeline(logger *slog.Logger, posePath string) (*pipeline.Pipeline, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	encoder := ffmpeg.NewService(cfg.FFmpegBinary(), logger)
	deps := pipeline.Deps{
		Inspect:     ffprobe.Inspect,
		Extractor:   encoder,
		Transcriber: stt.NewService(cfg.STTConfig(), logger),
		Renderer:    encoder,
	}
	if posePath != "" {
		poses, err := gaze.LoadSidecar(posePath)
		if err != nil {
			return nil, err
		}
		deps.Pose = poses
	}
	return pipeline.New(cfg, deps, logger), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
