package config

import "strings"

// normalize expands paths and canonicalizes enumerated string fields.
func (c *Config) normalize() error {
	var err error
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return err
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return err
	}

	c.Audio.Strategy = strings.ToLower(strings.TrimSpace(c.Audio.Strategy))
	if c.Audio.Strategy == "" {
		c.Audio.Strategy = defaultStrategy
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	c.STT.Model = strings.TrimSpace(c.STT.Model)
	c.STT.Language = strings.ToLower(strings.TrimSpace(c.STT.Language))

	return nil
}
