package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSequencing(); err != nil {
		return err
	}
	if err := c.validateExtras(); err != nil {
		return err
	}
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSequencing() error {
	if c.Sequencing.OutOfBandThreshold <= 0 {
		return errors.New("sequencing.out_of_band_threshold must be positive")
	}
	return nil
}

func (c *Config) validateExtras() error {
	if c.Extras.MinEpisode <= 0 {
		return errors.New("extras.min_episode must be positive")
	}
	if c.Extras.ThumbnailQuality < 1 || c.Extras.ThumbnailQuality > 31 {
		return fmt.Errorf("extras.thumbnail_quality must be between 1 and 31, got %d", c.Extras.ThumbnailQuality)
	}
	return nil
}

func (c *Config) validateFFmpeg() error {
	if c.FFmpeg.ProbeTimeout <= 0 || c.FFmpeg.ExtractTimeout <= 0 {
		return errors.New("ffmpeg timeouts must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
