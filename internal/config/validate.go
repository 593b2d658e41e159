package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSync(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		return errors.New("paths.library_dir must be set")
	}
	return nil
}

func (c *Config) validateSync() error {
	if !strings.HasPrefix(c.Sync.ContainerExtension, ".") || len(c.Sync.ContainerExtension) < 2 {
		return fmt.Errorf("sync.container_extension %q must be a file extension like .mp4", c.Sync.ContainerExtension)
	}
	if !strings.HasPrefix(c.Sync.SubtitleExtension, ".") || len(c.Sync.SubtitleExtension) < 2 {
		return fmt.Errorf("sync.subtitle_extension %q must be a file extension like .srt", c.Sync.SubtitleExtension)
	}
	if strings.TrimSpace(c.Sync.FFSubsyncBinary) == "" {
		return errors.New("sync.ffsubsync_binary must be set")
	}
	if strings.TrimSpace(c.Sync.Shell) == "" {
		return errors.New("sync.shell must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
