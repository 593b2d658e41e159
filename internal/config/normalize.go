package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSync()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LibraryDir, err = ExpandPath(c.Paths.LibraryDir); err != nil {
		return fmt.Errorf("paths.library_dir: %w", err)
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = ExpandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSync() {
	c.Sync.ContainerExtension = normalizeExtension(c.Sync.ContainerExtension, defaultContainerExtension)
	c.Sync.SubtitleExtension = normalizeExtension(c.Sync.SubtitleExtension, defaultSubtitleExtension)
	c.Sync.FFSubsyncBinary = strings.TrimSpace(c.Sync.FFSubsyncBinary)
	if c.Sync.FFSubsyncBinary == "" {
		c.Sync.FFSubsyncBinary = defaultFFSubsyncBinary
	}
	c.Sync.FFprobeBinary = strings.TrimSpace(c.Sync.FFprobeBinary)
	if c.Sync.FFprobeBinary == "" {
		c.Sync.FFprobeBinary = defaultFFprobeBinary
	}
	c.Sync.Shell = strings.TrimSpace(c.Sync.Shell)
	if c.Sync.Shell == "" {
		c.Sync.Shell = defaultShell
	}
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = filepath.Join(c.Paths.DataDir, "history.db")
		return nil
	}
	expanded, err := ExpandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func normalizeExtension(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	if !strings.HasPrefix(value, ".") {
		value = "." + value
	}
	return value
}

// ExpandPath resolves a leading ~ against the current user's home directory
// and returns an absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is empty")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, path[2:])
		}
	}
	return filepath.Abs(path)
}
