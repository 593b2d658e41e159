package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LibraryDir string `toml:"library_dir"`
	LogDir     string `toml:"log_dir"`
	DataDir    string `toml:"data_dir"`
}

// Sync contains configuration for subtitle synchronization.
type Sync struct {
	// ContainerExtension is the only video extension considered for
	// processing. ffsubsync handles mp4 reliably, hence the default.
	ContainerExtension string `toml:"container_extension"`
	// SubtitleExtension is the subtitle extension matched alongside videos.
	SubtitleExtension string `toml:"subtitle_extension"`
	FFSubsyncBinary   string `toml:"ffsubsync_binary"`
	FFprobeBinary     string `toml:"ffprobe_binary"`
	Shell             string `toml:"shell"`
	// GoldenSectionSearch toggles the --gss alignment strategy flag.
	GoldenSectionSearch bool `toml:"golden_section_search"`
	// InsertStringIntoSRTFileName and ExecuteCommand are recognized and
	// validated settings that are not applied during command construction.
	InsertStringIntoSRTFileName string `toml:"insert_string_into_srt_file_name"`
	ExecuteCommand              string `toml:"execute_command"`
}

// History contains configuration for the sync history ledger.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for subsync.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Sync    Sync    `toml:"sync"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/subsync/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a config file existed at the resolved path.
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
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
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
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("subsync.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories subsync writes to.
func (c *Config) EnsureDirectories() error {
	for name, dir := range map[string]string{
		"log_dir":  c.Paths.LogDir,
		"data_dir": c.Paths.DataDir,
	} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s %q: %w", name, dir, err)
		}
	}
	return nil
}

// CreateSample writes the embedded sample configuration to the target path.
func CreateSample(target string) error {
	return os.WriteFile(target, []byte(sampleConfig), 0o644)
}
