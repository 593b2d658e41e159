package dirinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/gofrs/flock"

	"subsync/internal/logging"
)

// FileName is the sidecar file written into each tracked directory.
const FileName = ".subsync.json"

// ErrNotFound reports a lookup for a section/key pair with no stored value.
var ErrNotFound = errors.New("dirinfo: entry not found")

// DirectoryInfo holds the persisted state for one directory.
type DirectoryInfo struct {
	dir      string
	path     string
	logger   *slog.Logger
	sections map[string]map[string][]string
}

// Open loads the sidecar for dir, starting empty when the file is missing or
// unreadable. A malformed sidecar is logged and treated as empty rather than
// propagated; the caller's contract is "no prior record", never a failure.
func Open(dir string, logger *slog.Logger) *DirectoryInfo {
	logger = logging.NewComponentLogger(logger, "dirinfo")

	d := &DirectoryInfo{
		dir:      dir,
		path:     filepath.Join(dir, FileName),
		logger:   logger,
		sections: make(map[string]map[string][]string),
	}

	data, err := os.ReadFile(d.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debug("sidecar unreadable, starting empty",
				logging.String(logging.FieldDirectory, dir),
				logging.Error(err))
		}
		return d
	}
	if len(data) == 0 {
		return d
	}
	if err := json.Unmarshal(data, &d.sections); err != nil {
		logger.Debug("sidecar malformed, starting empty",
			logging.String(logging.FieldDirectory, dir),
			logging.Error(err))
		d.sections = make(map[string]map[string][]string)
	}
	return d
}

// Dir returns the directory this store is scoped to.
func (d *DirectoryInfo) Dir() string { return d.dir }

// Path returns the sidecar file path.
func (d *DirectoryInfo) Path() string { return d.path }

// GetStringSlice returns the stored values for section/key, or ErrNotFound.
func (d *DirectoryInfo) GetStringSlice(section, key string) ([]string, error) {
	entries, ok := d.sections[section]
	if !ok {
		return nil, fmt.Errorf("%w: section %q", ErrNotFound, section)
	}
	values, ok := entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, section, key)
	}
	return append([]string(nil), values...), nil
}

// SetStringSlice stores values under section/key, replacing any prior entry.
func (d *DirectoryInfo) SetStringSlice(section, key string, values []string) {
	entries, ok := d.sections[section]
	if !ok {
		entries = make(map[string][]string)
		d.sections[section] = entries
	}
	entries[key] = append([]string(nil), values...)
}

// Section returns a copy of every entry stored under section. The map is
// empty, never nil, when the section is absent.
func (d *DirectoryInfo) Section(section string) map[string][]string {
	entries := make(map[string][]string, len(d.sections[section]))
	for key, values := range d.sections[section] {
		entries[key] = append([]string(nil), values...)
	}
	return entries
}

// Delete removes section/key and reports whether an entry existed. Empty
// sections are dropped so a cleared sidecar serializes back to {}.
func (d *DirectoryInfo) Delete(section, key string) bool {
	entries, ok := d.sections[section]
	if !ok {
		return false
	}
	if _, ok := entries[key]; !ok {
		return false
	}
	delete(entries, key)
	if len(entries) == 0 {
		delete(d.sections, section)
	}
	return true
}

// Save writes the sidecar atomically. An advisory lock serializes writers of
// the same sidecar across processes; it does not serialize directory scans
// against saves, so the scan-vs-record window documented in the postprocess
// hook remains.
func (d *DirectoryInfo) Save() error {
	for _, entries := range d.sections {
		for key := range entries {
			sort.Strings(entries[key])
		}
	}

	data, err := json.MarshalIndent(d.sections, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sidecar: %w", err)
	}

	lock := flock.New(d.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock sidecar: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmpPath := d.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp sidecar: %w", err)
	}
	if err := os.Rename(tmpPath, d.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename sidecar: %w", err)
	}

	d.logger.Debug("saved sidecar",
		logging.String(logging.FieldDirectory, d.dir),
		logging.Int("section_count", len(d.sections)))
	return nil
}
