package preflight

import (
	"subsync/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Library directory", cfg.Paths.LibraryDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}

	if cfg.History.Enabled {
		results = append(results, CheckDirectoryAccess("Data directory", cfg.Paths.DataDir))
	}

	// Synced subtitles are rewritten in place, so the library volume needs
	// headroom for the temp copies ffsubsync writes.
	results = append(results, CheckFreeSpace("Library free space", cfg.Paths.LibraryDir, minLibraryFreeBytes))

	return results
}

// AllPassed reports whether every result in the set passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
