package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"subsync/internal/config"
	"subsync/internal/deps"
)

// minLibraryFreeBytes is the free-space floor for the library volume.
const minLibraryFreeBytes = 512 << 20

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace verifies the filesystem holding path has at least minBytes free.
func CheckFreeSpace(name, path string, minBytes uint64) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	if free < minBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (%d MiB free, need %d MiB)", path, free>>20, minBytes>>20)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d MiB free)", path, free>>20)}
}

// CheckSystemDeps evaluates the external binaries the pipeline shells out to.
// The status command and the scan driver both use this to keep the
// requirements list in one place.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "ffsubsync",
			Command:     deps.ResolveFFSubsyncPath(cfg.Sync.FFSubsyncBinary),
			Description: "Required for subtitle alignment",
		},
		{
			Name:        "FFprobe",
			Command:     cfg.Sync.FFprobeBinary,
			Description: "Required for media inspection",
		},
		{
			Name:        "Shell",
			Command:     cfg.Sync.Shell,
			Description: "Runs the chained sync command",
		},
	}
	return deps.CheckBinaries(requirements)
}
