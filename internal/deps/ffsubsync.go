package deps

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ResolveFFSubsyncPath locates the ffsubsync binary the worker will execute.
//
// ffsubsync is commonly installed with pipx, which places entry points in
// ~/.local/bin. That directory is not always on PATH for daemonized
// processes, so the lookup falls back there before giving up. The configured
// command wins when it resolves.
func ResolveFFSubsyncPath(configured string) string {
	name := strings.TrimSpace(configured)
	if name == "" {
		name = "ffsubsync"
	}
	if resolved, err := exec.LookPath(name); err == nil {
		return resolved
	}
	if filepath.IsAbs(name) {
		return name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	candidate := filepath.Join(home, ".local", "bin", name)
	if info, err := os.Stat(candidate); err == nil && isExecutable(info) {
		return candidate
	}
	return name
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
