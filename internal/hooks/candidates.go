package hooks

import (
	"os"
	"path/filepath"
	"strings"
)

// subtitleCandidates lists file names in dir whose extension equals ext and
// whose name contains base as a substring. foldExt selects case-insensitive
// extension comparison; the inclusion test and recorder fold, the command
// builder matches the literal extension only.
func subtitleCandidates(dir, base, ext string, foldExt bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		entryExt := filepath.Ext(name)
		if foldExt {
			if !strings.EqualFold(entryExt, ext) {
				continue
			}
		} else if entryExt != ext {
			continue
		}
		if !strings.Contains(name, base) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// baseName strips the directory and extension from a media path.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// sameMultiset reports whether two name lists contain the same entries with
// the same multiplicities, regardless of order.
func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, name := range a {
		counts[name]++
	}
	for _, name := range b {
		counts[name]--
		if counts[name] < 0 {
			return false
		}
	}
	return true
}
