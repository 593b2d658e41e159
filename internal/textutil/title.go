package textutil

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	separatorPattern  = regexp.MustCompile(`[._]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	titleCaser = cases.Title(language.Und)
)

// DisplayTitle derives a human-readable title from a media file path.
// "the.matrix.1999.mp4" becomes "The Matrix 1999". The raw base name is
// returned when nothing usable survives cleanup.
func DisplayTitle(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return ""
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	cleaned := separatorPattern.ReplaceAllString(base, " ")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return base
	}
	return titleCaser.String(cleaned)
}
