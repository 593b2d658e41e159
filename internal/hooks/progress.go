package hooks

import (
	"regexp"
	"strconv"

	"subsync/internal/media/ffprobe"
)

var (
	// ffsubsync drives ffmpeg underneath; its stderr carries ffmpeg-style
	// time=HH:MM:SS.cc counters while audio is extracted.
	timePattern = regexp.MustCompile(`time=(\d+):(\d{2}):(\d{2})(?:\.(\d+))?`)
	// ffsubsync's own progress bars print integer percentages.
	percentPattern = regexp.MustCompile(`(\d{1,3})%`)
)

// NewProgressParser returns a parser bound to the probe result of the file
// being processed. The container duration converts elapsed-time counters
// into percentages; bare percent tokens pass through directly.
func NewProgressParser(probe ffprobe.Result) ProgressParser {
	total := probe.DurationSeconds()
	return func(line string) (float64, bool) {
		if m := timePattern.FindStringSubmatch(line); m != nil && total > 0 {
			hours, _ := strconv.ParseFloat(m[1], 64)
			minutes, _ := strconv.ParseFloat(m[2], 64)
			seconds, _ := strconv.ParseFloat(m[3], 64)
			elapsed := hours*3600 + minutes*60 + seconds
			return clampPercent(elapsed / total * 100), true
		}
		if m := percentPattern.FindStringSubmatch(line); m != nil {
			percent, _ := strconv.ParseFloat(m[1], 64)
			return clampPercent(percent), true
		}
		return 0, false
	}
}

func clampPercent(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
