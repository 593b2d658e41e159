package hooks

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"subsync/internal/logging"
)

// WorkerProcess builds the shell command that synchronizes every subtitle
// candidate of the task's original file. The command is cleared up front so
// no external process runs unless the probe succeeds and at least one
// candidate exists.
func (r *Runner) WorkerProcess(ctx context.Context, task WorkerTask) WorkerTask {
	task.ExecCommand = nil
	task.CommandProgressParser = nil
	task.Repeat = false

	abspath := task.OriginalFilePath
	probe, err := r.prober.File(ctx, abspath)
	if err != nil {
		r.logger.Warn("probe failed, skipping file",
			logging.String(logging.FieldHook, "worker"),
			logging.String(logging.FieldPath, abspath),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "confirm ffprobe is installed and the file is a readable video container"))
		return task
	}

	dir := filepath.Dir(abspath)
	srts, err := subtitleCandidates(dir, baseName(abspath), r.cfg.Sync.SubtitleExtension, false)
	if err != nil {
		r.logger.Warn("listing subtitle candidates failed",
			logging.String(logging.FieldHook, "worker"),
			logging.String(logging.FieldDirectory, dir),
			logging.Error(err))
		return task
	}
	r.logger.Debug("found subtitle candidates",
		logging.String(logging.FieldHook, "worker"),
		logging.String(logging.FieldPath, abspath),
		logging.Any("candidates", srts))
	if len(srts) == 0 {
		return task
	}

	segments := make([]string, 0, len(srts))
	for _, srt := range srts {
		srtPath := filepath.Join(dir, srt)
		words := []string{r.cfg.Sync.FFSubsyncBinary, abspath, "-i", srtPath, "-o", srtPath}
		segment := shellquote.Join(words...)
		if r.cfg.Sync.GoldenSectionSearch {
			segment += " --gss"
		}
		segments = append(segments, segment)
	}

	task.ExecCommand = []string{r.cfg.Sync.Shell, "-c", strings.Join(segments, "; ")}
	task.CommandProgressParser = NewProgressParser(probe)

	r.logger.Debug("built sync command",
		logging.String(logging.FieldHook, "worker"),
		logging.String(logging.FieldPath, abspath),
		logging.Int("segment_count", len(segments)))
	return task
}
