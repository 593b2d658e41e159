package hooks

import (
	"context"
	"path/filepath"
	"strings"

	"subsync/internal/dirinfo"
	"subsync/internal/logging"
)

// PostProcess records the subtitle files present alongside each destination
// file as synced. A failed task records nothing, so an incomplete sync can
// never be mistaken for a finished one.
//
// Known race: a subtitle file added to the directory while this scan runs
// (for instance by a sibling sync sharing a basename prefix) is recorded as
// synced without having been processed. This window is inherent to the
// list-then-record design and is left as-is.
func (r *Runner) PostProcess(ctx context.Context, res PostProcessResult) PostProcessResult {
	if !res.TaskProcessingSuccess {
		r.logger.Debug("task unsuccessful, leaving sync record untouched",
			logging.String(logging.FieldHook, "postprocess"))
		return res
	}

	for _, destination := range res.DestinationFiles {
		dir := filepath.Dir(destination)
		srts, err := subtitleCandidates(dir, baseName(destination), r.cfg.Sync.SubtitleExtension, true)
		if err != nil {
			r.logger.Warn("listing subtitle candidates failed, skipping record",
				logging.String(logging.FieldHook, "postprocess"),
				logging.String(logging.FieldDirectory, dir),
				logging.Error(err))
			continue
		}

		info := dirinfo.Open(dir, r.logger)
		info.SetStringSlice(sectionSubsSynced, strings.ToLower(filepath.Base(destination)), srts)
		if err := info.Save(); err != nil {
			r.logger.Warn("saving sync record failed",
				logging.String(logging.FieldHook, "postprocess"),
				logging.String(logging.FieldPath, destination),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check directory permissions; the file will be re-evaluated next scan"))
			continue
		}

		r.logger.Info("subtitles recorded as synced",
			logging.String(logging.FieldHook, "postprocess"),
			logging.String(logging.FieldPath, destination),
			logging.Int("subtitle_count", len(srts)))
	}
	return res
}
