package hooks

import (
	"context"
	"path/filepath"
	"strings"

	"subsync/internal/dirinfo"
	"subsync/internal/logging"
)

// sectionSubsSynced is the sidecar section holding synced subtitle lists,
// keyed by lowercased video file name.
const sectionSubsSynced = "subs_synced"

// FileTest decides whether the file at req.Path should be queued for
// subtitle synchronization. Files without the configured container extension
// pass through untouched; eligible files are flagged when the subtitle files
// currently on disk differ from the recorded synced set.
func (r *Runner) FileTest(ctx context.Context, req FileTestRequest) FileTestRequest {
	ext := strings.ToLower(filepath.Ext(req.Path))
	r.logger.Debug("testing file",
		logging.String(logging.FieldHook, "filetest"),
		logging.String(logging.FieldPath, req.Path),
		logging.String("extension", ext))

	if ext != r.cfg.Sync.ContainerExtension {
		return req
	}

	if r.subsAlreadySynced(ctx, req.Path) {
		r.logger.Debug("subtitles previously synced, skipping",
			logging.String(logging.FieldHook, "filetest"),
			logging.String(logging.FieldPath, req.Path))
		return req
	}

	req.AddFileToPendingTasks = true
	r.logger.Debug("queueing file for subtitle sync",
		logging.String(logging.FieldHook, "filetest"),
		logging.String(logging.FieldPath, req.Path))
	return req
}

// subsAlreadySynced compares the recorded subtitle list for path against the
// subtitle files currently on disk. Equal multisets mean nothing changed
// since the last sync. Lookup and listing failures degrade to an empty set.
func (r *Runner) subsAlreadySynced(ctx context.Context, path string) bool {
	dir := filepath.Dir(path)

	info := dirinfo.Open(dir, r.logger)
	recorded, err := info.GetStringSlice(sectionSubsSynced, strings.ToLower(filepath.Base(path)))
	if err != nil {
		r.logger.Debug("no usable sync record",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		recorded = nil
	}

	current, err := subtitleCandidates(dir, baseName(path), r.cfg.Sync.SubtitleExtension, true)
	if err != nil {
		r.logger.Debug("listing subtitle candidates failed",
			logging.String(logging.FieldDirectory, dir),
			logging.Error(err))
		current = nil
	}

	r.logger.Debug("comparing sync record against disk",
		logging.String(logging.FieldPath, path),
		logging.Any("recorded", recorded),
		logging.Any("current", current))
	return sameMultiset(recorded, current)
}
