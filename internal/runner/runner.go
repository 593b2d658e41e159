package runner

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"subsync/internal/config"
	"subsync/internal/history"
	"subsync/internal/hooks"
	"subsync/internal/logging"
	"subsync/internal/services"
)

// Action classifies the outcome of one file in a pass.
type Action string

const (
	ActionSynced  Action = "synced"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
	ActionPending Action = "pending"
)

// FileResult reports the outcome for a single library file.
type FileResult struct {
	Path          string
	Action        Action
	SubtitleCount int
	Detail        string
}

// Summary aggregates one full pass. Pending is only populated by Scan,
// which reports what a Process run would touch.
type Summary struct {
	Scanned int
	Synced  int
	Skipped int
	Failed  int
	Pending int
	Results []FileResult
}

// Runner walks the library and applies the hook pipeline file by file.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	hooks  *hooks.Runner
	ledger *history.Store
	exec   Executor
}

// Option configures the runner.
type Option func(*Runner)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(r *Runner) {
		if exec != nil {
			r.exec = exec
		}
	}
}

// WithLedger attaches a history ledger; outcomes are recorded per file.
// Without one the pass still runs, it just leaves no audit trail.
func WithLedger(store *history.Store) Option {
	return func(r *Runner) {
		r.ledger = store
	}
}

// New constructs a runner around an existing hook runner.
func New(cfg *config.Config, logger *slog.Logger, hookRunner *hooks.Runner, opts ...Option) *Runner {
	r := &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "runner"),
		hooks:  hookRunner,
		exec:   commandExecutor{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Scan walks the library and reports which files the inclusion test would
// queue, without building or running any command.
func (r *Runner) Scan(ctx context.Context) (Summary, error) {
	paths, err := r.collect(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Scanned: len(paths)}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		fctx := services.WithPath(ctx, path)
		req := r.hooks.FileTest(fctx, hooks.FileTestRequest{Path: path})
		result := FileResult{Path: path, Action: ActionSkipped, Detail: "subtitles up to date"}
		if req.AddFileToPendingTasks {
			result.Action = ActionPending
			result.Detail = "needs sync"
			summary.Pending++
		} else {
			summary.Skipped++
		}
		summary.Results = append(summary.Results, result)
	}
	return summary, nil
}

// Process runs the full pipeline over the library.
func (r *Runner) Process(ctx context.Context) (Summary, error) {
	paths, err := r.collect(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Scanned: len(paths)}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		result := r.processFile(ctx, path)
		summary.Results = append(summary.Results, result)
		switch result.Action {
		case ActionSynced:
			summary.Synced++
		case ActionFailed:
			summary.Failed++
		default:
			summary.Skipped++
		}
	}
	return summary, nil
}

func (r *Runner) processFile(ctx context.Context, path string) FileResult {
	requestID := uuid.NewString()
	fctx := services.WithRequestID(services.WithPath(ctx, path), requestID)
	logger := r.logger.With(
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldCorrelationID, requestID),
	)

	req := r.hooks.FileTest(fctx, hooks.FileTestRequest{Path: path})
	if !req.AddFileToPendingTasks {
		logger.Debug("file skipped, subtitles up to date")
		r.record(fctx, history.Event{
			Path:          path,
			Directory:     filepath.Dir(path),
			EventType:     history.EventSkipped,
			CorrelationID: requestID,
		})
		return FileResult{Path: path, Action: ActionSkipped, Detail: "subtitles up to date"}
	}

	task := r.hooks.WorkerProcess(fctx, hooks.WorkerTask{
		FileIn:           path,
		FileOut:          path,
		OriginalFilePath: path,
	})
	if len(task.ExecCommand) == 0 {
		logger.Debug("no sync command built, nothing to do")
		r.record(fctx, history.Event{
			Path:          path,
			Directory:     filepath.Dir(path),
			EventType:     history.EventSkipped,
			Detail:        "no sync command built",
			CorrelationID: requestID,
		})
		return FileResult{Path: path, Action: ActionSkipped, Detail: "no sync command built"}
	}

	subtitleCount := commandSegments(task)
	logger.Info("syncing subtitles",
		logging.Int("subtitle_count", subtitleCount))

	runErr := r.exec.Run(fctx, task.ExecCommand[0], task.ExecCommand[1:], func(line string) {
		if task.CommandProgressParser == nil {
			return
		}
		if percent, ok := task.CommandProgressParser(line); ok {
			logger.Debug("sync progress", logging.Float64("percent", percent))
		}
	})
	success := runErr == nil

	r.hooks.PostProcess(fctx, hooks.PostProcessResult{
		TaskProcessingSuccess:    success,
		FileMoveProcessesSuccess: true,
		DestinationFiles:         []string{path},
	})

	if !success {
		err := services.Wrap(services.ErrExternalTool, "worker", "sync", "sync command failed", runErr)
		logger.Error("sync command failed", logging.Error(err))
		r.record(fctx, history.Event{
			Path:          path,
			Directory:     filepath.Dir(path),
			EventType:     history.EventFailed,
			SubtitleCount: subtitleCount,
			Detail:        runErr.Error(),
			CorrelationID: requestID,
		})
		return FileResult{Path: path, Action: ActionFailed, SubtitleCount: subtitleCount, Detail: runErr.Error()}
	}

	logger.Info("subtitles synced", logging.Int("subtitle_count", subtitleCount))
	r.record(fctx, history.Event{
		Path:          path,
		Directory:     filepath.Dir(path),
		EventType:     history.EventSynced,
		SubtitleCount: subtitleCount,
		CorrelationID: requestID,
	})
	return FileResult{Path: path, Action: ActionSynced, SubtitleCount: subtitleCount}
}

// collect lists container files under the library root in walk order.
func (r *Runner) collect(ctx context.Context) ([]string, error) {
	root := r.cfg.Paths.LibraryDir
	ext := r.cfg.Sync.ContainerExtension

	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		name := entry.Name()
		if entry.IsDir() {
			if name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(name), ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "runner", "walk library", root, err)
	}
	return paths, nil
}

func (r *Runner) record(ctx context.Context, event history.Event) {
	if r.ledger == nil {
		return
	}
	if _, err := r.ledger.Record(ctx, event); err != nil {
		r.logger.Warn("recording history event failed",
			logging.String(logging.FieldPath, event.Path),
			logging.Error(err))
	}
}

// commandSegments counts the chained invocations in a built sync command;
// each segment drives one subtitle file.
func commandSegments(task hooks.WorkerTask) int {
	if len(task.ExecCommand) != 3 {
		return 0
	}
	return strings.Count(task.ExecCommand[2], "; ") + 1
}
