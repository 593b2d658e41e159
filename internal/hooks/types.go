package hooks

import (
	"context"

	"log/slog"

	"subsync/internal/config"
	"subsync/internal/logging"
	"subsync/internal/media/ffprobe"
)

// FileTestRequest is the payload of the inclusion-test hook. Only Path is
// read and only AddFileToPendingTasks is written; the remaining fields are
// host bookkeeping that must round-trip unchanged.
type FileTestRequest struct {
	Path                  string
	Issues                []string
	AddFileToPendingTasks bool
	PriorityScore         int
	SharedInfo            map[string]any
}

// ProgressParser converts one line of command output into a completion
// percentage. ok is false for lines carrying no progress information.
type ProgressParser func(line string) (percent float64, ok bool)

// WorkerTask is the payload of the command-builder hook. ExecCommand empty
// means no external process should run for this file.
type WorkerTask struct {
	ExecCommand           []string
	CommandProgressParser ProgressParser
	FileIn                string
	FileOut               string
	OriginalFilePath      string
	Repeat                bool
}

// PostProcessResult is the payload of the completion-recorder hook.
type PostProcessResult struct {
	TaskProcessingSuccess    bool
	FileMoveProcessesSuccess bool
	DestinationFiles         []string
	SourceData               map[string]any
}

// Prober inspects a media file; satisfied by ffprobe.Probe and by test stubs.
type Prober interface {
	File(ctx context.Context, path string) (ffprobe.Result, error)
}

// Runner evaluates the three hooks against one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	prober Prober
}

// New constructs a hook runner. A nil prober defaults to the configured
// ffprobe binary restricted to video containers.
func New(cfg *config.Config, logger *slog.Logger, prober Prober) *Runner {
	if prober == nil {
		prober = ffprobe.Probe{Binary: cfg.Sync.FFprobeBinary, RequireVideo: true}
	}
	return &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "hooks"),
		prober: prober,
	}
}
