package runner_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"subsync/internal/config"
	"subsync/internal/dirinfo"
	"subsync/internal/history"
	"subsync/internal/hooks"
	"subsync/internal/logging"
	"subsync/internal/media/ffprobe"
	"subsync/internal/runner"
	"subsync/internal/testsupport"
)

type stubProber struct {
	result ffprobe.Result
	err    error
}

func (s stubProber) File(ctx context.Context, path string) (ffprobe.Result, error) {
	return s.result, s.err
}

type fakeExecutor struct {
	calls [][]string
	lines []string
	err   error
}

func (f *fakeExecutor) Run(ctx context.Context, binary string, args []string, onLine func(string)) error {
	f.calls = append(f.calls, append([]string{binary}, args...))
	for _, line := range f.lines {
		if onLine != nil {
			onLine(line)
		}
	}
	return f.err
}

func newRunner(t *testing.T, cfg *config.Config, exec runner.Executor, opts ...runner.Option) *runner.Runner {
	t.Helper()
	logger := logging.NewNop()
	prober := stubProber{result: ffprobe.Result{Format: ffprobe.Format{Duration: "3600"}}}
	hookRunner := hooks.New(cfg, logger, prober)
	opts = append([]runner.Option{runner.WithExecutor(exec)}, opts...)
	return runner.New(cfg, logger, hookRunner, opts...)
}

func TestScanReportsPendingAndSkipped(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	lib := cfg.Paths.LibraryDir
	testsupport.WriteFile(t, filepath.Join(lib, "a", "movie.mp4"), "video")
	testsupport.WriteFile(t, filepath.Join(lib, "a", "movie.srt"), "subs")
	testsupport.WriteFile(t, filepath.Join(lib, "b", "lonely.mp4"), "video")
	testsupport.WriteFile(t, filepath.Join(lib, "b", "ignored.mkv"), "video")

	r := newRunner(t, cfg, &fakeExecutor{})
	summary, err := r.Scan(context.Background())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if summary.Scanned != 2 {
		t.Fatalf("scanned = %d, want 2 (mkv must be ignored)", summary.Scanned)
	}
	if summary.Pending != 1 || summary.Skipped != 1 {
		t.Fatalf("pending=%d skipped=%d, want 1/1", summary.Pending, summary.Skipped)
	}
}

func TestProcessSyncsAndRecords(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	lib := cfg.Paths.LibraryDir
	path := filepath.Join(lib, "show", "movie.mp4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(lib, "show", "movie.srt"), "subs")

	exec := &fakeExecutor{lines: []string{"time=00:30:00.00"}}
	r := newRunner(t, cfg, exec)

	summary, err := r.Process(context.Background())
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if summary.Synced != 1 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(exec.calls) != 1 {
		t.Fatalf("expected one command execution, got %d", len(exec.calls))
	}
	if exec.calls[0][0] != "bash" || exec.calls[0][1] != "-c" {
		t.Fatalf("unexpected invocation: %v", exec.calls[0])
	}

	// Completion must be persisted so the next pass skips the file.
	values, err := dirinfo.Open(filepath.Dir(path), logging.NewNop()).GetStringSlice("subs_synced", "movie.mp4")
	if err != nil || len(values) != 1 {
		t.Fatalf("sync record missing: %v %v", values, err)
	}

	summary, err = r.Process(context.Background())
	if err != nil {
		t.Fatalf("second process: %v", err)
	}
	if summary.Skipped != 1 || summary.Synced != 0 {
		t.Fatalf("second pass should skip: %+v", summary)
	}
	if len(exec.calls) != 1 {
		t.Fatalf("second pass must not run a command, got %d calls", len(exec.calls))
	}
}

func TestProcessFailureLeavesNoRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	lib := cfg.Paths.LibraryDir
	path := filepath.Join(lib, "movie.mp4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(lib, "movie.srt"), "subs")

	r := newRunner(t, cfg, &fakeExecutor{err: errors.New("exit status 1")})
	summary, err := r.Process(context.Background())
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if summary.Failed != 1 {
		t.Fatalf("expected failure, got %+v", summary)
	}
	if _, err := dirinfo.Open(lib, logging.NewNop()).GetStringSlice("subs_synced", "movie.mp4"); !errors.Is(err, dirinfo.ErrNotFound) {
		t.Fatalf("failed sync must not persist a record, got %v", err)
	}

	// The file stays eligible for the next pass.
	scan, err := r.Scan(context.Background())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if scan.Pending != 1 {
		t.Fatalf("failed file must remain pending: %+v", scan)
	}
}

func TestProcessWritesLedgerEvents(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	lib := cfg.Paths.LibraryDir
	testsupport.WriteFile(t, filepath.Join(lib, "movie.mp4"), "video")
	testsupport.WriteFile(t, filepath.Join(lib, "movie.srt"), "subs")

	ledger, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	defer ledger.Close()

	r := newRunner(t, cfg, &fakeExecutor{}, runner.WithLedger(ledger))
	if _, err := r.Process(context.Background()); err != nil {
		t.Fatalf("process: %v", err)
	}

	events, err := ledger.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one ledger event, got %d", len(events))
	}
	if events[0].EventType != history.EventSynced || events[0].SubtitleCount != 1 {
		t.Fatalf("unexpected event: %+v", events[0])
	}
	if events[0].CorrelationID == "" {
		t.Fatal("ledger event missing correlation id")
	}
}

func TestProcessSkipsFileWithoutSubtitles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.LibraryDir, "lonely.mp4"), "video")

	exec := &fakeExecutor{}
	r := newRunner(t, cfg, exec)
	summary, err := r.Process(context.Background())
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if summary.Skipped != 1 || len(exec.calls) != 0 {
		t.Fatalf("file without subtitles must be skipped without a command: %+v", summary)
	}
}

func TestProcessHonorsCancellation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.LibraryDir, "movie.mp4"), "video")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRunner(t, cfg, &fakeExecutor{})
	if _, err := r.Process(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
