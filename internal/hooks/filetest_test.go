package hooks_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"subsync/internal/dirinfo"
	"subsync/internal/hooks"
	"subsync/internal/logging"
	"subsync/internal/media/ffprobe"
	"subsync/internal/testsupport"
)

type stubProber struct {
	result ffprobe.Result
	err    error
}

func (s stubProber) File(ctx context.Context, path string) (ffprobe.Result, error) {
	return s.result, s.err
}

func newTestRunner(t *testing.T, prober hooks.Prober) *hooks.Runner {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	if prober == nil {
		prober = stubProber{result: ffprobe.Result{Format: ffprobe.Format{Duration: "3600"}}}
	}
	return hooks.New(cfg, logging.NewNop(), prober)
}

func TestFileTestIgnoresOtherExtensions(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mkv")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.srt"), "subs")

	req := hooks.FileTestRequest{
		Path:          path,
		Issues:        []string{"prior issue"},
		PriorityScore: 7,
		SharedInfo:    map[string]any{"origin": "scanner"},
	}
	got := runner.FileTest(context.Background(), req)

	if got.AddFileToPendingTasks {
		t.Fatal("non-container extension must not be queued")
	}
	if got.PriorityScore != 7 || len(got.Issues) != 1 || got.SharedInfo["origin"] != "scanner" {
		t.Fatalf("bookkeeping fields did not round-trip: %+v", got)
	}
}

func TestFileTestQueuesWhenNoRecord(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.srt"), "subs")

	got := runner.FileTest(context.Background(), hooks.FileTestRequest{Path: path})
	if !got.AddFileToPendingTasks {
		t.Fatal("expected file to be queued with no prior record")
	}
}

func TestFileTestSkipsWhenRecordMatches(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.srt"), "subs")

	info := dirinfo.Open(dir, logging.NewNop())
	info.SetStringSlice("subs_synced", "movie.mp4", []string{"movie.srt"})
	if err := info.Save(); err != nil {
		t.Fatal(err)
	}

	got := runner.FileTest(context.Background(), hooks.FileTestRequest{Path: path})
	if got.AddFileToPendingTasks {
		t.Fatal("matching record must not queue the file again")
	}
}

func TestFileTestQueuesOnSubtitleDrift(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.srt"), "subs")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.en.srt"), "subs")

	info := dirinfo.Open(dir, logging.NewNop())
	info.SetStringSlice("subs_synced", "movie.mp4", []string{"movie.srt"})
	if err := info.Save(); err != nil {
		t.Fatal(err)
	}

	got := runner.FileTest(context.Background(), hooks.FileTestRequest{Path: path})
	if !got.AddFileToPendingTasks {
		t.Fatal("a subtitle added after the last sync must invalidate the record")
	}
}

func TestFileTestNoSubtitlesNoRecordNotQueued(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	testsupport.WriteFile(t, path, "video")

	got := runner.FileTest(context.Background(), hooks.FileTestRequest{Path: path})
	if got.AddFileToPendingTasks {
		t.Fatal("empty record and empty directory are equal sets; nothing to sync")
	}
}

func TestFileTestFoldsCaseOnExtensions(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "Movie.MP4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(dir, "Movie.SRT"), "subs")

	got := runner.FileTest(context.Background(), hooks.FileTestRequest{Path: path})
	if !got.AddFileToPendingTasks {
		t.Fatal("uppercase container and subtitle extensions must be recognized")
	}
}

func TestFileTestSurvivesCorruptSidecar(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.srt"), "subs")
	testsupport.WriteFile(t, filepath.Join(dir, dirinfo.FileName), "{broken")

	got := runner.FileTest(context.Background(), hooks.FileTestRequest{Path: path})
	if !got.AddFileToPendingTasks {
		t.Fatal("corrupt record must be treated as no prior record")
	}
}

func TestFileTestMissingDirectoryNotQueued(t *testing.T) {
	runner := newTestRunner(t, nil)
	path := filepath.Join(t.TempDir(), "gone", "movie.mp4")

	// Both the record and the listing degrade to empty; equal sets, no queue,
	// and critically no panic or error escapes.
	got := runner.FileTest(context.Background(), hooks.FileTestRequest{Path: path})
	if got.AddFileToPendingTasks {
		t.Fatal("unlistable directory must not queue the file")
	}
}

var errProbe = errors.New("probe exploded")
