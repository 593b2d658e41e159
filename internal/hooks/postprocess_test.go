package hooks_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"subsync/internal/dirinfo"
	"subsync/internal/hooks"
	"subsync/internal/logging"
	"subsync/internal/testsupport"
)

func TestPostProcessSkipsOnTaskFailure(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.srt"), "subs")

	res := runner.PostProcess(context.Background(), hooks.PostProcessResult{
		TaskProcessingSuccess: false,
		DestinationFiles:      []string{path},
	})
	if res.TaskProcessingSuccess {
		t.Fatal("success flag must round-trip")
	}
	if _, err := os.Stat(filepath.Join(dir, dirinfo.FileName)); !os.IsNotExist(err) {
		t.Fatal("failed task must not write a sync record")
	}
}

func TestPostProcessRecordsSyncedSubtitles(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.srt"), "subs")

	runner.PostProcess(context.Background(), hooks.PostProcessResult{
		TaskProcessingSuccess: true,
		DestinationFiles:      []string{path},
	})

	info := dirinfo.Open(dir, logging.NewNop())
	values, err := info.GetStringSlice("subs_synced", "movie.mp4")
	if err != nil {
		t.Fatalf("record missing: %v", err)
	}
	if len(values) != 1 || values[0] != "movie.srt" {
		t.Fatalf("unexpected record %v", values)
	}

	// The inclusion test must now consider the file synced.
	req := runner.FileTest(context.Background(), hooks.FileTestRequest{Path: path})
	if req.AddFileToPendingTasks {
		t.Fatal("file should be excluded after recording")
	}
}

func TestPostProcessIdempotent(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.en.srt"), "subs")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.fr.srt"), "subs")

	res := hooks.PostProcessResult{TaskProcessingSuccess: true, DestinationFiles: []string{path}}
	runner.PostProcess(context.Background(), res)
	first, err := os.ReadFile(filepath.Join(dir, dirinfo.FileName))
	if err != nil {
		t.Fatal(err)
	}

	runner.PostProcess(context.Background(), res)
	second, err := os.ReadFile(filepath.Join(dir, dirinfo.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Fatalf("record changed across identical runs:\n%s\n---\n%s", first, second)
	}
}

func TestPostProcessRecordsPerDestination(t *testing.T) {
	runner := newTestRunner(t, nil)
	dirA := t.TempDir()
	dirB := t.TempDir()
	pathA := filepath.Join(dirA, "alpha.mp4")
	pathB := filepath.Join(dirB, "beta.mp4")
	testsupport.WriteFile(t, pathA, "video")
	testsupport.WriteFile(t, filepath.Join(dirA, "alpha.srt"), "subs")
	testsupport.WriteFile(t, pathB, "video")
	testsupport.WriteFile(t, filepath.Join(dirB, "beta.en.srt"), "subs")

	runner.PostProcess(context.Background(), hooks.PostProcessResult{
		TaskProcessingSuccess: true,
		DestinationFiles:      []string{pathA, pathB},
	})

	if values, err := dirinfo.Open(dirA, logging.NewNop()).GetStringSlice("subs_synced", "alpha.mp4"); err != nil || len(values) != 1 {
		t.Fatalf("dirA record: %v %v", values, err)
	}
	if values, err := dirinfo.Open(dirB, logging.NewNop()).GetStringSlice("subs_synced", "beta.mp4"); err != nil || len(values) != 1 {
		t.Fatalf("dirB record: %v %v", values, err)
	}
}

func TestPostProcessFoldsCaseOnExtensions(t *testing.T) {
	runner := newTestRunner(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	testsupport.WriteFile(t, path, "video")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.SRT"), "subs")

	runner.PostProcess(context.Background(), hooks.PostProcessResult{
		TaskProcessingSuccess: true,
		DestinationFiles:      []string{path},
	})

	values, err := dirinfo.Open(dir, logging.NewNop()).GetStringSlice("subs_synced", "movie.mp4")
	if err != nil {
		t.Fatalf("record missing: %v", err)
	}
	if len(values) != 1 || values[0] != "movie.SRT" {
		t.Fatalf("recorder must fold extension case when listing: %v", values)
	}
}
