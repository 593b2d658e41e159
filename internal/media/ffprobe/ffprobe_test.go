package ffprobe

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video"},
			{CodecType: "audio"},
			{CodecType: "audio"},
		},
		Format: Format{Duration: "123.45"},
	}
	if result.VideoStreamCount() != 1 {
		t.Fatalf("expected 1 video stream, got %d", result.VideoStreamCount())
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
}

func TestDurationSecondsHandlesInvalidInput(t *testing.T) {
	for _, value := range []string{"", "bad", "-5"} {
		result := Result{Format: Format{Duration: value}}
		if got := result.DurationSeconds(); got != 0 {
			t.Fatalf("DurationSeconds(%q) = %v, want 0", value, got)
		}
	}
}

func TestResultDecodesFFprobePayload(t *testing.T) {
	payload := `{
		"streams": [
			{"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1920, "height": 1080},
			{"index": 1, "codec_name": "aac", "codec_type": "audio", "channels": 2}
		],
		"format": {"filename": "movie.mp4", "nb_streams": 2, "duration": "5400.5", "format_name": "mov,mp4,m4a"}
	}`
	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.VideoStreamCount() != 1 {
		t.Fatalf("expected 1 video stream, got %d", result.VideoStreamCount())
	}
	if result.DurationSeconds() != 5400.5 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if result.Streams[0].Width != 1920 {
		t.Fatalf("unexpected width: %d", result.Streams[0].Width)
	}
}

// stubFFprobe writes a script that prints the given payload and exits 0.
func stubFFprobe(t *testing.T, payload string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ffprobe")
	script := "#!/bin/sh\ncat <<'EOF'\n" + payload + "\nEOF\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProbeFileRequiresVideoStream(t *testing.T) {
	payload := `{"streams": [{"index": 0, "codec_type": "audio"}], "format": {"duration": "60"}}`
	probe := Probe{Binary: stubFFprobe(t, payload), RequireVideo: true}
	if _, err := probe.File(context.Background(), "/media/movie.mp4"); err == nil {
		t.Fatal("expected error for audio-only container")
	}

	probe.RequireVideo = false
	result, err := probe.File(context.Background(), "/media/movie.mp4")
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if result.DurationSeconds() != 60 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
}

func TestProbeFileRejectsEmptyPath(t *testing.T) {
	if _, err := (Probe{}).File(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
