package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromSettingsCreatesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := NewFromSettings("json", "debug", dir)
	if err != nil {
		t.Fatalf("NewFromSettings: %v", err)
	}
	logger.Info("hello", String("key", "value"))

	data, err := os.ReadFile(filepath.Join(dir, "subsync.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("log file missing record: %s", data)
	}
}

func TestConsoleHandlerComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl))
	logger = NewComponentLogger(logger, "hooks")

	logger.Info("probing file", String(FieldPath, "/media/movie file.mp4"))

	line := buf.String()
	if !strings.Contains(line, "INFO hooks: probing file") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, `path="/media/movie file.mp4"`) {
		t.Fatalf("expected quoted path attr, got: %q", line)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)
	handler := newConsoleHandler(&buf, lvl)
	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug should be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("error should be enabled at warn level")
	}
}

func TestParseLevelDefaults(t *testing.T) {
	if got := parseLevel("nonsense"); got != slog.LevelInfo {
		t.Fatalf("parseLevel(nonsense) = %v, want info", got)
	}
	if got := parseLevel("DEBUG"); got != slog.LevelDebug {
		t.Fatalf("parseLevel(DEBUG) = %v, want debug", got)
	}
}
