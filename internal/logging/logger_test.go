package logging_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"langcache/internal/config"
	"langcache/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg, "")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello from test")

	content, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "langcache.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "hello from test") {
		t.Fatalf("expected message in log file, got %q", content)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerRendersComponentAndFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger = logging.NewComponentLogger(logger, "langbatch")
	logger.Warn("cache write failed",
		logging.String(logging.FieldTarget, "blog"),
		logging.String(logging.FieldPath, "/tmp/with space"),
		logging.Error(errors.New("disk full")))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	for _, fragment := range []string{"WARN", "langbatch: cache write failed", "target=blog", `path="/tmp/with space"`, `error="disk full"`} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("expected %q in %q", fragment, line)
		}
	}
}

func TestJSONLoggerIncludesRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")

	logger, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithRunID(context.Background(), "run-123")
	logging.WithContext(ctx, logger).Info("started")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(content, &record); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, content)
	}
	if record[logging.FieldRunID] != "run-123" {
		t.Fatalf("expected run_id in record, got %#v", record)
	}
	if record["level"] != "info" {
		t.Fatalf("expected lowercase level, got %#v", record["level"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("expected nop logger to be disabled")
	}
	logging.ErrorWithContext(logger, "ignored", "test_event")
}

func TestConsoleLoggerGroupsAndPresetAttrs(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "groups.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.With(logging.String(logging.FieldRunID, "r1")).
		WithGroup("mirror").
		Info("stored", logging.Int("keys", 2))
	logging.ErrorWithContext(logger, "run failed", "pipeline_failed", logging.Error(errors.New("boom")))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", content)
	}
	if !strings.Contains(lines[0], "run_id=r1 mirror.keys=2") {
		t.Fatalf("unexpected grouped line %q", lines[0])
	}
	for _, fragment := range []string{"ERROR", "error=boom", "event_type=pipeline_failed", "error_hint="} {
		if !strings.Contains(lines[1], fragment) {
			t.Fatalf("expected %q in %q", fragment, lines[1])
		}
	}
}
