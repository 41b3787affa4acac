package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"bestcut/internal/services"
)

func TestNewConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger = NewComponentLogger(logger, "vad")
	logger.Info("segmentation complete", Int("segments", 3))

	line := buf.String()
	if !strings.Contains(line, "[vad]") {
		t.Fatalf("expected component tag in %q", line)
	}
	if !strings.Contains(line, "segments=3") {
		t.Fatalf("expected attr in %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsRunAndStage(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := services.WithRunID(context.Background(), "run-123")
	ctx = services.WithStage(ctx, "gaze")
	WithContext(ctx, logger).Info("stage started")

	line := buf.String()
	if !strings.Contains(line, `"run_id":"run-123"`) {
		t.Fatalf("expected run id in %q", line)
	}
	if !strings.Contains(line, `"stage":"gaze"`) {
		t.Fatalf("expected stage in %q", line)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Info("should not panic")
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("no-op logger should report disabled")
	}
}
