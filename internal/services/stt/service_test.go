package stt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"bestcut/internal/services"
)

const alignedJSON = `{
  "segments": [
    {
      "start": 0.1, "end": 1.4, "text": "bonjour tout le monde",
      "words": [
        {"word": "bonjour", "start": 0.1, "end": 0.5},
        {"word": "tout", "start": 0.6, "end": 0.8},
        {"word": "le", "start": 0.85, "end": 0.95},
        {"word": "monde", "start": 1.0, "end": 1.4}
      ]
    }
  ]
}`

func TestTranscribeLoadsAlignedSegments(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "take.wav")
	if err := os.WriteFile(source, []byte("wav"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewService(DefaultConfig(), nil)
	var gotArgs []string
	s.WithRunner(func(_ context.Context, name string, args ...string) error {
		if name != UVXCommand {
			t.Fatalf("command = %q", name)
		}
		gotArgs = args
		// Simulate WhisperX writing its JSON sidecar.
		return os.WriteFile(JSONPath(source, dir), []byte(alignedJSON), 0o644)
	})

	segments, err := s.Transcribe(context.Background(), source, dir)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if len(segments) != 1 || len(segments[0].Words) != 4 {
		t.Fatalf("unexpected segments: %+v", segments)
	}
	if segments[0].Words[0].Text != "bonjour" {
		t.Fatalf("first word = %q", segments[0].Words[0].Text)
	}

	for _, want := range []string{"whisperx", source, "--language", "fr", "--output_format"} {
		if !slices.Contains(gotArgs, want) {
			t.Fatalf("args missing %q: %v", want, gotArgs)
		}
	}
}

func TestTranscribeRequiresSource(t *testing.T) {
	s := NewService(DefaultConfig(), nil)
	if _, err := s.Transcribe(context.Background(), "  ", ""); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTranscribePropagatesToolFailure(t *testing.T) {
	s := NewService(DefaultConfig(), nil)
	s.WithRunner(func(context.Context, string, ...string) error {
		return services.Wrap(services.ErrExternalTool, "stt", "run", "boom", nil)
	})
	if _, err := s.Transcribe(context.Background(), "take.wav", t.TempDir()); !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}

func TestJSONPath(t *testing.T) {
	got := JSONPath("/work/take.wav", "/out")
	if got != filepath.Join("/out", "take.json") {
		t.Fatalf("JSONPath = %q", got)
	}
}
