package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
}

func TestCheckBinariesUnconfiguredCommand(t *testing.T) {
	results := CheckBinaries([]Requirement{{Name: "Blank", Command: "  "}})
	if results[0].Available {
		t.Fatal("blank command should be unavailable")
	}
	if results[0].Detail != "command not configured" {
		t.Fatalf("detail = %q", results[0].Detail)
	}
}

func TestMissingRequiredIgnoresOptional(t *testing.T) {
	statuses := []Status{
		{Name: "FFmpeg", Available: false},
		{Name: "uvx", Available: false, Optional: true},
		{Name: "FFprobe", Available: true},
	}
	missing := MissingRequired(statuses)
	if len(missing) != 1 || missing[0] != "FFmpeg" {
		t.Fatalf("missing = %v", missing)
	}
}

func TestDefaultsCoverPipelineTools(t *testing.T) {
	reqs := Defaults("ffmpeg", "ffprobe")
	names := make(map[string]Requirement, len(reqs))
	for _, r := range reqs {
		names[r.Name] = r
	}
	if _, ok := names["FFmpeg"]; !ok {
		t.Fatal("FFmpeg requirement missing")
	}
	if _, ok := names["FFprobe"]; !ok {
		t.Fatal("FFprobe requirement missing")
	}
	if req := names["uvx"]; !req.Optional {
		t.Fatal("uvx should be optional")
	}
}
