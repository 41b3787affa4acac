package ffmpeg

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"bestcut/internal/services"
	"bestcut/internal/timeline"
)

func TestExtractMonoWAVArgs(t *testing.T) {
	s := NewService("", nil)
	var got []string
	s.WithRunner(func(_ context.Context, name string, args ...string) error {
		if name != Command {
			t.Fatalf("binary = %q", name)
		}
		got = args
		return nil
	})

	if err := s.ExtractMonoWAV(context.Background(), "take.mp4", 1, "out.wav"); err != nil {
		t.Fatalf("ExtractMonoWAV: %v", err)
	}
	for _, want := range [][]string{
		{"-map", "0:1"},
		{"-ac", "1"},
		{"-ar", "16000"},
		{"-c:a", "pcm_s16le"},
	} {
		if !containsPair(got, want[0], want[1]) {
			t.Fatalf("args missing %v: %v", want, got)
		}
	}
	if got[len(got)-1] != "out.wav" {
		t.Fatalf("dest should be the final argument: %v", got)
	}
}

func TestExtractMonoWAVRejectsBadIndex(t *testing.T) {
	s := NewService("", nil)
	err := s.ExtractMonoWAV(context.Background(), "take.mp4", -1, "out.wav")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRenderRejectsEmptyKeeps(t *testing.T) {
	s := NewService("", nil)
	err := s.Render(context.Background(), "take.mp4", nil, DefaultRenderOptions(), "out.mp4")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuildFilterComplex(t *testing.T) {
	keeps := timeline.List{{Start: 0, End: 2}, {Start: 3, End: 4.5}}
	got := buildFilterComplex(keeps, RenderOptions{Width: 1080, Height: 1920})
	want := "[0:v]trim=start=0.000:end=2.000,setpts=PTS-STARTPTS[v0];" +
		"[0:a]atrim=start=0.000:end=2.000,asetpts=PTS-STARTPTS[a0];" +
		"[0:v]trim=start=3.000:end=4.500,setpts=PTS-STARTPTS[v1];" +
		"[0:a]atrim=start=3.000:end=4.500,asetpts=PTS-STARTPTS[a1];" +
		"[v0][a0][v1][a1]concat=n=2:v=1:a=1[vcat][acat];" +
		"[vcat]scale=1080:1920,format=yuv420p[vout]"
	if got != want {
		t.Fatalf("filter graph mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestBuildFilterComplexToneMaps(t *testing.T) {
	keeps := timeline.List{{Start: 0, End: 1}}
	got := buildFilterComplex(keeps, RenderOptions{Width: 1080, Height: 1920, ToneMapSDR: true})
	if !strings.Contains(got, "tonemap=tonemap=hable") {
		t.Fatalf("expected tone-mapping chain, got %s", got)
	}
	if !strings.Contains(got, "scale=1080:1920") {
		t.Fatalf("scaling should follow tone mapping, got %s", got)
	}
}

func TestRenderFallsBackToSoftwareEncoder(t *testing.T) {
	s := NewService("", nil)
	var renderArgs []string
	s.WithRunner(func(_ context.Context, _ string, args ...string) error {
		if slices.Contains(args, "testsrc=size=128x128:rate=1") {
			// NVENC probe fails on this machine.
			return errors.New("no nvenc")
		}
		renderArgs = args
		return nil
	})

	keeps := timeline.List{{Start: 0, End: 1}}
	if err := s.Render(context.Background(), "take.mp4", keeps, DefaultRenderOptions(), "out.mp4"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !containsPair(renderArgs, "-c:v", "libx264") {
		t.Fatalf("expected software encoder fallback, got %v", renderArgs)
	}
}

func containsPair(args []string, flag, value string) bool {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}
