package gaze

import (
	"context"
	"errors"
	"math"
	"testing"

	"bestcut/internal/timeline"
)

type poseFunc func(t float64) Sample

func (f poseFunc) PoseAt(_ context.Context, t float64) (Sample, error) {
	return f(t), nil
}

func frontal(t float64) Sample {
	return Sample{At: t, Yaw: 2, Pitch: -3, FaceFound: true}
}

func reading(t float64) Sample {
	return Sample{At: t, Yaw: 5, Pitch: -60, FaceFound: true}
}

func TestRefineKeepsSteadyGaze(t *testing.T) {
	f := NewFilter(poseFunc(frontal), DefaultConfig(), nil)
	out, err := f.Refine(context.Background(), timeline.List{{Start: 0, End: 5}})
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 sub-interval, got %v", out)
	}
	if out[0].Start > 0.3 || out[0].End < 4.7 {
		t.Fatalf("expected near-full coverage, got %v", out[0])
	}
}

func TestRefineSplitsOnReadingStretch(t *testing.T) {
	source := poseFunc(func(t float64) Sample {
		if t >= 4 && t < 7 {
			return reading(t)
		}
		return frontal(t)
	})
	f := NewFilter(source, DefaultConfig(), nil)
	out, err := f.Refine(context.Background(), timeline.List{{Start: 0, End: 10}})
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 sub-intervals around the reading stretch, got %v", out)
	}
	if out[0].End > 4.1 {
		t.Fatalf("first sub-interval should close before the reading stretch, got %v", out[0])
	}
	if out[1].Start < 6.9 {
		t.Fatalf("second sub-interval should open after the reading stretch, got %v", out[1])
	}
	if !out.CoveredBy(timeline.List{{Start: 0, End: 10}}) {
		t.Fatalf("output escapes candidate interval: %v", out)
	}
}

func TestRefineNoFaceIsEmpty(t *testing.T) {
	source := poseFunc(func(t float64) Sample {
		return Sample{At: t, FaceFound: false}
	})
	f := NewFilter(source, DefaultConfig(), nil)
	out, err := f.Refine(context.Background(), timeline.List{{Start: 0, End: 5}})
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected nothing kept without a face, got %v", out)
	}
}

func TestRefineRejectsRapidHeadMoves(t *testing.T) {
	flip := false
	source := poseFunc(func(t float64) Sample {
		flip = !flip
		yaw := 30.0
		if flip {
			yaw = -30.0
		}
		return Sample{At: t, Yaw: yaw, Pitch: 0, FaceFound: true}
	})
	f := NewFilter(source, DefaultConfig(), nil)
	out, err := f.Refine(context.Background(), timeline.List{{Start: 0, End: 5}})
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected cooldown to suppress flickering gaze, got %v", out)
	}
}

func TestRefineEmptyInput(t *testing.T) {
	f := NewFilter(poseFunc(frontal), DefaultConfig(), nil)
	out, err := f.Refine(context.Background(), nil)
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
}

func TestRefineHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := NewFilter(poseFunc(frontal), DefaultConfig(), nil)
	if _, err := f.Refine(ctx, timeline.List{{Start: 0, End: 100}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMachineEntryGuardPushesStartPastBadRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EntryGuard = 0.5
	cfg.EntryMaxBadFrames = 1
	cfg.MinStable = 0.2
	cfg.MaxInvalidGap = 0.3
	cfg.ExitGuard = 0

	m := newMachine(cfg, timeline.Interval{Start: 0, End: 3})
	// Three bad samples at the head exceed the tolerance; the run restarts
	// at the first good sample after them.
	script := []struct {
		t     float64
		valid bool
	}{
		{0.0, false}, {0.1, false}, {0.2, false},
		{0.3, true}, {0.4, true}, {0.5, true},
		{1.0, true}, {2.0, true}, {3.0, true},
	}
	for _, s := range script {
		m.observe(s.t, s.valid)
	}
	out := m.finish()
	if len(out) != 1 {
		t.Fatalf("expected 1 sub-interval, got %v", out)
	}
	if math.Abs(out[0].Start-0.3) > 1e-9 {
		t.Fatalf("expected start pushed to 0.3, got %v", out[0].Start)
	}
}

func TestMachineClosesOnInvalidGap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EntryGuard = 0
	cfg.MinStable = 0.2
	cfg.MaxInvalidGap = 0.25
	cfg.ExitGuard = 0

	m := newMachine(cfg, timeline.Interval{Start: 0, End: 5})
	script := []struct {
		t     float64
		valid bool
	}{
		{0.0, true}, {0.2, true}, {0.4, true},
		{0.6, false}, {0.8, false},
		{1.0, true}, {1.2, true}, {1.4, true},
	}
	for _, s := range script {
		m.observe(s.t, s.valid)
	}
	out := m.finish()
	if len(out) != 2 {
		t.Fatalf("expected close and reopen, got %v", out)
	}
	if math.Abs(out[0].End-0.4) > 1e-9 {
		t.Fatalf("first sub-interval should end at the last valid sample, got %v", out[0])
	}
	if math.Abs(out[1].Start-1.0) > 1e-9 {
		t.Fatalf("second sub-interval should reopen at 1.0, got %v", out[1])
	}
}

func TestMachineExitGuardToleratesFlicker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EntryGuard = 0
	cfg.MinStable = 0.2
	cfg.ExitGuard = 1.0
	cfg.ExitMaxBadFrames = 2

	m := newMachine(cfg, timeline.Interval{Start: 0, End: 4})
	for i := 0; i <= 15; i++ {
		m.observe(float64(i)/5, true)
	}
	// Two bad samples inside the exit window stay within tolerance.
	m.observe(3.2, false)
	m.observe(3.4, true)
	m.observe(3.6, false)
	m.observe(3.8, true)
	out := m.finish()
	if len(out) != 1 {
		t.Fatalf("expected a single sub-interval, got %v", out)
	}
	if math.Abs(out[0].End-4.0) > 1e-9 {
		t.Fatalf("tolerated flicker should keep the interval end, got %v", out[0])
	}
}

func TestMachineExitGuardTrimsExcessFlicker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EntryGuard = 0
	cfg.MinStable = 0.2
	cfg.ExitGuard = 1.0
	cfg.ExitMaxBadFrames = 1

	m := newMachine(cfg, timeline.Interval{Start: 0, End: 4})
	for i := 0; i <= 15; i++ {
		m.observe(float64(i)/5, true)
	}
	m.observe(3.2, false)
	m.observe(3.4, false)
	m.observe(3.6, false)
	out := m.finish()
	if len(out) != 1 {
		t.Fatalf("expected a single sub-interval, got %v", out)
	}
	if math.Abs(out[0].End-3.0) > 1e-9 {
		t.Fatalf("excess flicker should trim the end back to 3.0, got %v", out[0])
	}
}

func TestScorerCooldownSuppressesValidity(t *testing.T) {
	cfg := DefaultConfig()
	sc := newScorer(cfg)

	if _, valid := sc.observe(Sample{At: 0, Yaw: 0, Pitch: 0, FaceFound: true}); !valid {
		t.Fatal("frontal pose should be valid")
	}
	// 90 degrees in a quarter second is far over the speed limit.
	if _, valid := sc.observe(Sample{At: 0.25, Yaw: 90, Pitch: 0, FaceFound: true}); valid {
		t.Fatal("speed violation should be invalid")
	}
	// Still inside the cooldown window even with a calm pose.
	if _, valid := sc.observe(Sample{At: 0.5, Yaw: 0, Pitch: 0, FaceFound: true}); valid {
		t.Fatal("cooldown should suppress validity")
	}
}

func TestScorerAngleBounds(t *testing.T) {
	cfg := DefaultConfig()
	sc := newScorer(cfg)
	score, valid := sc.observe(Sample{At: 0, Yaw: 0, Pitch: 0, FaceFound: true})
	if !valid || score < 0.99 {
		t.Fatalf("frontal pose should score near 1, got %v valid=%v", score, valid)
	}

	sc = newScorer(cfg)
	_, valid = sc.observe(Sample{At: 0, Yaw: 0, Pitch: -80, FaceFound: true})
	if valid {
		t.Fatal("looking far down should be invalid")
	}
}

func TestStateString(t *testing.T) {
	states := map[machineState]string{
		stateEntryGuard:      "entry_guard",
		stateStablePending:   "stable_pending",
		stateStableConfirmed: "stable_confirmed",
		stateExitGuard:       "exit_guard",
	}
	for state, want := range states {
		if got := state.String(); got != want {
			t.Fatalf("state %d = %q, want %q", state, got, want)
		}
	}
}
