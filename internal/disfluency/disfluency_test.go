package disfluency

import (
	"math"
	"strings"
	"testing"

	"bestcut/internal/timeline"
	"bestcut/internal/transcript"
)

func word(text string, start, end float64) transcript.Word {
	return transcript.Word{Text: text, Start: start, End: end}
}

func TestDetectFillersVocal(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		w    transcript.Word
		cut  bool
	}{
		{"stretched euh", word("euh", 0, 0.3), true},
		{"heu variant", word("heuuu", 0, 0.4), true},
		{"hum", word("hum", 0, 0.2), true},
		{"mm", word("mmm", 0, 0.25), true},
		{"too long for a filler", word("euh", 0, 0.8), false},
		{"real word", word("europe", 0, 0.4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cuts := detectFillers([]transcript.Word{tt.w}, cfg)
			if got := len(cuts) == 1; got != tt.cut {
				t.Fatalf("cut = %v, want %v (cuts %v)", got, tt.cut, cuts)
			}
		})
	}
}

func TestDetectFillersBracketedNoise(t *testing.T) {
	cfg := DefaultConfig()
	words := []transcript.Word{
		word("[rire]", 0, 0.5),
		word("bonjour", 0.55, 1.1),
		word("[musique]", 1.2, 2.5),
	}
	cuts := detectFillers(words, cfg)
	if len(cuts) != 1 {
		t.Fatalf("expected only the short marker cut, got %v", cuts)
	}
	if cuts[0].Start != 0 || cuts[0].End != 0.5 {
		t.Fatalf("wrong span cut: %v", cuts[0])
	}
}

func TestDetectFillersImmediateRepeat(t *testing.T) {
	cfg := DefaultConfig()
	words := []transcript.Word{
		word("je", 0, 0.15),
		word("je", 0.2, 0.35),
		word("vais", 0.4, 0.7),
	}
	cuts := detectFillers(words, cfg)
	if len(cuts) != 1 {
		t.Fatalf("expected the earlier occurrence cut, got %v", cuts)
	}
	if cuts[0].Start != 0 || cuts[0].End != 0.15 {
		t.Fatalf("should cut the first je, got %v", cuts[0])
	}
}

func TestDetectFillersRepeatNeedsRepeatableWord(t *testing.T) {
	cfg := DefaultConfig()
	words := []transcript.Word{
		word("recrutement", 0, 0.6),
		word("recrutement", 0.65, 1.25),
	}
	if cuts := detectFillers(words, cfg); len(cuts) != 0 {
		t.Fatalf("content words repeated deliberately should survive, got %v", cuts)
	}
}

func TestDetectFillersFalseStart(t *testing.T) {
	cfg := DefaultConfig()
	words := []transcript.Word{
		word("je", 0, 0.2),
		word("bonjour", 0.6, 1.2),
	}
	cuts := detectFillers(words, cfg)
	if len(cuts) != 1 || cuts[0].End != 0.2 {
		t.Fatalf("short word before a pause should be cut, got %v", cuts)
	}

	// Same word without the pause is an ordinary function word.
	words = []transcript.Word{
		word("je", 0, 0.2),
		word("bonjour", 0.35, 0.9),
	}
	if cuts := detectFillers(words, cfg); len(cuts) != 0 {
		t.Fatalf("no pause means no false start, got %v", cuts)
	}
}

func TestDetectRestartsNearDuplicateWindow(t *testing.T) {
	cfg := DefaultConfig()
	words := []transcript.Word{
		word("on", 0, 0.2),
		word("va", 0.25, 0.4),
		word("parler", 0.45, 0.8),
		word("de", 0.85, 0.95),
		word("on", 1.2, 1.4),
		word("va", 1.45, 1.6),
		word("parler", 1.65, 2.0),
		word("de", 2.05, 2.15),
		word("recrutement", 2.2, 2.9),
	}
	cuts := detectRestarts(words, cfg)
	if len(cuts) != 1 {
		t.Fatalf("expected one restart cut, got %v", cuts)
	}
	if math.Abs(cuts[0].Start-0) > 1e-9 || math.Abs(cuts[0].End-1.2) > 1e-9 {
		t.Fatalf("cut should span the first attempt up to the retake start, got %v", cuts[0])
	}
}

func TestDetectRestartsRespectsMaxGap(t *testing.T) {
	cfg := DefaultConfig()
	words := []transcript.Word{
		word("on", 0, 0.2),
		word("va", 0.25, 0.4),
		word("parler", 0.45, 0.8),
		word("de", 0.85, 0.95),
		// Long silence: the repeat is a deliberate callback, not a restart.
		word("on", 3.0, 3.2),
		word("va", 3.25, 3.4),
		word("parler", 3.45, 3.8),
		word("de", 3.85, 3.95),
		word("recrutement", 4.0, 4.7),
	}
	if cuts := detectRestarts(words, cfg); len(cuts) != 0 {
		t.Fatalf("repeat beyond the gap bound should not cut, got %v", cuts)
	}
}

// A stuttered sentence where each word repeats once: the restart pass sees
// two windows with distinct text and stays quiet, while the repeat rule cuts
// each earlier occurrence, leaving one clean copy of the sentence.
func TestStutterRepeatsLeaveSingleWords(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RestartWindow = 2
	cfg.Repeatable = newWordSet("i", "went")

	words := []transcript.Word{
		word("I", 0, 0.2),
		word("I", 0.25, 0.45),
		word("went", 0.5, 0.9),
		word("went", 0.95, 1.35),
		word("there", 1.4, 1.8),
	}

	if cuts := detectRestarts(words, cfg); len(cuts) != 0 {
		t.Fatalf("windows with distinct text must not trigger a restart, got %v", cuts)
	}

	d := NewDetector(cfg, nil)
	cuts := d.Cuts(words)
	if len(cuts) != 2 {
		t.Fatalf("expected both earlier repeats cut, got %v", cuts)
	}

	var kept []string
	for _, w := range words {
		covered := false
		for _, c := range cuts {
			if w.Start >= c.Start && w.Start < c.End {
				covered = true
				break
			}
		}
		if !covered {
			kept = append(kept, w.Text)
		}
	}
	if got := strings.Join(kept, " "); got != "I went there" {
		t.Fatalf("remaining words = %q, want %q", got, "I went there")
	}
}

func TestApplyKeepsLastFluentPortion(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)
	candidates := timeline.List{{Start: 0, End: 5}, {Start: 6, End: 8}}
	words := []transcript.Word{
		word("bonjour", 0.2, 0.7),
		word("euh", 1.0, 1.3),
		word("on", 1.5, 1.65),
		word("commence", 1.7, 2.3),
	}

	out := d.Apply(candidates, words)
	if len(out) != 2 {
		t.Fatalf("expected both intervals kept, got %v", out)
	}
	if math.Abs(out[0].Start-1.3) > 1e-9 || math.Abs(out[0].End-5) > 1e-9 {
		t.Fatalf("first interval should restart after the filler, got %v", out[0])
	}
	if out[1].Start != 6 || out[1].End != 8 {
		t.Fatalf("interval without cuts should pass through, got %v", out[1])
	}
	if !out.CoveredBy(candidates) {
		t.Fatalf("output escapes input coverage: %v", out)
	}
}

func TestApplyDropsIntervalEndingInCut(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)
	candidates := timeline.List{{Start: 0, End: 1.0}}
	words := []transcript.Word{word("euh", 0.5, 1.0)}

	if out := d.Apply(candidates, words); len(out) != 0 {
		t.Fatalf("nothing fluent remains after the last cut, got %v", out)
	}
}

func TestApplyWithoutWordsPassesThrough(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)
	candidates := timeline.List{{Start: 0, End: 3}, {Start: 4, End: 6}}

	out := d.Apply(candidates, nil)
	if len(out) != 2 || out[0] != candidates[0] || out[1] != candidates[1] {
		t.Fatalf("empty transcript should leave intervals unchanged, got %v", out)
	}
}
