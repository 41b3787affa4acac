package pipeline

import (
	"time"

	"bestcut/internal/timeline"
)

// StageReport records one stage's effect on the interval list.
type StageReport struct {
	Name        string
	In          int
	Out         int
	KeptSeconds float64
	Elapsed     time.Duration
}

// Summary describes a completed (or short-circuited) run.
type Summary struct {
	RunID          string
	Source         string
	Output         string
	SourceDuration float64
	Keeps          timeline.List
	Stages         []StageReport
	Rendered       bool
	Elapsed        time.Duration
}

// KeptSeconds returns the total kept duration of the final edit.
func (s *Summary) KeptSeconds() float64 {
	return s.Keeps.TotalDuration()
}

// NothingToKeep reports whether the run ended with an empty edit.
func (s *Summary) NothingToKeep() bool {
	return len(s.Keeps) == 0
}
