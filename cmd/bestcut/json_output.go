package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"bestcut/internal/pipeline"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type stageJSON struct {
	Name          string  `json:"name"`
	IntervalsIn   int     `json:"intervals_in"`
	IntervalsOut  int     `json:"intervals_out"`
	KeptSeconds   float64 `json:"kept_seconds"`
	ElapsedMillis int64   `json:"elapsed_ms"`
}

type keepJSON struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type summaryJSON struct {
	RunID         string      `json:"run_id"`
	Source        string      `json:"source"`
	Output        string      `json:"output,omitempty"`
	SourceSeconds float64     `json:"source_seconds"`
	KeptSeconds   float64     `json:"kept_seconds"`
	Rendered      bool        `json:"rendered"`
	Stages        []stageJSON `json:"stages"`
	Keeps         []keepJSON  `json:"keeps"`
}

func summaryToJSON(s *pipeline.Summary) summaryJSON {
	out := summaryJSON{
		RunID:         s.RunID,
		Source:        s.Source,
		Output:        s.Output,
		SourceSeconds: s.SourceDuration,
		KeptSeconds:   s.KeptSeconds(),
		Rendered:      s.Rendered,
		Stages:        make([]stageJSON, 0, len(s.Stages)),
		Keeps:         make([]keepJSON, 0, len(s.Keeps)),
	}
	for _, st := range s.Stages {
		out.Stages = append(out.Stages, stageJSON{
			Name:          st.Name,
			IntervalsIn:   st.In,
			IntervalsOut:  st.Out,
			KeptSeconds:   st.KeptSeconds,
			ElapsedMillis: st.Elapsed.Milliseconds(),
		})
	}
	for _, iv := range s.Keeps {
		out.Keeps = append(out.Keeps, keepJSON{Start: iv.Start, End: iv.End})
	}
	return out
}
