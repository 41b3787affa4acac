package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"bestcut/internal/pipeline"
)

func renderSummary(s *pipeline.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Stage", "In", "Out", "Kept", "Elapsed"})
	for _, st := range s.Stages {
		tw.AppendRow(table.Row{
			st.Name,
			st.In,
			st.Out,
			formatSeconds(st.KeptSeconds),
			st.Elapsed.Round(time.Millisecond),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	var b strings.Builder
	b.WriteString(tw.Render())
	b.WriteString("\n")
	kept := s.KeptSeconds()
	if s.SourceDuration > 0 {
		fmt.Fprintf(&b, "Kept %s of %s (%.0f%%)",
			formatSeconds(kept), formatSeconds(s.SourceDuration), 100*kept/s.SourceDuration)
	} else {
		fmt.Fprintf(&b, "Kept %s", formatSeconds(kept))
	}
	return b.String()
}

func formatSeconds(v float64) string {
	return fmt.Sprintf("%.1fs", v)
}
