package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"bestcut/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that required external tools are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.Defaults(cfg.FFmpegBinary(), cfg.FFprobeBinary()))

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Tool", "Command", "Available", "Notes"})
			for _, status := range statuses {
				notes := status.Description
				if status.Detail != "" {
					notes = status.Detail
				}
				tw.AppendRow(table.Row{status.Name, status.Command, yesNo(status.Available), notes})
			}
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required tools: %v", missing)
			}
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
