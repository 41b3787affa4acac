package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var posesFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "plan <file>",
		Short: "Compute the keep plan for a recording without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := resolveSource(args[0])
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			p, err := ctx.buildPipeline(logger, resolvePoses(source, posesFlag))
			if err != nil {
				return err
			}

			summary, err := p.Plan(cmd.Context(), source)
			if err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, summaryToJSON(summary))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummary(summary))
			if summary.NothingToKeep() {
				fmt.Fprintln(out, "Nothing to keep.")
				return nil
			}
			fmt.Fprintln(out, "Planned keeps:")
			for _, iv := range summary.Keeps {
				fmt.Fprintf(out, "  %9.2fs - %9.2fs  (%.2fs)\n", iv.Start, iv.End, iv.Duration())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&posesFlag, "poses", "", "Head-pose sidecar JSON (default: <file>.poses.json when present)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the plan summary as JSON")
	return cmd
}
