package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var sourceExtensions = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".mkv":  {},
	".webm": {},
}

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var posesFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Cut a recording down to its best takes and render the result",
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

			summary, err := p.Run(cmd.Context(), source)
			if err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, summaryToJSON(summary))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummary(summary))
			if summary.NothingToKeep() {
				fmt.Fprintln(out, "Nothing to keep; no output was rendered.")
				return nil
			}
			fmt.Fprintf(out, "Wrote %s\n", summary.Output)
			return nil
		},
	}

	cmd.Flags().StringVar(&posesFlag, "poses", "", "Head-pose sidecar JSON (default: <file>.poses.json when present)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the run summary as JSON")
	return cmd
}

func resolveSource(arg string) (string, error) {
	absPath, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file does not exist: %s", absPath)
		}
		return "", fmt.Errorf("inspect file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", absPath)
	}

	ext := strings.ToLower(filepath.Ext(info.Name()))
	if _, ok := sourceExtensions[ext]; !ok {
		return "", fmt.Errorf("unsupported file extension %q", ext)
	}
	return absPath, nil
}

// resolvePoses picks the pose sidecar: an explicit flag wins, otherwise the
// conventional <source>.poses.json is used when it exists.
func resolvePoses(source, flag string) string {
	if strings.TrimSpace(flag) != "" {
		return flag
	}
	candidate := source + ".poses.json"
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}
