package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"mediajanitor/internal/flatten"
)

func newFlattenCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "flatten <source> [target]",
		Short: "Collapse a nested tree into a single directory, keeping the largest of same-named files",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			source := args[0]
			target := filepath.Join(source, "flattened")
			if len(args) == 2 {
				target = args[1]
			}

			lock, err := ctx.acquireLock(source, dryRun)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			summary, runErr := flatten.Run(cmd.Context(), flatten.Options{
				Source: source,
				Target: target,
				DryRun: dryRun,
			}, logger)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Moved %d, replaced %d, dropped %d, errors %d\n",
				summary.Moved, summary.Replaced, summary.Dropped, summary.Errors)
			if dryRun {
				fmt.Fprintln(out, "Dry run: no files were moved.")
			}
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would happen without moving anything")
	return cmd
}
