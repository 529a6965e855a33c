package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediajanitor/internal/fixdates"
)

func newFixDatesCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix-dates <root>",
		Short: "Reset file modification times from EXIF or filename dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			root := args[0]

			lock, err := ctx.acquireLock(root, dryRun)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			summary, runErr := fixdates.Run(cmd.Context(), fixdates.Options{
				Root:   root,
				DryRun: dryRun,
			}, logger)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scanned %d files: fixed %d, skipped %d, errors %d\n",
				summary.Scanned, summary.Fixed, summary.Skipped, summary.Errors)
			if dryRun {
				fmt.Fprintln(out, "Dry run: no timestamps were changed.")
			}
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would change without touching timestamps")
	return cmd
}
