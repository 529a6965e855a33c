package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mediajanitor/internal/assigndate"
	"mediajanitor/internal/mediadate"
)

func newAssignDateCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "assign-date <source> <date>",
		Short: "Stamp a chosen date onto a media file or every media file under a directory",
		Long: `Assign-date sets file modification times to an operator-chosen moment.
The date accepts YYYY, YYYY-MM, YYYY-MM-DD, YYYY-MM-DD HH:MM, or
YYYY-MM-DD HH:MM:SS; missing components default to the middle of the
period, so a bare year lands on July 1st at noon.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			path := args[0]
			date, err := mediadate.ParseFlexible(args[1])
			if err != nil {
				return err
			}

			// The lock lives in a directory; for a single-file target that
			// is the file's parent.
			lockRoot := path
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				lockRoot = filepath.Dir(path)
			}
			lock, err := ctx.acquireLock(lockRoot, dryRun)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			summary, runErr := assigndate.Run(cmd.Context(), assigndate.Options{
				Path:   path,
				Date:   date,
				DryRun: dryRun,
			}, logger)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Assigned %d, skipped %d, errors %d\n",
				summary.Assigned, summary.Skipped, summary.Errors)
			if dryRun {
				fmt.Fprintln(out, "Dry run: no timestamps were changed.")
			}
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would change without touching timestamps")
	return cmd
}
