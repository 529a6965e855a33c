package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediajanitor/internal/dedupe"
)

func newDedupeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "dedupe <root>",
		Short: "Remove files with identical content, keeping the copy with the shortest path",
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

			summary, runErr := dedupe.Run(cmd.Context(), dedupe.Options{
				Root:   root,
				DryRun: dryRun,
			}, logger)

			out := cmd.OutOrStdout()
			if len(summary.Groups) > 0 {
				rows := make([][]string, 0, len(summary.Groups))
				for _, group := range summary.Groups {
					rows = append(rows, []string{
						group.Kept,
						fmt.Sprint(len(group.Duplicates)),
						dedupe.FormatSize(group.Size),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Kept", "Copies", "Size"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight},
				))
			}
			fmt.Fprintf(out, "Scanned %d files, removed %d duplicates, reclaimed %s\n",
				summary.Scanned, summary.Removed, dedupe.FormatSize(summary.BytesReclaimed))
			if dryRun {
				fmt.Fprintln(out, "Dry run: no files were deleted.")
			}
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report duplicates without deleting anything")
	return cmd
}
