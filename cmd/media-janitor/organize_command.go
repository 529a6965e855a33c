package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediajanitor/internal/organize"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var noInteractive bool

	cmd := &cobra.Command{
		Use:   "organize <source> <photo-dest> <video-dest>",
		Short: "Sort loose folders into year/month buckets",
		Long: `Organize sweeps the immediate subdirectories of <source>, dates each one by
the media inside it, and files it under <photo-dest> or <video-dest> as
YYYY/MM/<folder-name>. With a terminal attached each folder is confirmed
interactively; otherwise every folder is accepted as proposed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			source, photoDest, videoDest := args[0], args[1], args[2]

			lock, err := ctx.acquireLock(source, dryRun)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			var decider organize.Decider
			if !noInteractive && stdinIsTerminal() {
				decider = &organize.ConsoleDecider{
					In:   cmd.InOrStdin(),
					Out:  cmd.OutOrStdout(),
					Open: ctx.openViewer(),
				}
			}

			org := organize.New(organize.Config{
				Source:    source,
				PhotoDest: photoDest,
				VideoDest: videoDest,
				DryRun:    dryRun,
			}, decider, logger)

			report, runErr := org.Run(cmd.Context())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(
				[]string{"Result", "Count"},
				[][]string{
					{"Folders moved", fmt.Sprint(report.FoldersMoved)},
					{"Folders ungrouped", fmt.Sprint(report.FoldersUngrouped)},
					{"Folders skipped", fmt.Sprint(report.FoldersSkipped)},
					{"Files moved", fmt.Sprint(report.FilesMoved)},
					{"Collisions", fmt.Sprint(report.Collisions)},
					{"Errors", fmt.Sprint(report.Errors)},
					{"Empty dirs removed", fmt.Sprint(report.EmptyDirsRemoved)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			if dryRun {
				fmt.Fprintln(out, "Dry run: no files were moved.")
			}
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would happen without moving anything")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Accept every folder without prompting")
	return cmd
}
