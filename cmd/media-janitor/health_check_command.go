package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediajanitor/internal/config"
	"mediajanitor/internal/dedupe"
	"mediajanitor/internal/healthcheck"
)

func newHealthCheckCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var noInteractive bool
	var showThresholds bool

	cmd := &cobra.Command{
		Use:   "health-check [root]",
		Short: "Flag zero-byte, undersized, low-resolution, and corrupted media",
		Long: `Health-check compares every media file against minimum size and resolution
expectations for its capture era. With a terminal attached each flagged file
is reviewed before deletion; otherwise every flagged file is deleted unless
--dry-run is set. --thresholds prints the era tables and exits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if showThresholds {
				fmt.Fprintln(out, "Photo eras:")
				fmt.Fprintln(out, renderEraTable(cfg.Health.PhotoEras))
				fmt.Fprintln(out, "Video eras:")
				fmt.Fprintln(out, renderEraTable(cfg.Health.VideoEras))
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("health-check requires a root directory unless --thresholds is given")
			}

			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			root := args[0]

			// Without a terminal every flagged file is deleted, as if the
			// operator had confirmed each one.
			var prompter healthcheck.Prompter = healthcheck.AutoConfirm{}
			if !noInteractive && stdinIsTerminal() {
				prompter = &healthcheck.ConsolePrompter{
					In:   cmd.InOrStdin(),
					Out:  out,
					Open: ctx.openViewer(),
				}
			}

			lock, err := ctx.acquireLock(root, dryRun)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			report, runErr := healthcheck.Run(cmd.Context(), healthcheck.Options{
				Root:   root,
				Health: cfg.Health,
				DryRun: dryRun,
			}, prompter, logger)

			if len(report.Issues) > 0 {
				rows := make([][]string, 0, len(report.Issues))
				for _, issue := range report.Issues {
					rows = append(rows, []string{
						issue.Path,
						issue.Kind.String(),
						issue.Detail,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"File", "Issue", "Detail"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
			}
			fmt.Fprintf(out, "Scanned %d files: %d flagged, %d deleted, %d errors\n",
				report.Scanned, len(report.Issues), report.Deleted, report.Errors)
			if dryRun {
				fmt.Fprintln(out, "Dry run: no files were deleted.")
			}
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Review issues without deleting anything")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Delete every flagged file without prompting")
	cmd.Flags().BoolVar(&showThresholds, "thresholds", false, "Print the era threshold tables and exit")
	return cmd
}

func renderEraTable(eras []config.Era) string {
	rows := make([][]string, 0, len(eras))
	for _, era := range eras {
		maxYear := "open"
		if era.MaxYear != 0 {
			maxYear = fmt.Sprint(era.MaxYear)
		}
		rows = append(rows, []string{
			era.Label,
			maxYear,
			dedupe.FormatSize(era.MinBytes),
			fmt.Sprintf("%dx%d", era.MinWidth, era.MinHeight),
		})
	}
	return renderTable(
		[]string{"Era", "Up to", "Min size", "Min resolution"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	)
}
