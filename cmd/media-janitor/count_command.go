package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediajanitor/internal/count"
)

func newCountCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "count <root>",
		Short: "Show per-folder media counts as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			stats, err := count.Scan(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			count.Render(out, root, stats)

			total := stats[root]
			fmt.Fprintf(out, "\nTotal: %d photos, %d videos, %d other\n",
				total.Photos, total.Videos, total.Other)
			return nil
		},
	}
}
