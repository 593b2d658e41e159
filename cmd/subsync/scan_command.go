package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"subsync/internal/runner"
	"subsync/internal/textutil"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Report which library files need a subtitle sync (no commands run)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cleanup, err := ctx.newRunner()
			if err != nil {
				return err
			}
			defer cleanup()

			summary, err := r.Scan(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if summary.Scanned == 0 {
				fmt.Fprintln(out, "No container files found in the library.")
				return nil
			}

			rows := make([][]string, 0, len(summary.Results))
			for _, result := range summary.Results {
				if result.Action != runner.ActionPending {
					continue
				}
				rows = append(rows, []string{
					textutil.DisplayTitle(result.Path),
					filepath.Dir(result.Path),
				})
			}
			if len(rows) > 0 {
				fmt.Fprintln(out, renderTable(
					[]string{"Title", "Directory"},
					rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
			}
			fmt.Fprintf(out, "%d scanned, %d pending, %d up to date\n",
				summary.Scanned, summary.Pending, summary.Skipped)
			return nil
		},
	}
}
