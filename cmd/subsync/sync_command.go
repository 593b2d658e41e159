package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subsync/internal/preflight"
	"subsync/internal/runner"
	"subsync/internal/textutil"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var skipPreflight bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync every pending library file and record the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if !skipPreflight {
				results := preflight.RunAll(cfg)
				if !preflight.AllPassed(results) {
					var failures []string
					for _, result := range results {
						if !result.Passed {
							failures = append(failures, fmt.Sprintf("%s: %s", result.Name, result.Detail))
						}
					}
					return fmt.Errorf("preflight checks failed:\n  %s", strings.Join(failures, "\n  "))
				}
			}

			r, cleanup, err := ctx.newRunner()
			if err != nil {
				return err
			}
			defer cleanup()

			summary, err := r.Process(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, result := range summary.Results {
				switch result.Action {
				case runner.ActionSynced:
					fmt.Fprintf(out, "synced  %s (%d subtitles)\n", textutil.DisplayTitle(result.Path), result.SubtitleCount)
				case runner.ActionFailed:
					fmt.Fprintf(out, "failed  %s: %s\n", textutil.DisplayTitle(result.Path), result.Detail)
				}
			}
			fmt.Fprintf(out, "%d scanned, %d synced, %d skipped, %d failed\n",
				summary.Scanned, summary.Synced, summary.Skipped, summary.Failed)
			if summary.Failed > 0 {
				return fmt.Errorf("%d file(s) failed to sync", summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Run even when preflight checks fail")
	return cmd
}
