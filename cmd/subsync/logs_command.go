package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"subsync/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var follow bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the structured log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.Paths.LogDir, "subsync.log")
			out := cmd.OutOrStdout()

			if follow {
				err := logs.Follow(cmd.Context(), path, out, limit)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

			lines, err := logs.Tail(path, limit)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				fmt.Fprintln(out, "No log output yet.")
				return nil
			}
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "lines", "n", 50, "Number of lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new log lines")
	return cmd
}
