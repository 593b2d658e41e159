package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"subsync/internal/config"
	"subsync/internal/dirinfo"
)

const recordSection = "subs_synced"

func newRecordCommand(ctx *commandContext) *cobra.Command {
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Inspect or clear per-directory sync records",
	}

	recordCmd.AddCommand(newRecordShowCommand(ctx))
	recordCmd.AddCommand(newRecordClearCommand(ctx))

	return recordCmd
}

func newRecordShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <directory>",
		Short: "Show the sync record stored in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			entries := dirinfo.Open(dir, logger).Section(recordSection)
			if len(entries) == 0 {
				fmt.Fprintf(out, "No sync record in %s\n", dir)
				return nil
			}

			keys := make([]string, 0, len(entries))
			for key := range entries {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				rows = append(rows, []string{key, strings.Join(entries[key], ", ")})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Video", "Synced Subtitles"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func newRecordClearCommand(ctx *commandContext) *cobra.Command {
	var videoName string

	cmd := &cobra.Command{
		Use:   "clear <directory>",
		Short: "Clear sync records so files are re-evaluated on the next scan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			info := dirinfo.Open(dir, logger)

			if videoName != "" {
				key := strings.ToLower(strings.TrimSpace(videoName))
				if !info.Delete(recordSection, key) {
					fmt.Fprintf(out, "No record for %s in %s\n", key, dir)
					return nil
				}
				if err := info.Save(); err != nil {
					return err
				}
				fmt.Fprintf(out, "Cleared record for %s\n", key)
				return nil
			}

			entries := info.Section(recordSection)
			if len(entries) == 0 {
				fmt.Fprintf(out, "No sync record in %s\n", dir)
				return nil
			}
			for key := range entries {
				info.Delete(recordSection, key)
			}
			if err := info.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out, "Cleared %d record(s) in %s\n", len(entries), dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&videoName, "video", "", "Clear only the record for this video file name")
	return cmd
}
