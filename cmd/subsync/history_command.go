package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"subsync/internal/history"
	"subsync/internal/textutil"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sync events from the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			events, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "Ledger is empty.")
				return nil
			}

			rows := make([][]string, 0, len(events))
			for _, event := range events {
				rows = append(rows, []string{
					event.CreatedAt.Local().Format(time.DateTime),
					event.EventType,
					textutil.DisplayTitle(event.Path),
					strconv.Itoa(event.SubtitleCount),
					event.Detail,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "Event", "Title", "Subs", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum events to show (0 for all)")

	historyCmd.AddCommand(newHistoryStatsCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func newHistoryStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show event counts by type",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, eventType := range []string{history.EventSynced, history.EventSkipped, history.EventFailed} {
				fmt.Fprintf(out, "%-8s %d\n", eventType, stats[eventType])
			}
			return nil
		},
	}
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all events from the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d event(s)\n", removed)
			return nil
		},
	}
}
