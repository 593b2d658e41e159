package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subsync/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check directories, free space, and external binaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			colorize := stdoutIsTerminal()
			out := cmd.OutOrStdout()

			checks := preflight.RunAll(cfg)
			rows := make([][]string, 0, len(checks))
			for _, check := range checks {
				label := "FAIL"
				if check.Passed {
					label = "OK"
				}
				rows = append(rows, []string{
					check.Name,
					colorizeStatus(check.Passed, label, colorize),
					check.Detail,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			statuses := preflight.CheckSystemDeps(cfg)
			depRows := make([][]string, 0, len(statuses))
			failed := 0
			for _, status := range statuses {
				label := "MISSING"
				if status.Available {
					label = "OK"
				} else if !status.Optional {
					failed++
				}
				detail := status.Description
				if status.Detail != "" {
					detail = status.Detail
				}
				depRows = append(depRows, []string{
					status.Name,
					status.Command,
					colorizeStatus(status.Available, label, colorize),
					detail,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Dependency", "Command", "Status", "Detail"},
				depRows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))

			if !preflight.AllPassed(checks) || failed > 0 {
				return fmt.Errorf("environment not ready")
			}
			fmt.Fprintln(out, "Environment ready.")
			return nil
		},
	}
}
