package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"timelog/internal/logbook"
)

func newViewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "view [days]",
		Short: "Show the most recently logged days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 2
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("invalid day count %q", args[0])
				}
				count = parsed
			}

			return ctx.withBook(func(book *logbook.Book) error {
				days := book.LatestDays(count)
				out := cmd.OutOrStdout()
				if len(days) == 0 {
					fmt.Fprintln(out, "No entries logged yet")
					return nil
				}

				rows := make([][]string, 0, len(days))
				for _, d := range days {
					for _, e := range d.Entries {
						rows = append(rows, []string{
							e.Date.Format("2006/01/02 Mon"),
							e.Kind.Label(),
							e.Start.String(),
							e.End.String(),
							fmtDur(e.Logged()),
						})
					}
				}

				fmt.Fprintln(out, renderTable(
					[]string{"Date", "Kind", "Start", "End", "Logged"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}
