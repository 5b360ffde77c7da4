package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timelog/internal/logbook"
	"timelog/internal/logging"
	"timelog/internal/timelog"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var weekdaysOnly bool

	cmd := &cobra.Command{
		Use:   "batch <kind> <from> <to>",
		Short: "Add entries for a range of days in one go",
		Long:  "Add an open entry of the given kind (Work, Sickness, Vacation, ParentalLeave) for every day from <from> to <to>, dates as YYYY/MM/DD.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := timelog.ParseKind(args[0])
			if err != nil {
				return err
			}
			from, err := parseDateArg(args[1])
			if err != nil {
				return err
			}
			to, err := parseDateArg(args[2])
			if err != nil {
				return err
			}
			if to.Before(from) {
				return fmt.Errorf("range is reversed: %s is before %s", args[2], args[1])
			}

			return ctx.withBook(func(book *logbook.Book) error {
				added := book.BatchAdd(kind, from, to, weekdaysOnly)
				if err := book.Save(); err != nil {
					return fmt.Errorf("save logfile: %w", err)
				}
				ctx.log().Info("batch added entries",
					logging.String("kind", kind.String()),
					logging.Int("entries", added))
				fmt.Fprintf(cmd.OutOrStdout(), "Added %d %s entries\n", added, kind.Label())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&weekdaysOnly, "weekdays-only", false, "Skip Saturdays and Sundays")
	return cmd
}
