package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timelog/internal/logbook"
	"timelog/internal/logging"
	"timelog/internal/timelog"
)

func newStartCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "start [time]",
		Short: "Log the start of a work period",
		Long:  "Log the start of a work period. The time defaults to now; pass HH:MM, HH.MM, or a bare hour to override.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := getClock(argOrEmpty(args))
			if err != nil {
				return err
			}

			return ctx.withBook(func(book *logbook.Book) error {
				entry := book.LogStart(timelog.DateOf(time.Now()), at)
				if err := book.Save(); err != nil {
					return fmt.Errorf("save logfile: %w", err)
				}
				ctx.log().Info("logged start",
					logging.String("date", entry.Date.Format("2006/01/02")),
					logging.String("start", entry.Start.String()))
				fmt.Fprintf(cmd.OutOrStdout(), "Logged: starting %s at %s\n", entry.Kind.Label(), entry.Start)
				return nil
			})
		},
	}
}

func newEndCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "end [time]",
		Short: "Log the end of a work period",
		Long:  "Log the end of a work period. The time defaults to now; pass HH:MM, HH.MM, or a bare hour to override.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := getClock(argOrEmpty(args))
			if err != nil {
				return err
			}

			return ctx.withBook(func(book *logbook.Book) error {
				entry := book.LogEnd(timelog.DateOf(time.Now()), at)
				if err := book.Save(); err != nil {
					return fmt.Errorf("save logfile: %w", err)
				}
				ctx.log().Info("logged end",
					logging.String("date", entry.Date.Format("2006/01/02")),
					logging.String("end", entry.End.String()))
				fmt.Fprintf(cmd.OutOrStdout(), "Logged: ending %s at %s\n", entry.Kind.Label(), entry.End)
				return nil
			})
		},
	}
}

func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
