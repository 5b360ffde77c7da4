package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timelog/internal/logbook"
	"timelog/internal/timelog"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "timelog",
		Short:         "Track working hours from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonthSummary(ctx, cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newStartCommand(ctx))
	rootCmd.AddCommand(newEndCommand(ctx))
	rootCmd.AddCommand(newDayCommand(ctx))
	rootCmd.AddCommand(newWeekCommand(ctx))
	rootCmd.AddCommand(newMonthCommand(ctx))
	rootCmd.AddCommand(newViewCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newArchiveCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))

	return rootCmd
}

// runMonthSummary is the bare `timelog` invocation: a one-line overview
// of the current month.
func runMonthSummary(ctx *commandContext, cmd *cobra.Command) error {
	return ctx.withBook(func(book *logbook.Book) error {
		now := time.Now()
		today := timelog.DateOf(now)

		left, _, err := book.TimeLeftInMonthOfWith(today, timelog.ClockFromTime(now))
		if err != nil {
			return fmt.Errorf("calculate time left this month: %w", err)
		}
		loggable := book.LoggableBetween(timelog.MonthStart(today), timelog.MonthEnd(today))
		fmt.Fprintf(cmd.OutOrStdout(), "%s left of %s this month\n",
			fmtDur(left), fmtDur(loggable))
		return nil
	})
}
