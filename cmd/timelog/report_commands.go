package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timelog/internal/logbook"
	"timelog/internal/timelog"
)

type dayFlags struct {
	last bool
	mon  bool
	tue  bool
	wed  bool
	thu  bool
	fri  bool
	with string
}

func (f *dayFlags) target(today time.Time) (time.Time, string) {
	weekday := today.Weekday()
	label := "today"

	switch {
	case f.mon:
		weekday, label = time.Monday, "last monday"
	case f.tue:
		weekday, label = time.Tuesday, "last tuesday"
	case f.wed:
		weekday, label = time.Wednesday, "last wednesday"
	case f.thu:
		weekday, label = time.Thursday, "last thursday"
	case f.fri:
		weekday, label = time.Friday, "last friday"
	case f.last:
		weekday, label = today.AddDate(0, 0, -1).Weekday(), "yesterday"
	}

	date := today
	for date.Weekday() != weekday {
		date = date.AddDate(0, 0, -1)
	}
	return date, label
}

func (f *dayFlags) isToday() bool {
	return !(f.last || f.mon || f.tue || f.wed || f.thu || f.fri)
}

func newDayCommand(ctx *commandContext) *cobra.Command {
	flags := &dayFlags{}

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show time worked on a single day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := timelog.DateOf(time.Now())
			date, label := flags.target(today)

			// An assumed end time only makes sense for the running day.
			var with timelog.Clock
			if flags.isToday() {
				clock, err := getClock(flags.with)
				if err != nil {
					return err
				}
				with = clock
			}

			return ctx.withBook(func(book *logbook.Book) error {
				worked, err := book.LoggedAtWith(date, with)
				if err != nil {
					return fmt.Errorf("calculate time worked %s: %w", label, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s worked %s\n", fmtDur(worked), label)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&flags.last, "last", false, "Report yesterday instead of today")
	cmd.Flags().BoolVar(&flags.mon, "mon", false, "Report the most recent Monday")
	cmd.Flags().BoolVar(&flags.tue, "tue", false, "Report the most recent Tuesday")
	cmd.Flags().BoolVar(&flags.wed, "wed", false, "Report the most recent Wednesday")
	cmd.Flags().BoolVar(&flags.thu, "thu", false, "Report the most recent Thursday")
	cmd.Flags().BoolVar(&flags.fri, "fri", false, "Report the most recent Friday")
	cmd.Flags().StringVar(&flags.with, "with", "", "Assume the open entry ends at this time (today only)")
	return cmd
}

func newWeekCommand(ctx *commandContext) *cobra.Command {
	var last bool
	var withFlag string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show time worked and time left in a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := timelog.DateOf(time.Now())
			label := "this"
			if last {
				date = date.AddDate(0, 0, -7)
				label = "last"
			}

			var with timelog.Clock
			if !last {
				clock, err := getClock(withFlag)
				if err != nil {
					return err
				}
				with = clock
			}

			return ctx.withBook(func(book *logbook.Book) error {
				out := cmd.OutOrStdout()
				if last {
					for _, e := range book.VerifyWeekOf(date) {
						fmt.Fprintf(out, "Incomplete entry: %s\n", e.String())
					}
				}

				left, flex, err := book.TimeLeftInWeekOfWith(date, with)
				if err != nil {
					return fmt.Errorf("calculate time left %s week: %w", label, err)
				}
				worked, err := book.LoggedInWeekOfWith(date, with)
				if err != nil {
					return fmt.Errorf("calculate time worked %s week: %w", label, err)
				}

				fmt.Fprintf(out, "%s worked %s week\n", fmtDur(worked), label)
				fmt.Fprintf(out, "%s left %s week (%s of which is flex)\n", fmtDur(left), label, fmtDur(flex))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&last, "last", false, "Report last week instead of the current one")
	cmd.Flags().StringVar(&withFlag, "with", "", "Assume the open entry ends at this time")
	return cmd
}

func newMonthCommand(ctx *commandContext) *cobra.Command {
	var last bool
	var withFlag string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show time worked and time left in a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := timelog.DateOf(time.Now())
			date := today
			label := "this"
			if last {
				date = timelog.MonthStart(today).AddDate(0, 0, -1)
				label = "last"
			}

			var with timelog.Clock
			if !last {
				clock, err := getClock(withFlag)
				if err != nil {
					return err
				}
				with = clock
			}

			return ctx.withBook(func(book *logbook.Book) error {
				out := cmd.OutOrStdout()
				if last {
					for _, e := range book.VerifyMonthOf(date) {
						fmt.Fprintf(out, "Incomplete entry: %s\n", e.String())
					}
				}

				left, _, err := book.TimeLeftInMonthOfWith(date, with)
				if err != nil {
					return fmt.Errorf("calculate time left %s month: %w", label, err)
				}
				worked, err := book.LoggedInMonthOfWith(date, with)
				if err != nil {
					return fmt.Errorf("calculate time worked %s month: %w", label, err)
				}

				fmt.Fprintf(out, "%s worked %s month\n", fmtDur(worked), label)
				fmt.Fprintf(out, "%s left %s month\n", fmtDur(left), label)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&last, "last", false, "Report last month instead of the current one")
	cmd.Flags().StringVar(&withFlag, "with", "", "Assume the open entry ends at this time")
	return cmd
}
