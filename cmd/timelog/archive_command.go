package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"timelog/internal/logbook"
	"timelog/internal/logging"
	"timelog/internal/timelog"
)

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Move finished days into the archive database",
	}

	archiveCmd.AddCommand(newArchiveRunCommand(ctx))
	archiveCmd.AddCommand(newArchiveListCommand(ctx))
	archiveCmd.AddCommand(newArchiveStatsCommand(ctx))

	return archiveCmd
}

func newArchiveRunCommand(ctx *commandContext) *cobra.Command {
	var beforeFlag string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Archive fully ended days older than the cutoff",
		Long:  "Move every day before the cutoff date whose entries are all closed into the archive database and rewrite the logfile. The cutoff defaults to the first day of the current month.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cutoff := timelog.MonthStart(timelog.DateOf(time.Now()))
			if beforeFlag != "" {
				parsed, err := parseDateArg(beforeFlag)
				if err != nil {
					return err
				}
				cutoff = timelog.DateOf(parsed)
			}

			return ctx.withBook(func(book *logbook.Book) error {
				days := book.DaysBefore(cutoff)
				out := cmd.OutOrStdout()
				if len(days) == 0 {
					fmt.Fprintf(out, "Nothing to archive before %s\n", cutoff.Format("2006/01/02"))
					return nil
				}

				store, err := ctx.openArchive()
				if err != nil {
					return err
				}
				defer store.Close()

				run, err := store.ArchiveDays(cmd.Context(), cutoff, days)
				if err != nil {
					return fmt.Errorf("archive days: %w", err)
				}

				dates := make([]time.Time, len(days))
				for i, d := range days {
					dates[i] = d.Date
				}
				book.RemoveDays(dates)
				if err := book.Save(); err != nil {
					return fmt.Errorf("rewrite logfile after archiving: %w", err)
				}

				ctx.log().Info("archive run complete",
					logging.String("run", run.ID),
					logging.Int("days", run.Days),
					logging.Int("entries", run.Entries))
				fmt.Fprintf(out, "Archived %d days (%d entries) before %s\n",
					run.Days, run.Entries, cutoff.Format("2006/01/02"))
				fmt.Fprintf(out, "Run %s recorded in %s\n", run.ID, store.Path())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&beforeFlag, "before", "", "Cutoff date (YYYY/MM/DD, exclusive)")
	return cmd
}

func newArchiveListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent archive runs and archived days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openArchive()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()

			runs, err := store.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "Archive is empty")
				return nil
			}

			runRows := make([][]string, 0, len(runs))
			for _, run := range runs {
				runRows = append(runRows, []string{
					run.CreatedAt.Local().Format("2006-01-02 15:04"),
					run.Cutoff.Format("2006/01/02"),
					strconv.Itoa(run.Days),
					strconv.Itoa(run.Entries),
					run.ID,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Created", "Cutoff", "Days", "Entries", "Run"},
				runRows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))

			days, err := store.ListDays(cmd.Context(), limit)
			if err != nil {
				return err
			}
			dayRows := make([][]string, 0, len(days))
			for _, day := range days {
				dayRows = append(dayRows, []string{
					day.Date.Format("2006/01/02"),
					strconv.Itoa(day.Entries),
					fmtDur(day.Logged),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Date", "Entries", "Logged"},
				dayRows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum rows per table")
	return cmd
}

func newArchiveStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show archived time per year and kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openArchive()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(out, "Archive is empty")
				return nil
			}

			rows := make([][]string, 0, len(stats))
			for _, stat := range stats {
				rows = append(rows, []string{
					strconv.Itoa(stat.Year),
					stat.Kind.Label(),
					strconv.Itoa(stat.Entries),
					fmtDur(stat.Logged),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Year", "Kind", "Entries", "Logged"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
}
