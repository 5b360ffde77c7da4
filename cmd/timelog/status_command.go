package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"timelog/internal/preflight"
	"timelog/internal/timelog"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show paths, logbook totals, and environment checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			section := func(title string) {
				for _, line := range renderSectionHeader(title, colorize) {
					fmt.Fprintln(out, line)
				}
			}

			section("Paths")
			fmt.Fprintln(out, renderStatusLine("Logfile", statusInfo, cfg.Paths.LogFile, colorize))
			fmt.Fprintln(out, renderStatusLine("Data directory", statusInfo, cfg.Paths.DataDir, colorize))
			fmt.Fprintln(out, renderStatusLine("Log directory", statusInfo, cfg.Paths.LogDir, colorize))
			fmt.Fprintln(out, renderStatusLine("Workday", statusInfo, fmt.Sprintf("%d hours", cfg.Workday.HoursPerDay), colorize))

			section("Logbook")
			book, err := ctx.openBook()
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Logbook", statusError, err.Error(), colorize))
			} else {
				days := book.Days()
				entries := 0
				for _, d := range days {
					entries += len(d.Entries)
				}
				fmt.Fprintln(out, renderStatusLine("Days", statusOK, strconv.Itoa(len(days)), colorize))
				fmt.Fprintln(out, renderStatusLine("Entries", statusOK, strconv.Itoa(entries), colorize))
				if len(days) > 0 {
					span := fmt.Sprintf("%s to %s",
						days[0].Date.Format("2006/01/02"),
						days[len(days)-1].Date.Format("2006/01/02"))
					fmt.Fprintln(out, renderStatusLine("Span", statusInfo, span, colorize))
				}
				today := timelog.DateOf(time.Now())
				if incomplete := book.VerifyMonthOf(today); len(incomplete) > 0 {
					fmt.Fprintln(out, renderStatusLine("Incomplete", statusWarn,
						fmt.Sprintf("%d open entries this month", len(incomplete)), colorize))
				}
			}

			section("Archive")
			if _, statErr := os.Stat(cfg.ArchiveDBPath()); statErr != nil {
				fmt.Fprintln(out, renderStatusLine("Database", statusInfo, "not created yet", colorize))
			} else if store, openErr := ctx.openArchive(); openErr != nil {
				fmt.Fprintln(out, renderStatusLine("Database", statusError, openErr.Error(), colorize))
			} else {
				runs, runsErr := store.Runs(cmd.Context(), 1)
				store.Close()
				switch {
				case runsErr != nil:
					fmt.Fprintln(out, renderStatusLine("Database", statusError, runsErr.Error(), colorize))
				case len(runs) == 0:
					fmt.Fprintln(out, renderStatusLine("Database", statusOK, "empty", colorize))
				default:
					last := runs[0]
					fmt.Fprintln(out, renderStatusLine("Last run", statusOK,
						fmt.Sprintf("%s (%d days)", last.CreatedAt.Local().Format("2006-01-02 15:04"), last.Days), colorize))
				}
			}

			section("Environment")
			for _, result := range preflight.RunAll(cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			return nil
		},
	}
}
