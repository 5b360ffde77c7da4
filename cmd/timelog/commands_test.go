package main

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"timelog/internal/testsupport"
	"timelog/internal/timelog"
)

func TestStartEndAndDayCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"start", "08:00"}, env.configPath)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	requireContains(t, out, "Logged: starting Work at 08:00:00")

	out, _, err = runCLI(t, []string{"end", "16:02"}, env.configPath)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	requireContains(t, out, "Logged: ending Work at 16:02:00")

	today := timelog.DateOf(time.Now())
	requireContains(t, readLogfile(t, env),
		fmt.Sprintf("%s | Work 08:00:00 16:02:00", today.Format("2006/01/02 Mon")))

	out, _, err = runCLI(t, []string{"day"}, env.configPath)
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	requireContains(t, out, "8;02 worked today")
}

func TestDayCommandFailsWithoutEntries(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"day"}, env.configPath); err == nil {
		t.Fatal("expected error for empty logbook")
	}
}

// seedCurrentWeek fills Monday through Friday of the current week with
// one full 08:00-16:00 day each.
func seedCurrentWeek(t *testing.T, env *cliTestEnv) {
	t.Helper()
	monday := timelog.WeekStart(timelog.DateOf(time.Now()))
	lines := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		date := monday.AddDate(0, 0, i)
		lines = append(lines, date.Format("2006/01/02 Mon")+" | Work 08:00:00 16:00:00")
	}
	testsupport.WriteLogbook(t, env.cfg, lines...)
}

func TestWeekCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCurrentWeek(t, env)

	out, _, err := runCLI(t, []string{"week"}, env.configPath)
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	requireContains(t, out, "40;00 worked this week")
	requireContains(t, out, "0;00 left this week (0;00 of which is flex)")
}

func TestMonthCommandReportsTotals(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCurrentWeek(t, env)

	out, _, err := runCLI(t, []string{"month"}, env.configPath)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	requireContains(t, out, "worked this month")
	requireContains(t, out, "left this month")
}

func TestRootCommandPrintsMonthSummary(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCurrentWeek(t, env)

	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "this month")
	requireContains(t, out, "left of")
}

func TestDayCommandWeekdayFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCurrentWeek(t, env)

	out, _, err := runCLI(t, []string{"day", "--mon"}, env.configPath)
	if err != nil {
		t.Fatalf("day --mon: %v", err)
	}
	requireContains(t, out, "8;00 worked last monday")
}

func TestViewCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteLogbook(t, env.cfg,
		"2017/12/18 Mon | Work 06:31:00 07:00:00",
		"2017/12/19 Tue | Work 07:31:00 11:50:00",
		"2017/12/20 Wed | Work 09:10:00 11:55:00",
	)

	out, _, err := runCLI(t, []string{"view", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	requireContains(t, out, "2017/12/19 Tue")
	requireContains(t, out, "2017/12/20 Wed")
	if strings.Contains(out, "2017/12/18") {
		t.Errorf("view 2 should not include the oldest day:\n%s", out)
	}

	out, _, err = runCLI(t, []string{"view"}, env.configPath)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	requireContains(t, out, "2017/12/19 Tue")
}

func TestBatchCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t,
		[]string{"batch", "Vacation", "2018/01/01", "2018/01/07", "--weekdays-only"},
		env.configPath)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	requireContains(t, out, "Added 5 Vacation entries")

	content := readLogfile(t, env)
	requireContains(t, content, "2018/01/01 Mon | Vacation UNDEF UNDEF")
	requireContains(t, content, "2018/01/05 Fri | Vacation UNDEF UNDEF")
	if strings.Contains(content, "2018/01/06") {
		t.Errorf("weekend day logged despite --weekdays-only:\n%s", content)
	}

	if _, _, err := runCLI(t, []string{"batch", "Work", "2018/01/07", "2018/01/01"}, env.configPath); err == nil {
		t.Error("expected error for reversed range")
	}
	if _, _, err := runCLI(t, []string{"batch", "Overtime", "2018/01/01", "2018/01/02"}, env.configPath); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestArchiveCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteLogbook(t, env.cfg,
		"2017/12/18 Mon | Work 08:00:00 16:00:00",
		"2017/12/19 Tue | Work 08:00:00 12:00:00",
		"2017/12/20 Wed | Work 09:00:00 UNDEF",
	)

	out, _, err := runCLI(t, []string{"archive", "run", "--before", "2018/01/01"}, env.configPath)
	if err != nil {
		t.Fatalf("archive run: %v", err)
	}
	requireContains(t, out, "Archived 2 days (2 entries) before 2018/01/01")

	// The open day stays in the logfile, the archived ones are gone.
	content := readLogfile(t, env)
	requireContains(t, content, "2017/12/20 Wed | Work 09:00:00 UNDEF")
	if strings.Contains(content, "2017/12/18") {
		t.Errorf("archived day still present in logfile:\n%s", content)
	}

	out, _, err = runCLI(t, []string{"archive", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("archive list: %v", err)
	}
	requireContains(t, out, "2017/12/18")
	requireContains(t, out, "2017/12/19")

	out, _, err = runCLI(t, []string{"archive", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("archive stats: %v", err)
	}
	requireContains(t, out, "2017")
	requireContains(t, out, "Work")
	requireContains(t, out, "12;00")

	out, _, err = runCLI(t, []string{"archive", "run", "--before", "2018/01/01"}, env.configPath)
	if err != nil {
		t.Fatalf("archive run: %v", err)
	}
	requireContains(t, out, "Nothing to archive")
}

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteLogbook(t, env.cfg,
		"2017/12/18 Mon | Work 08:00:00 16:00:00",
	)

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "== Paths ==")
	requireContains(t, out, "== Logbook ==")
	requireContains(t, out, "== Archive ==")
	requireContains(t, out, "== Environment ==")
	requireContains(t, out, "Days:")
}
