package timelog_test

import (
	"strings"
	"testing"
	"time"

	"timelog/internal/timelog"
)

func mustParseDay(t *testing.T, lines ...string) *timelog.Day {
	t.Helper()
	day, err := timelog.ParseDay(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	return day
}

func TestDayIsWeekday(t *testing.T) {
	for offset, want := range []bool{true, true, true, true, true, false, false} {
		day := timelog.NewDay(timelog.Date(2017, time.November, 20+offset))
		if got := day.IsWeekday(); got != want {
			t.Errorf("IsWeekday(%s) = %v, want %v", day.Date.Weekday(), got, want)
		}
	}
}

func TestDayRoundTrip(t *testing.T) {
	lines := []string{
		"2017/12/18 Mon | Work 06:31:00 07:00:00",
		"2017/12/18 Mon | Work 07:31:00 UNDEF",
		"2017/12/18 Mon | Vacation UNDEF UNDEF",
		"2017/12/18 Mon | ParentalLeave UNDEF UNDEF",
		"2017/12/18 Mon | Sickness UNDEF UNDEF",
	}
	day := mustParseDay(t, lines...)
	if len(day.Entries) != len(lines) {
		t.Fatalf("expected %d entries, got %d", len(lines), len(day.Entries))
	}
	if !day.Date.Equal(timelog.Date(2017, time.December, 18)) {
		t.Errorf("unexpected day date %v", day.Date)
	}
	if got, want := day.String(), strings.Join(lines, "\n"); got != want {
		t.Errorf("round trip mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseDayRejectsMixedDates(t *testing.T) {
	_, err := timelog.ParseDay("2017/12/18 Mon | Work UNDEF UNDEF\n2017/12/19 Tue | Work UNDEF UNDEF")
	if err == nil {
		t.Fatal("expected error for mixed dates")
	}
}

func TestDaySetStartFillsFirstOpenEntry(t *testing.T) {
	day := mustParseDay(t,
		"2017/12/18 Mon | Work UNDEF 07:00:00",
		"2017/12/18 Mon | Work 07:31:00 UNDEF",
		"2017/12/18 Mon | Work UNDEF UNDEF",
	)

	day.SetStart(timelog.ClockOf(6, 30, 0), timelog.KindWork)
	if day.Entries[0].Start != timelog.ClockOf(6, 30, 0) || day.Entries[0].End != timelog.ClockOf(7, 0, 0) {
		t.Errorf("unexpected first entry after SetStart: %s", day.Entries[0])
	}

	day.SetStart(timelog.ClockOf(12, 30, 0), timelog.KindWork)
	if day.Entries[2].Start != timelog.ClockOf(12, 30, 0) || day.Entries[2].End.IsSet() {
		t.Errorf("unexpected third entry after SetStart: %s", day.Entries[2])
	}

	day.SetEnd(timelog.ClockOf(12, 25, 0), timelog.KindWork)
	if day.Entries[1].Start != timelog.ClockOf(7, 31, 0) || day.Entries[1].End != timelog.ClockOf(12, 25, 0) {
		t.Errorf("unexpected second entry after SetEnd: %s", day.Entries[1])
	}

	day.SetEnd(timelog.ClockOf(19, 12, 0), timelog.KindWork)
	if day.Entries[2].Start != timelog.ClockOf(12, 30, 0) || day.Entries[2].End != timelog.ClockOf(19, 12, 0) {
		t.Errorf("unexpected third entry after second SetEnd: %s", day.Entries[2])
	}
}

func TestDaySetTimesKeepsKindsSeparate(t *testing.T) {
	day := mustParseDay(t,
		"2017/12/18 Mon | Work UNDEF 07:00:00",
		"2017/12/18 Mon | Sickness 07:31:00 UNDEF",
	)

	day.SetStart(timelog.ClockOf(6, 30, 0), timelog.KindWork)
	if day.Entries[0].Kind != timelog.KindWork || day.Entries[0].Start != timelog.ClockOf(6, 30, 0) {
		t.Errorf("unexpected first entry: %s", day.Entries[0])
	}

	day.SetStart(timelog.ClockOf(12, 30, 0), timelog.KindSickness)
	if day.Entries[2].Kind != timelog.KindSickness || day.Entries[2].End.IsSet() {
		t.Errorf("unexpected appended entry: %s", day.Entries[2])
	}

	day.SetEnd(timelog.ClockOf(12, 25, 0), timelog.KindSickness)
	if day.Entries[1].Kind != timelog.KindSickness || day.Entries[1].End != timelog.ClockOf(12, 25, 0) {
		t.Errorf("unexpected second entry: %s", day.Entries[1])
	}
}

func TestDayLogged(t *testing.T) {
	day := mustParseDay(t,
		"2017/12/19 Tue | Work 07:31:00 11:50:00",
		"2017/12/19 Tue | Work 12:34:00 18:15:00",
		"2017/12/19 Tue | Sickness 09:00:00 10:00:00",
	)
	want := 4*time.Hour + 19*time.Minute + 5*time.Hour + 41*time.Minute
	if got := day.Logged(timelog.KindWork); got != want {
		t.Errorf("Logged(Work) = %v, want %v", got, want)
	}
	if got := day.Logged(timelog.KindSickness); got != time.Hour {
		t.Errorf("Logged(Sickness) = %v, want 1h", got)
	}
}

func TestDayLoggedWith(t *testing.T) {
	day := mustParseDay(t,
		"2017/12/18 Mon | Work 06:31:00 07:00:00",
		"2017/12/18 Mon | Work 07:31:00 UNDEF",
	)
	got, err := day.LoggedWith(timelog.ClockOf(8, 31, 0), timelog.KindWork)
	if err != nil {
		t.Fatalf("LoggedWith failed: %v", err)
	}
	if want := 29*time.Minute + time.Hour; got != want {
		t.Errorf("LoggedWith = %v, want %v", got, want)
	}

	empty := timelog.NewDay(timelog.Date(2017, time.December, 18))
	if _, err := empty.LoggedWith(timelog.ClockOf(8, 0, 0), timelog.KindWork); err != timelog.ErrNoEntries {
		t.Errorf("LoggedWith on empty day = %v, want ErrNoEntries", err)
	}

	endOnly := mustParseDay(t, "2017/12/18 Mon | Work UNDEF 07:00:00")
	if _, err := endOnly.LoggedWith(timelog.ClockOf(8, 0, 0), timelog.KindWork); err != timelog.ErrNoStartedEntries {
		t.Errorf("LoggedWith without starts = %v, want ErrNoStartedEntries", err)
	}
}

func TestDayLoggable(t *testing.T) {
	perDay := 8 * time.Hour
	mon := timelog.NewDay(timelog.Date(2017, time.November, 20))
	sat := timelog.NewDay(timelog.Date(2017, time.November, 25))
	if got := mon.Loggable(perDay); got != perDay {
		t.Errorf("Loggable(mon) = %v, want %v", got, perDay)
	}
	if got := sat.Loggable(perDay); got != 0 {
		t.Errorf("Loggable(sat) = %v, want 0", got)
	}
}

func TestDayIncomplete(t *testing.T) {
	day := mustParseDay(t,
		"2017/12/18 Mon | Work 06:31:00 07:00:00",
		"2017/12/18 Mon | Work 07:31:00 UNDEF",
		"2017/12/18 Mon | Vacation UNDEF UNDEF",
	)
	incomplete := day.Incomplete()
	if len(incomplete) != 1 {
		t.Fatalf("expected 1 incomplete entry, got %d", len(incomplete))
	}
	if incomplete[0].Start != timelog.ClockOf(7, 31, 0) {
		t.Errorf("unexpected incomplete entry: %s", incomplete[0])
	}
}
