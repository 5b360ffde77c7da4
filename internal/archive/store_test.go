package archive_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"timelog/internal/archive"
	"timelog/internal/timelog"
)

func openStore(t *testing.T) *archive.Store {
	t.Helper()
	store, err := archive.OpenPath(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func parseDay(t *testing.T, block string) *timelog.Day {
	t.Helper()
	d, err := timelog.ParseDay(block)
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	return d
}

func TestArchiveDaysRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	days := []*timelog.Day{
		parseDay(t, "2017/12/18 Mon | Work 08:00:00 16:00:00"),
		parseDay(t, "2017/12/19 Tue | Work 08:00:00 12:00:00\n2017/12/19 Tue | Work 13:00:00 17:00:00"),
		parseDay(t, "2017/12/20 Wed | Vacation UNDEF UNDEF"),
	}
	cutoff := timelog.Date(2018, time.January, 1)

	run, err := store.ArchiveDays(ctx, cutoff, days)
	if err != nil {
		t.Fatalf("ArchiveDays failed: %v", err)
	}
	if run.Days != 3 || run.Entries != 4 {
		t.Errorf("run = %d days %d entries, want 3 and 4", run.Days, run.Entries)
	}
	if !run.Cutoff.Equal(cutoff) {
		t.Errorf("cutoff = %v, want %v", run.Cutoff, cutoff)
	}

	runs, err := store.Runs(ctx, 5)
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID {
		t.Fatalf("runs = %+v, want the stored run", runs)
	}

	listed, err := store.ListDays(ctx, 10)
	if err != nil {
		t.Fatalf("ListDays failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("listed %d days, want 3", len(listed))
	}
	// Newest first.
	if !listed[0].Date.Equal(timelog.Date(2017, time.December, 20)) {
		t.Errorf("first listed date = %v", listed[0].Date)
	}
	if listed[2].Logged != 8*time.Hour {
		t.Errorf("monday logged = %v, want 8h", listed[2].Logged)
	}
	if listed[1].Entries != 2 {
		t.Errorf("tuesday entries = %d, want 2", listed[1].Entries)
	}
}

func TestArchiveDaysIsTransactional(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	days := []*timelog.Day{
		parseDay(t, "2017/12/18 Mon | Work 08:00:00 16:00:00"),
		parseDay(t, "2017/12/19 Tue | Work 08:00:00 UNDEF"),
	}
	if _, err := store.ArchiveDays(ctx, timelog.Date(2018, time.January, 1), days); err == nil {
		t.Fatal("expected error for incomplete entry")
	}

	listed, err := store.ListDays(ctx, 10)
	if err != nil {
		t.Fatalf("ListDays failed: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("partial archive left %d days behind", len(listed))
	}
}

func TestArchiveDaysRejectsEmptyInput(t *testing.T) {
	store := openStore(t)
	if _, err := store.ArchiveDays(context.Background(), timelog.Date(2018, time.January, 1), nil); err == nil {
		t.Error("expected error for empty archive")
	}
}

func TestStatsGroupsByYearAndKind(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	days := []*timelog.Day{
		parseDay(t, "2017/12/18 Mon | Work 08:00:00 16:00:00"),
		parseDay(t, "2017/12/20 Wed | Vacation UNDEF UNDEF"),
		parseDay(t, "2018/01/02 Tue | Work 08:00:00 12:00:00"),
	}
	if _, err := store.ArchiveDays(ctx, timelog.Date(2018, time.February, 1), days); err != nil {
		t.Fatalf("ArchiveDays failed: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("stats = %+v, want 3 groups", stats)
	}
	if stats[0].Year != 2017 || stats[0].Kind != timelog.KindVacation {
		t.Errorf("first group = %+v, want 2017 Vacation", stats[0])
	}
	if stats[1].Year != 2017 || stats[1].Kind != timelog.KindWork || stats[1].Logged != 8*time.Hour {
		t.Errorf("second group = %+v, want 2017 Work 8h", stats[1])
	}
	if stats[2].Year != 2018 || stats[2].Logged != 4*time.Hour {
		t.Errorf("third group = %+v, want 2018 Work 4h", stats[2])
	}
}

func TestOpenPathReopensExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")
	store, err := archive.OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	day := parseDay(t, "2017/12/18 Mon | Work 08:00:00 16:00:00")
	if _, err := store.ArchiveDays(context.Background(), timelog.Date(2018, time.January, 1), []*timelog.Day{day}); err != nil {
		t.Fatalf("ArchiveDays failed: %v", err)
	}
	store.Close()

	reopened, err := archive.OpenPath(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	listed, err := reopened.ListDays(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListDays failed: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("listed %d days after reopen, want 1", len(listed))
	}
}
