package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"timelog/internal/config"
	"timelog/internal/timelog"
)

const dateLayout = "2006/01/02"

// Store manages the archive database backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the archive database named by the
// configuration.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.ArchiveDBPath())
}

// OpenPath initializes or connects to the archive database at path.
func OpenPath(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path reports the database file backing this store.
func (s *Store) Path() string { return s.path }

// Run records one archive invocation.
type Run struct {
	ID        string
	CreatedAt time.Time
	Cutoff    time.Time
	Days      int
	Entries   int
}

// DaySummary aggregates the archived entries of one calendar day.
type DaySummary struct {
	Date    time.Time
	Entries int
	Logged  time.Duration
}

// YearStat aggregates archived time per calendar year and kind.
type YearStat struct {
	Year    int
	Kind    timelog.Kind
	Entries int
	Logged  time.Duration
}

// ArchiveDays stores the given days under a new run and returns it.
// The insert is transactional: either every entry lands in the archive
// or none do. Days with a half-open entry are rejected; whole-day
// absences without times are fine.
func (s *Store) ArchiveDays(ctx context.Context, cutoff time.Time, days []*timelog.Day) (Run, error) {
	if len(days) == 0 {
		return Run{}, errors.New("nothing to archive")
	}

	run := Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Cutoff:    timelog.DateOf(cutoff),
		Days:      len(days),
	}
	for _, d := range days {
		run.Entries += len(d.Entries)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("begin archive tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO archive_runs (id, created_at, cutoff, days, entries) VALUES (?, ?, ?, ?, ?)",
		run.ID, run.CreatedAt.Format(time.RFC3339), run.Cutoff.Format(dateLayout), run.Days, run.Entries,
	); err != nil {
		return Run{}, fmt.Errorf("insert archive run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO archived_entries (run_id, date, kind, start_time, end_time, seconds) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return Run{}, fmt.Errorf("prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range days {
		for _, e := range d.Entries {
			if e.Incomplete() {
				return Run{}, fmt.Errorf("incomplete entry on %s cannot be archived", d.Date.Format(dateLayout))
			}
			if _, err := stmt.ExecContext(ctx,
				run.ID,
				e.Date.Format(dateLayout),
				string(e.Kind),
				e.Start.String(),
				e.End.String(),
				int64(e.Logged()/time.Second),
			); err != nil {
				return Run{}, fmt.Errorf("insert archived entry: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("commit archive: %w", err)
	}
	return run, nil
}

// Runs returns the most recent archive runs, newest first.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, cutoff, days, entries FROM archive_runs ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query archive runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run             Run
			created, cutoff string
		)
		if err := rows.Scan(&run.ID, &created, &cutoff, &run.Days, &run.Entries); err != nil {
			return nil, fmt.Errorf("scan archive run: %w", err)
		}
		if run.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", created, err)
		}
		if run.Cutoff, err = time.Parse(dateLayout, cutoff); err != nil {
			return nil, fmt.Errorf("parse run cutoff %q: %w", cutoff, err)
		}
		run.Cutoff = run.Cutoff.UTC()
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ListDays returns the most recently archived days, newest first.
func (s *Store) ListDays(ctx context.Context, limit int) ([]DaySummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, COUNT(1), SUM(seconds)
		 FROM archived_entries
		 GROUP BY date
		 ORDER BY date DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query archived days: %w", err)
	}
	defer rows.Close()

	var days []DaySummary
	for rows.Next() {
		var (
			day     DaySummary
			date    string
			seconds int64
		)
		if err := rows.Scan(&date, &day.Entries, &seconds); err != nil {
			return nil, fmt.Errorf("scan archived day: %w", err)
		}
		if day.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("parse archived date %q: %w", date, err)
		}
		day.Date = day.Date.UTC()
		day.Logged = time.Duration(seconds) * time.Second
		days = append(days, day)
	}
	return days, rows.Err()
}

// Stats aggregates the archive per year and kind, oldest year first.
func (s *Store) Stats(ctx context.Context) ([]YearStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT substr(date, 1, 4), kind, COUNT(1), SUM(seconds)
		 FROM archived_entries
		 GROUP BY substr(date, 1, 4), kind
		 ORDER BY substr(date, 1, 4), kind`)
	if err != nil {
		return nil, fmt.Errorf("query archive stats: %w", err)
	}
	defer rows.Close()

	var stats []YearStat
	for rows.Next() {
		var (
			stat    YearStat
			kind    string
			seconds int64
		)
		if err := rows.Scan(&stat.Year, &kind, &stat.Entries, &seconds); err != nil {
			return nil, fmt.Errorf("scan archive stat: %w", err)
		}
		stat.Kind = timelog.Kind(kind)
		stat.Logged = time.Duration(seconds) * time.Second
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}
