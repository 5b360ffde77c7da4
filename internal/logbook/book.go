package logbook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/gofrs/flock"

	"timelog/internal/config"
	"timelog/internal/timelog"
)

// Book holds every logged day keyed by date and persists them to a
// plain-text logfile, one entry per line.
type Book struct {
	path   string
	perDay time.Duration
	days   map[time.Time]*timelog.Day
}

// Open loads the logfile named by the configuration, creating an empty
// one when it does not exist yet.
func Open(cfg *config.Config) (*Book, error) {
	return OpenPath(cfg.Paths.LogFile, cfg.HoursPerDay())
}

// OpenPath loads the logfile at path with the given full-workday length.
func OpenPath(path string, perDay time.Duration) (*Book, error) {
	book := &Book{
		path:   path,
		perDay: perDay,
		days:   make(map[time.Time]*timelog.Day),
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		created, createErr := os.Create(path)
		if createErr != nil {
			return nil, fmt.Errorf("create logfile %s: %w", path, createErr)
		}
		created.Close()
		return book, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open logfile %s: %w", path, err)
	}
	defer file.Close()

	if err := book.readEntries(file); err != nil {
		return nil, fmt.Errorf("read logfile %s: %w", path, err)
	}
	return book, nil
}

// Path reports the logfile backing this book.
func (b *Book) Path() string { return b.path }

// PerDay reports the length of a full workday.
func (b *Book) PerDay() time.Duration { return b.perDay }

func (b *Book) readEntries(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		entry, err := timelog.ParseEntry(line)
		if err != nil {
			return err
		}
		b.day(entry.Date).Add(entry)
	}
	return scanner.Err()
}

// day returns the Day for date, creating it when absent.
func (b *Book) day(date time.Time) *timelog.Day {
	key := timelog.DateOf(date)
	d, ok := b.days[key]
	if !ok {
		d = timelog.NewDay(key)
		b.days[key] = d
	}
	return d
}

// Day returns the recorded day for date, or nil when nothing was logged.
func (b *Book) Day(date time.Time) *timelog.Day {
	return b.days[timelog.DateOf(date)]
}

// LogStart records a work start time at date. The start fills the first
// open work entry of the day, or begins a new one.
func (b *Book) LogStart(date time.Time, at timelog.Clock) timelog.Entry {
	return b.day(date).SetStart(at, timelog.KindWork)
}

// LogEnd records a work end time at date.
func (b *Book) LogEnd(date time.Time, at timelog.Clock) timelog.Entry {
	return b.day(date).SetEnd(at, timelog.KindWork)
}

// BatchAdd opens an entry of the given kind for every day in [from, to].
// With weekdaysOnly set, weekend days are skipped. It reports how many
// entries were added.
func (b *Book) BatchAdd(kind timelog.Kind, from, to time.Time, weekdaysOnly bool) int {
	added := 0
	for date := timelog.DateOf(from); !date.After(timelog.DateOf(to)); date = date.AddDate(0, 0, 1) {
		if weekdaysOnly && !timelog.IsWeekday(date) {
			continue
		}
		b.day(date).Add(timelog.NewEntry(date, kind))
		added++
	}
	return added
}

// LoggedBetween sums the completed time of the given kind over [from, to].
// Weekend days never contribute.
func (b *Book) LoggedBetween(from, to time.Time, kind timelog.Kind) time.Duration {
	from, to = timelog.DateOf(from), timelog.DateOf(to)
	var sum time.Duration
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if !timelog.IsWeekday(date) {
			continue
		}
		if d, ok := b.days[date]; ok {
			sum += d.Logged(kind)
		}
	}
	return sum
}

// LoggableBetween sums the expected working time over [from, to]: one
// full workday for every weekday, regardless of what was logged.
func (b *Book) LoggableBetween(from, to time.Time) time.Duration {
	from, to = timelog.DateOf(from), timelog.DateOf(to)
	var sum time.Duration
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if timelog.IsWeekday(date) {
			sum += b.perDay
		}
	}
	return sum
}

// loggedAllKindsBetween sums completed time of every kind over [from, to].
func (b *Book) loggedAllKindsBetween(from, to time.Time) time.Duration {
	var sum time.Duration
	for _, kind := range timelog.Kinds() {
		sum += b.LoggedBetween(from, to, kind)
	}
	return sum
}

// FlexAsOf computes the accumulated flex balance from the first logged
// date up to the last Sunday before date. A positive balance means more
// time was logged than the weekdays in that span required.
func (b *Book) FlexAsOf(date time.Time) time.Duration {
	first, ok := b.firstDate()
	if !ok {
		return 0
	}
	end := timelog.LastSunday(date)
	return b.LoggableBetween(first, end) - b.loggedAllKindsBetween(first, end)
}

func (b *Book) firstDate() (time.Time, bool) {
	var first time.Time
	found := false
	for date := range b.days {
		if !found || date.Before(first) {
			first = date
			found = true
		}
	}
	return first, found
}

// LoggedAtWith reports work time logged at date. When with is set, the
// first open entry of the day is treated as ending at that clock time.
func (b *Book) LoggedAtWith(date time.Time, with timelog.Clock) (time.Duration, error) {
	d := b.Day(date)
	if d == nil {
		return 0, fmt.Errorf("no entries for %s", date.Format("2006/01/02"))
	}
	if !with.IsSet() {
		return d.Logged(timelog.KindWork), nil
	}
	return d.LoggedWith(with, timelog.KindWork)
}

// LoggedInWeekOfWith reports time logged across all kinds during the
// week containing date. When with is set, the last day of the week that
// has entries counts its open work entry as ending at that time.
func (b *Book) LoggedInWeekOfWith(date time.Time, with timelog.Clock) (time.Duration, error) {
	return b.loggedInRangeWith(timelog.WeekStart(date), timelog.WeekEnd(date), with)
}

// LoggedInMonthOfWith is LoggedInWeekOfWith over the month containing date.
func (b *Book) LoggedInMonthOfWith(date time.Time, with timelog.Clock) (time.Duration, error) {
	return b.loggedInRangeWith(timelog.MonthStart(date), timelog.MonthEnd(date), with)
}

func (b *Book) loggedInRangeWith(start, end time.Time, with timelog.Clock) (time.Duration, error) {
	start, end = timelog.DateOf(start), timelog.DateOf(end)
	logged := b.loggedAllKindsBetween(start, end)
	if !with.IsSet() {
		return logged, nil
	}

	last := start
	for !last.Equal(end) {
		if _, ok := b.days[last.AddDate(0, 0, 1)]; !ok {
			break
		}
		last = last.AddDate(0, 0, 1)
	}
	// With nothing to measure against the assumed end time changes
	// nothing, so fall back to the plain total.
	d, ok := b.days[last]
	if !ok {
		return logged, nil
	}
	withLogged, err := d.LoggedWith(with, timelog.KindWork)
	if err != nil {
		if errors.Is(err, timelog.ErrNoEntries) || errors.Is(err, timelog.ErrNoStartedEntries) {
			return logged, nil
		}
		return 0, err
	}
	return logged - d.Logged(timelog.KindWork) + withLogged, nil
}

// TimeLeftInWeekOfWith reports how much work time remains in the week
// containing date, including the flex balance carried into the week, and
// the flex balance itself.
func (b *Book) TimeLeftInWeekOfWith(date time.Time, with timelog.Clock) (left, flex time.Duration, err error) {
	loggable := b.LoggableBetween(timelog.WeekStart(date), timelog.WeekEnd(date))
	logged, err := b.LoggedInWeekOfWith(date, with)
	if err != nil {
		return 0, 0, err
	}
	flex = b.FlexAsOf(date)
	return loggable - logged + flex, flex, nil
}

// TimeLeftInMonthOfWith is TimeLeftInWeekOfWith over the month containing date.
func (b *Book) TimeLeftInMonthOfWith(date time.Time, with timelog.Clock) (left, flex time.Duration, err error) {
	loggable := b.LoggableBetween(timelog.MonthStart(date), timelog.MonthEnd(date))
	logged, err := b.LoggedInMonthOfWith(date, with)
	if err != nil {
		return 0, 0, err
	}
	flex = b.FlexAsOf(date)
	return loggable - logged + flex, flex, nil
}

// VerifyRange collects every incomplete entry recorded in [from, to].
func (b *Book) VerifyRange(from, to time.Time) []timelog.Entry {
	var incomplete []timelog.Entry
	for _, d := range b.sortedDays() {
		if d.Date.Before(timelog.DateOf(from)) || d.Date.After(timelog.DateOf(to)) {
			continue
		}
		incomplete = append(incomplete, d.Incomplete()...)
	}
	return incomplete
}

// VerifyWeekOf collects incomplete entries in the week containing date.
func (b *Book) VerifyWeekOf(date time.Time) []timelog.Entry {
	return b.VerifyRange(timelog.WeekStart(date), timelog.WeekEnd(date))
}

// VerifyMonthOf collects incomplete entries in the month containing date.
func (b *Book) VerifyMonthOf(date time.Time) []timelog.Entry {
	return b.VerifyRange(timelog.MonthStart(date), timelog.MonthEnd(date))
}

// Days returns every recorded day in chronological order.
func (b *Book) Days() []*timelog.Day {
	return b.sortedDays()
}

// LatestDays returns the most recent n days in chronological order.
func (b *Book) LatestDays(n int) []*timelog.Day {
	days := b.sortedDays()
	if len(days) > n {
		days = days[len(days)-n:]
	}
	return days
}

// DaysBefore returns every day strictly before cutoff whose entries are
// all complete, in chronological order.
func (b *Book) DaysBefore(cutoff time.Time) []*timelog.Day {
	var out []*timelog.Day
	for _, d := range b.sortedDays() {
		if !d.Date.Before(timelog.DateOf(cutoff)) {
			continue
		}
		if len(d.Incomplete()) > 0 {
			continue
		}
		out = append(out, d)
	}
	return out
}

// RemoveDays drops the given dates from the book. The logfile is not
// touched until Save.
func (b *Book) RemoveDays(dates []time.Time) {
	for _, date := range dates {
		delete(b.days, timelog.DateOf(date))
	}
}

func (b *Book) sortedDays() []*timelog.Day {
	days := make([]*timelog.Day, 0, len(b.days))
	for _, d := range b.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

func (b *Book) writeEntries(w io.Writer) error {
	for _, d := range b.sortedDays() {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the book back to its logfile. A sidecar flock serializes
// concurrent invocations and the previous contents are kept in a backup
// until the write succeeds.
func (b *Book) Save() error {
	lock := flock.New(b.path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire logfile lock: %w", err)
	}
	if !ok {
		return errors.New("logfile is locked by another timelog process")
	}
	defer lock.Unlock()

	backup := b.path + ".bkp"
	if _, err := os.Stat(b.path); err == nil {
		if err := copyFile(b.path, backup); err != nil {
			return fmt.Errorf("back up logfile: %w", err)
		}
	}

	if err := b.writeFile(); err != nil {
		if restoreErr := copyFile(backup, b.path); restoreErr != nil {
			return fmt.Errorf("write logfile (backup kept at %s): %w", backup, err)
		}
		return fmt.Errorf("write logfile (backup restored): %w", err)
	}

	os.Remove(backup)
	return nil
}

func (b *Book) writeFile() error {
	file, err := os.Create(b.path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	if err := b.writeEntries(w); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
