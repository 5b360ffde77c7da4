package timelog

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Day holds all entries recorded on a single date, kept in entry order.
type Day struct {
	Date    time.Time
	Entries []Entry
}

// NewDay creates an empty day for the given date.
func NewDay(date time.Time) *Day {
	return &Day{Date: DateOf(date)}
}

// Add appends an entry without re-sorting; callers batch-loading a file
// sort once at the end via mutators or rely on file order.
func (d *Day) Add(e Entry) {
	d.Entries = append(d.Entries, e)
}

// IsWeekday reports whether the day falls on Monday through Friday.
func (d *Day) IsWeekday() bool {
	return IsWeekday(d.Date)
}

// SetStart records a start time on the first entry of the kind that has
// none, or appends a new entry. The updated entry is returned.
func (d *Day) SetStart(t Clock, kind Kind) Entry {
	for i := range d.Entries {
		if !d.Entries[i].Start.IsSet() && d.Entries[i].Kind == kind {
			d.Entries[i].Start = t
			entry := d.Entries[i]
			d.sortEntries()
			return entry
		}
	}
	entry := StartEntry(d.Date, kind, t)
	d.Entries = append(d.Entries, entry)
	d.sortEntries()
	return entry
}

// SetEnd records an end time on the first entry of the kind that has
// none, or appends a new entry. The updated entry is returned.
func (d *Day) SetEnd(t Clock, kind Kind) Entry {
	for i := range d.Entries {
		if !d.Entries[i].End.IsSet() && d.Entries[i].Kind == kind {
			d.Entries[i].End = t
			entry := d.Entries[i]
			d.sortEntries()
			return entry
		}
	}
	entry := EndEntry(d.Date, kind, t)
	d.Entries = append(d.Entries, entry)
	d.sortEntries()
	return entry
}

func (d *Day) sortEntries() {
	sort.SliceStable(d.Entries, func(i, j int) bool {
		return compareEntries(d.Entries[i], d.Entries[j]) < 0
	})
}

// Start returns the earliest recorded start for the kind.
func (d *Day) Start(kind Kind) Clock {
	for _, e := range d.Entries {
		if e.Start.IsSet() && e.Kind == kind {
			return e.Start
		}
	}
	return Clock{}
}

// End returns the latest recorded end for the kind.
func (d *Day) End(kind Kind) Clock {
	for i := len(d.Entries) - 1; i >= 0; i-- {
		if e := d.Entries[i]; e.End.IsSet() && e.Kind == kind {
			return e.End
		}
	}
	return Clock{}
}

// Logged sums the complete entries of the kind.
func (d *Day) Logged(kind Kind) time.Duration {
	var sum time.Duration
	for _, e := range d.Entries {
		if e.Kind == kind {
			sum += e.Logged()
		}
	}
	return sum
}

// LoggedWith extends Logged by counting time from the first open entry's
// start up to now. It fails when the day has nothing to measure against.
func (d *Day) LoggedWith(now Clock, kind Kind) (time.Duration, error) {
	if len(d.Entries) == 0 {
		return 0, ErrNoEntries
	}
	started := false
	for _, e := range d.Entries {
		if e.Start.IsSet() {
			started = true
			break
		}
	}
	if !started {
		return 0, ErrNoStartedEntries
	}

	sum := d.Logged(kind)
	for _, e := range d.Entries {
		if e.Start.IsSet() && !e.End.IsSet() && e.Kind == kind {
			sum += now.Sub(e.Start)
			break
		}
	}
	return sum, nil
}

// Loggable returns how much time the day is expected to contribute:
// perDay on weekdays, nothing on weekends.
func (d *Day) Loggable(perDay time.Duration) time.Duration {
	if d.IsWeekday() {
		return perDay
	}
	return 0
}

// Incomplete returns the entries that have exactly one of start and end.
func (d *Day) Incomplete() []Entry {
	var out []Entry
	for _, e := range d.Entries {
		if e.Incomplete() {
			out = append(out, e)
		}
	}
	return out
}

// String renders the day as its logfile lines, newline separated without
// a trailing newline.
func (d *Day) String() string {
	lines := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}

// ParseDay parses consecutive logfile lines belonging to one date.
func ParseDay(s string) (*Day, error) {
	var day *Day
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		entry, err := ParseEntry(strings.TrimSpace(line))
		if err != nil {
			return nil, err
		}
		if day == nil {
			day = NewDay(entry.Date)
		} else if !entry.Date.Equal(day.Date) {
			return nil, fmt.Errorf("%w: mixed dates in day block (%s vs %s)",
				ErrParse, day.Date.Format(entryDateLayout), entry.Date.Format(entryDateLayout))
		}
		day.Add(entry)
	}
	if day == nil {
		return nil, fmt.Errorf("%w: empty day block", ErrParse)
	}
	return day, nil
}
