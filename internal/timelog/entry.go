package timelog

import (
	"fmt"
	"strings"
	"time"
)

// Entry is a single logged interval on a date. Start and End may be
// unset independently; an entry is complete when both are set.
type Entry struct {
	Date  time.Time
	Kind  Kind
	Start Clock
	End   Clock
}

// NewEntry builds an entry without times.
func NewEntry(date time.Time, kind Kind) Entry {
	return Entry{Date: DateOf(date), Kind: kind}
}

// StartEntry builds an entry with only a start time.
func StartEntry(date time.Time, kind Kind, start Clock) Entry {
	return Entry{Date: DateOf(date), Kind: kind, Start: start}
}

// EndEntry builds an entry with only an end time.
func EndEntry(date time.Time, kind Kind, end Clock) Entry {
	return Entry{Date: DateOf(date), Kind: kind, End: end}
}

// Complete reports whether both start and end are recorded.
func (e Entry) Complete() bool {
	return e.Start.IsSet() && e.End.IsSet()
}

// Incomplete reports whether exactly one of start and end is recorded.
// Such entries are worth warning about once the day has passed.
func (e Entry) Incomplete() bool {
	return e.Start.IsSet() != e.End.IsSet()
}

// Logged returns the interval length for a complete entry, zero otherwise.
func (e Entry) Logged() time.Duration {
	if !e.Complete() {
		return 0
	}
	return e.End.Sub(e.Start)
}

// String renders the logfile line for the entry.
func (e Entry) String() string {
	return fmt.Sprintf("%s | %s %s %s",
		e.Date.Format(entryDateLayout), e.Kind, e.Start, e.End)
}

// ParseEntry parses a single logfile line.
func ParseEntry(line string) (Entry, error) {
	datePart, rest, ok := strings.Cut(line, "|")
	if !ok {
		return Entry{}, fmt.Errorf("%w: missing date separator in %q", ErrParse, line)
	}

	date, err := time.ParseInLocation(entryDateLayout, strings.TrimSpace(datePart), time.UTC)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: invalid date in %q: %v", ErrParse, line, err)
	}

	fields := strings.Fields(rest)
	if len(fields) != 3 {
		return Entry{}, fmt.Errorf("%w: expected kind, start, and end in %q", ErrParse, line)
	}

	kind, err := ParseKind(fields[0])
	if err != nil {
		return Entry{}, fmt.Errorf("%w in %q", err, line)
	}
	start, err := ParseClock(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w in %q", err, line)
	}
	end, err := ParseClock(fields[2])
	if err != nil {
		return Entry{}, fmt.Errorf("%w in %q", err, line)
	}

	return Entry{Date: date, Kind: kind, Start: start, End: end}, nil
}

// compareEntries orders entries within a day. An entry that ends before
// another one starts comes first; otherwise starts are compared, then
// ends, then kinds.
func compareEntries(a, b Entry) int {
	switch {
	case a.End.IsSet() && b.Start.IsSet():
		return int(a.End.Sub(b.Start))
	case a.Start.IsSet() && b.End.IsSet():
		return int(a.Start.Sub(b.End))
	case a.Start.IsSet() && b.Start.IsSet():
		return int(a.Start.Sub(b.Start))
	case a.End.IsSet() && b.End.IsSet():
		return int(a.End.Sub(b.End))
	default:
		return kindRank(a.Kind) - kindRank(b.Kind)
	}
}
