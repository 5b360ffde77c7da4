package timelog

import "time"

// entryDateLayout is the logfile date format, weekday included for
// readability when editing by hand.
const entryDateLayout = "2006/01/02 Mon"

// DateOf normalizes a wall time to its civil date. All dates in this
// module are midnight UTC so they compare and hash consistently.
func DateOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Date builds a normalized civil date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// IsWeekday reports whether the date falls on Monday through Friday.
func IsWeekday(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WeekStart returns the Monday of the week containing date.
func WeekStart(date time.Time) time.Time {
	for date.Weekday() != time.Monday {
		date = date.AddDate(0, 0, -1)
	}
	return date
}

// WeekEnd returns the Friday of the working week that date belongs to.
// Weekend dates resolve backwards to the Friday just passed so that a
// Saturday query still reports the finished week.
func WeekEnd(date time.Time) time.Time {
	if !IsWeekday(date) {
		for date.Weekday() != time.Friday {
			date = date.AddDate(0, 0, -1)
		}
		return date
	}
	for date.Weekday() != time.Friday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// MonthStart returns the first day of the month containing date.
func MonthStart(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), 1)
}

// MonthEnd returns the last day of the month containing date.
func MonthEnd(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, 1, -1)
}

// LastSunday returns the most recent Sunday strictly before the week of
// date; for a Sunday input this is the previous Sunday.
func LastSunday(date time.Time) time.Time {
	if date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, -1)
	}
	for date.Weekday() != time.Sunday {
		date = date.AddDate(0, 0, -1)
	}
	return date
}
