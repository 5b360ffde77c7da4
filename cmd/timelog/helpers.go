package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"timelog/internal/timelog"
)

// parseTimeArg turns a command line time into a Clock. Accepted forms
// are "HH:MM", "HH.MM", and a bare hour; single digits work too.
func parseTimeArg(s string) (timelog.Clock, error) {
	s = strings.TrimSpace(s)
	hourPart, minutePart := s, ""
	if h, m, ok := strings.Cut(s, ":"); ok {
		hourPart, minutePart = h, m
	} else if h, m, ok := strings.Cut(s, "."); ok {
		hourPart, minutePart = h, m
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return timelog.Clock{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	minute := 0
	if minutePart != "" {
		if minute, err = strconv.Atoi(minutePart); err != nil {
			return timelog.Clock{}, fmt.Errorf("parse time %q: %w", s, err)
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return timelog.Clock{}, fmt.Errorf("parse time %q: out of range", s)
	}
	return timelog.ClockOf(hour, minute, 0), nil
}

// getClock resolves an optional time argument, defaulting to now.
func getClock(s string) (timelog.Clock, error) {
	if strings.TrimSpace(s) == "" {
		return timelog.ClockFromTime(time.Now()), nil
	}
	return parseTimeArg(s)
}

// parseDateArg parses a YYYY/MM/DD command line date.
func parseDateArg(s string) (time.Time, error) {
	date, err := time.ParseInLocation("2006/01/02", strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q (want YYYY/MM/DD): %w", s, err)
	}
	return date, nil
}

func fmtDur(d time.Duration) string {
	return timelog.FormatDuration(d)
}
