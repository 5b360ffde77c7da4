package timelog

import (
	"fmt"
	"time"
)

// undefClock is the logfile representation of an absent time.
const undefClock = "UNDEF"

// Clock is a time of day with second precision. The zero value is unset
// and renders as UNDEF in the logfile.
type Clock struct {
	offset time.Duration
	valid  bool
}

// ClockOf builds a set clock from hour, minute, and second components.
func ClockOf(hour, min, sec int) Clock {
	return Clock{
		offset: time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute + time.Duration(sec)*time.Second,
		valid:  true,
	}
}

// ClockFromTime truncates a wall time to its second-precision time of day.
func ClockFromTime(t time.Time) Clock {
	return ClockOf(t.Hour(), t.Minute(), t.Second())
}

// IsSet reports whether the clock holds a time.
func (c Clock) IsSet() bool { return c.valid }

// Sub returns the duration between two set clocks.
func (c Clock) Sub(other Clock) time.Duration {
	return c.offset - other.offset
}

// Before reports whether c is earlier in the day than other. An unset
// clock is never before anything.
func (c Clock) Before(other Clock) bool {
	return c.valid && other.valid && c.offset < other.offset
}

func (c Clock) hms() (int, int, int) {
	total := int(c.offset / time.Second)
	return total / 3600, total / 60 % 60, total % 60
}

// String renders the clock as HH:MM:SS, or UNDEF when unset.
func (c Clock) String() string {
	if !c.valid {
		return undefClock
	}
	h, m, s := c.hms()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ParseClock parses the logfile representation of a time of day. UNDEF
// yields the unset clock.
func ParseClock(s string) (Clock, error) {
	if s == undefClock {
		return Clock{}, nil
	}
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%02d:%02d:%02d", &h, &m, &sec); err != nil {
		return Clock{}, fmt.Errorf("%w: invalid time %q", ErrParse, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return Clock{}, fmt.Errorf("%w: time %q out of range", ErrParse, s)
	}
	return ClockOf(h, m, sec), nil
}
