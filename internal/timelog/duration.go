package timelog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders a duration in the h;mm form used by command
// output, e.g. "7;35". Negative durations keep a single leading sign.
func FormatDuration(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}
	hours := int(d / time.Hour)
	mins := int(d/time.Minute) % 60
	s := fmt.Sprintf("%d;%02d", hours, mins)
	if neg {
		return "-" + s
	}
	return s
}

// ParseDuration parses durations given as "h;m", ";m", or bare minutes.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if h, m, ok := strings.Cut(s, ";"); ok {
		hours, err := strconv.Atoi(strings.TrimSpace(h))
		if err != nil {
			hours = 0
		}
		mins, err := strconv.Atoi(strings.TrimSpace(m))
		if err != nil {
			mins = 0
		}
		return time.Duration(hours)*time.Hour + time.Duration(mins)*time.Minute, nil
	}
	mins, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid duration %q", ErrParse, s)
	}
	return time.Duration(mins) * time.Minute, nil
}
