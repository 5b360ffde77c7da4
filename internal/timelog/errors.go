package timelog

import "errors"

var (
	// ErrParse indicates logfile content that does not match the entry format.
	ErrParse = errors.New("timelog: parse error")

	// ErrNoEntries indicates a day without any recorded entries.
	ErrNoEntries = errors.New("timelog: no entries for day")

	// ErrNoStartedEntries indicates a day where no entry has a start time.
	ErrNoStartedEntries = errors.New("timelog: no started entries for day")
)
