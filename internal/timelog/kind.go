package timelog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind classifies what a logged entry represents.
type Kind string

const (
	KindWork          Kind = "Work"
	KindSickness      Kind = "Sickness"
	KindVacation      Kind = "Vacation"
	KindParentalLeave Kind = "ParentalLeave"
)

// Kinds returns all entry kinds in their canonical sort order.
func Kinds() []Kind {
	return []Kind{KindWork, KindSickness, KindVacation, KindParentalLeave}
}

// ParseKind parses the logfile representation of an entry kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.TrimSpace(s)) {
	case KindWork:
		return KindWork, nil
	case KindSickness:
		return KindSickness, nil
	case KindVacation:
		return KindVacation, nil
	case KindParentalLeave:
		return KindParentalLeave, nil
	default:
		return "", fmt.Errorf("%w: unknown entry kind %q", ErrParse, s)
	}
}

var titleCaser = cases.Title(language.English)

// Label returns a human readable form of the kind for command output,
// e.g. "Parental Leave" for KindParentalLeave.
func (k Kind) Label() string {
	words := splitCamel(string(k))
	return titleCaser.String(strings.ToLower(strings.Join(words, " ")))
}

func (k Kind) String() string {
	return string(k)
}

func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			words = append(words, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

// kindRank orders kinds for entry comparison when no times are present.
func kindRank(k Kind) int {
	switch k {
	case KindWork:
		return 0
	case KindSickness:
		return 1
	case KindVacation:
		return 2
	case KindParentalLeave:
		return 3
	default:
		return 4
	}
}
