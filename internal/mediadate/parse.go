package mediadate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	fullPattern   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})\s+(\d{2}):(\d{2}):(\d{2})$`)
	minutePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})\s+(\d{2}):(\d{2})$`)
	dayPattern    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	monthPattern  = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	yearPattern   = regexp.MustCompile(`^(\d{4})$`)
)

// ParseFlexible parses an operator-supplied date string. Accepted forms are
// YYYY, YYYY-MM, YYYY-MM-DD, YYYY-MM-DD HH:MM, and YYYY-MM-DD HH:MM:SS.
// Missing components default to the middle of the parent period: July 1st
// for a bare year, the 15th for a bare month, noon for a bare day.
func ParseFlexible(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if m := fullPattern.FindStringSubmatch(value); m != nil {
		if ts, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4]), atoi(m[5]), atoi(m[6])); ok {
			return ts, nil
		}
		return time.Time{}, invalidDate(value)
	}
	if m := minutePattern.FindStringSubmatch(value); m != nil {
		if ts, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4]), atoi(m[5]), 0); ok {
			return ts, nil
		}
		return time.Time{}, invalidDate(value)
	}
	if m := dayPattern.FindStringSubmatch(value); m != nil {
		if ts, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), 12, 0, 0); ok {
			return ts, nil
		}
		return time.Time{}, invalidDate(value)
	}
	if m := monthPattern.FindStringSubmatch(value); m != nil {
		if ts, ok := makeDate(atoi(m[1]), atoi(m[2]), 15, 12, 0, 0); ok {
			return ts, nil
		}
		return time.Time{}, invalidDate(value)
	}
	if m := yearPattern.FindStringSubmatch(value); m != nil {
		return time.Date(atoi(m[1]), time.July, 1, 12, 0, 0, 0, time.Local), nil
	}

	return time.Time{}, fmt.Errorf(
		"invalid date format %q: expected YYYY, YYYY-MM, YYYY-MM-DD, YYYY-MM-DD HH:MM, or YYYY-MM-DD HH:MM:SS",
		value,
	)
}

func invalidDate(value string) error {
	return fmt.Errorf("invalid date %q", value)
}
