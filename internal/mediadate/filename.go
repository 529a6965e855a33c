package mediadate

import (
	"regexp"
	"strconv"
	"time"
)

var (
	// IMG_20220105_143022.jpg, VID_20220105.mp4, 20220105_143022.jpg
	compactPattern = regexp.MustCompile(`(?:IMG|VID|DSC)?_?(\d{4})(\d{2})(\d{2})(?:_(\d{2})(\d{2})(\d{2}))?`)
	// 2022-01-05_photo.jpg, Screenshot 2022-01-05 at 14.30.22.png
	isoPattern = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
)

// FromFilename extracts a capture date embedded in a file name. Compact
// camera-style timestamps are tried before bare ISO dates; candidates with
// impossible calendar components are rejected.
func FromFilename(name string) (time.Time, bool) {
	if m := compactPattern.FindStringSubmatch(name); m != nil {
		year, month, day := atoi(m[1]), atoi(m[2]), atoi(m[3])
		hour, minute, second := 0, 0, 0
		if m[4] != "" {
			hour, minute, second = atoi(m[4]), atoi(m[5]), atoi(m[6])
		}
		if ts, ok := makeDate(year, month, day, hour, minute, second); ok {
			return ts, true
		}
	}
	if m := isoPattern.FindStringSubmatch(name); m != nil {
		if ts, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), 0, 0, 0); ok {
			return ts, true
		}
	}
	return time.Time{}, false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// makeDate builds a timestamp, rejecting components time.Date would silently
// normalize (for example month 13 or February 30th).
func makeDate(year, month, day, hour, minute, second int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}
	ts := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
	if ts.Year() != year || ts.Month() != time.Month(month) || ts.Day() != day {
		return time.Time{}, false
	}
	return ts, true
}
