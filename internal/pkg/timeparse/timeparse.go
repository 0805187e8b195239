package timeparse

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalid = errors.New("invalid time")

// localLayouts carry no offset and are read in the caller's location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Parse accepts RFC 3339 or a local wall-clock layout and returns the
// instant in UTC, truncated to the second so stored values compare equal
// across drivers.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalid
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Normalize(t), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, ErrInvalid
}

func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// DayBounds returns [midnight, next midnight) of the day containing now in
// loc, both in UTC.
func DayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}
