package timex

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the ISO 8601 calendar date used for start and expiry dates.
	DateLayout = "2006-01-02"
	// DisplayLayout is the DD/MM/YYYY form used in outbound messages.
	DisplayLayout = "02/01/2006"
	// TimestampLayout matches JavaScript's Date.toISOString output.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Midnight truncates t to 00:00 of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses an ISO date ("2024-01-16") in loc. Full RFC 3339
// timestamps are accepted too; their calendar day is taken in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return Midnight(t.In(loc)), nil
}

// FormatDisplay renders an ISO date as DD/MM/YYYY. Values that do not parse
// are returned unchanged.
func FormatDisplay(s string) string {
	t, err := ParseDate(s, time.Local)
	if err != nil {
		return s
	}
	return t.Format(DisplayLayout)
}

// Timestamp formats t in UTC with millisecond precision, e.g.
// "2024-01-01T10:00:00.000Z".
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
