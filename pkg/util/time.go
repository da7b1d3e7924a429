package util

import (
	"strings"
	"time"
)

const (
	DateFormat = "2006-01-02"
	// ISOMillisFormat is RFC3339 with fixed millisecond precision.
	ISOMillisFormat = "2006-01-02T15:04:05.000Z07:00"
)

// IsDateOnly reports whether str is a bare YYYY-MM-DD date.
func IsDateOnly(str string) bool {
	return len(str) == len(DateFormat) && !strings.ContainsAny(str, "T ")
}

// ParseISODate parses a YYYY-MM-DD date (UTC midnight) or an RFC3339 timestamp.
func ParseISODate(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	if IsDateOnly(str) {
		return time.ParseInLocation(DateFormat, str, time.UTC)
	}
	t, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ParseISODateEnd parses like ParseISODate, but a bare date resolves to the
// last millisecond of that UTC day so it can serve as an inclusive upper bound.
func ParseISODateEnd(str string) (time.Time, error) {
	t, err := ParseISODate(str)
	if err != nil {
		return time.Time{}, err
	}
	if IsDateOnly(strings.TrimSpace(str)) {
		t = t.Add(24*time.Hour - time.Millisecond)
	}
	return t, nil
}

// FormatISOMillis renders t in UTC as RFC3339 with milliseconds.
func FormatISOMillis(t time.Time) string {
	return t.UTC().Format(ISOMillisFormat)
}
