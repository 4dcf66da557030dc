package domain

import (
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// dateLayouts are tried in order. "02-Jan-06" is the layout of the published
// Health_Camp_Detail.csv.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02-Jan-06",
	"02-Jan-2006",
	"01/02/2006",
	"2006/01/02",
}

// ParseDate parses a calendar date from a raw cell value and truncates it to
// midnight UTC. field names the column for error reporting.
func ParseDate(field, value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, &ParseError{Field: field, Value: value, Err: errEmptyDate}
	}
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, &ParseError{Field: field, Value: value, Err: lastErr}
}
