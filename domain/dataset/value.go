package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// timestampFormats are the calendar layouts a cell may arrive in
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"02-Jan-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseNumeric attempts to parse a raw cell as a finite number
func ParseNumeric(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

// ParseTemporal attempts to parse a raw cell as a calendar date/time.
// Plain numbers also parse (year-like cells such as "2021" are valid dates);
// the classifier's decision order keeps those columns numeric regardless.
func ParseTemporal(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, format := range timestampFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t, true
		}
	}

	// Bare integers within a plausible epoch or year range
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n >= 1000 && n <= 9999 {
			return time.Date(int(n), time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
		if n > 0 && n < 2147483647 {
			return time.Unix(n, 0), true
		}
	}

	return time.Time{}, false
}

// NumericOk reports whether a raw cell parses as a finite number
func NumericOk(raw string) bool {
	_, ok := ParseNumeric(raw)
	return ok
}

// TemporalOk reports whether a raw cell parses as a calendar date/time
func TemporalOk(raw string) bool {
	_, ok := ParseTemporal(raw)
	return ok
}

// NumericOrZero parses a raw cell as a number, coercing anything else to 0
func NumericOrZero(raw string) float64 {
	val, ok := ParseNumeric(raw)
	if !ok {
		return 0
	}
	return val
}
