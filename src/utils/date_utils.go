package utils

import "time"

const queryDateLayout = "2006-01-02"

// ParseQueryDate parses a YYYY-MM-DD query parameter. The zero time and false
// are returned for empty or malformed input.
func ParseQueryDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(queryDateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
