package models

import "time"

// layouts accepted for date strings, tried in order.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseWhen normalizes a wire timestamp to a time.Time. The backend is not
// consistent here: dates arrive as ISO-8601 strings, bare calendar days, or
// epoch numbers (seconds, or milliseconds for values past 2001-09-09 in ms).
// Unparseable or absent values normalize to the zero time.
func ParseWhen(v any) time.Time {
	switch value := v.(type) {
	case string:
		for _, layout := range whenLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t
			}
		}
		return time.Time{}
	case float64:
		// JSON numbers decode as float64. Values above 1e12 cannot be
		// plausible epoch seconds, so treat them as milliseconds.
		if value > 1e12 {
			return time.UnixMilli(int64(value))
		}
		return time.Unix(int64(value), 0)
	case int64:
		if value > 1e12 {
			return time.UnixMilli(value)
		}
		return time.Unix(value, 0)
	case time.Time:
		return value
	default:
		return time.Time{}
	}
}

// DayStart parses a "YYYY-MM-DD" string and returns the first instant of
// that calendar day. Returns the zero time for empty/invalid input.
func DayStart(day string) time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DayEnd returns the last instant of the given "YYYY-MM-DD" calendar day,
// making range checks inclusive of the whole day.
func DayEnd(day string) time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return time.Time{}
	}
	return t.Add(24*time.Hour - time.Nanosecond)
}
