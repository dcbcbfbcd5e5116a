package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date wire format used by the API.
const DateLayout = "2006-01-02"

// UTCMidnight normalizes any instant to midnight UTC of its calendar day.
// All interval comparisons operate on this canonical form only.
func UTCMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into its canonical UTC-midnight value.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return UTCMidnight(t), nil
}

// IsPastDate reports whether date falls strictly before now's UTC calendar day.
func IsPastDate(date, now time.Time) bool {
	return UTCMidnight(date).Before(UTCMidnight(now))
}
