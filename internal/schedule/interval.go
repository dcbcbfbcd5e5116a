package schedule

// Interval is a screening's occupied time span within an auditorium's day,
// expressed in whole hours as the half-open range [Start, End).
// End may exceed 24: overnight screenings are allowed to spill past midnight.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds the interval occupied by a screening that begins at
// startTime and runs for durationHours.
func NewInterval(startTime, durationHours int) Interval {
	return Interval{
		Start: startTime,
		End:   startTime + durationHours,
	}
}

// Overlaps reports whether two half-open intervals share at least one hour.
// Back-to-back intervals (a ends exactly when b starts) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// DurationHours converts a movie runtime in minutes to the number of whole
// hours its screening blocks out, rounding any partial hour up.
func DurationHours(durationMinutes int) int {
	hours := durationMinutes / 60
	if durationMinutes%60 != 0 {
		hours++
	}
	return hours
}
