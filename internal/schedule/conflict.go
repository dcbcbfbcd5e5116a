package schedule

import "github.com/google/uuid"

// Slot is one already-persisted screening as seen by the conflict checker:
// its identity, its start hour and the runtime of its movie. The repository
// joins the movie duration in so the checker stays pure.
type Slot struct {
	ID              uuid.UUID
	StartTime       int
	DurationMinutes int
}

// Interval returns the time span the slot occupies.
func (s Slot) Interval() Interval {
	return NewInterval(s.StartTime, DurationHours(s.DurationMinutes))
}

// FindConflict tests the candidate interval against every existing slot and
// returns the first slot it overlaps. The caller decides which slots are in
// scope (same auditorium and date, recurring screenings, self-exclusion on
// update); this function only does the interval arithmetic.
func FindConflict(candidate Interval, slots []Slot) (uuid.UUID, bool) {
	for _, slot := range slots {
		if Overlaps(candidate, slot.Interval()) {
			return slot.ID, true
		}
	}
	return uuid.Nil, false
}

// CanSchedule reports whether the candidate interval fits into the timetable
// described by slots without overlapping any of them.
func CanSchedule(candidate Interval, slots []Slot) bool {
	_, conflict := FindConflict(candidate, slots)
	return !conflict
}
