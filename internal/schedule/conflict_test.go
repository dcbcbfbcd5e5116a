package schedule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFindConflict(t *testing.T) {
	morning := Slot{ID: uuid.New(), StartTime: 10, DurationMinutes: 120}  // [10,12)
	afternoon := Slot{ID: uuid.New(), StartTime: 14, DurationMinutes: 95} // [14,16)

	testCases := []struct {
		name      string
		candidate Interval
		slots     []Slot
		wantID    uuid.UUID
		conflict  bool
	}{
		{
			name:      "empty timetable accepts anything",
			candidate: Interval{Start: 0, End: 24},
			slots:     nil,
			conflict:  false,
		},
		{
			name:      "back to back after existing slot",
			candidate: Interval{Start: 12, End: 14},
			slots:     []Slot{morning, afternoon},
			conflict:  false,
		},
		{
			name:      "overlapping start is rejected",
			candidate: Interval{Start: 11, End: 13},
			slots:     []Slot{morning, afternoon},
			wantID:    morning.ID,
			conflict:  true,
		},
		{
			name:      "partial-hour runtime rounds up and blocks",
			candidate: Interval{Start: 15, End: 17},
			slots:     []Slot{afternoon},
			wantID:    afternoon.ID,
			conflict:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, conflict := FindConflict(tc.candidate, tc.slots)
			assert.Equal(t, tc.conflict, conflict)
			if tc.conflict {
				assert.Equal(t, tc.wantID, id)
			} else {
				assert.Equal(t, uuid.Nil, id)
			}
			assert.Equal(t, !tc.conflict, CanSchedule(tc.candidate, tc.slots))
		})
	}
}
